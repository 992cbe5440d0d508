package debughttp

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"

	"github.com/tasknet/taskrt/internal/hub"
	"github.com/tasknet/taskrt/internal/observability"
	"github.com/tasknet/taskrt/internal/scheduler"
)

// Scheduler is the subset of scheduler.Scheduler the debug surface reads.
type Scheduler interface {
	Snapshots() []scheduler.Snapshot
}

// Hub is the subset of hub.Hub the debug surface reads.
type Hub interface {
	Status() []hub.PortStatus
}

// Server is the optional read-only HTTP surface. It holds no write path
// into the scheduler or hub — every handler only reads.
type Server struct {
	router    *gin.Engine
	sched     Scheduler
	h         Hub
	startedAt time.Time
}

// New builds a Server reading from sched and h, with cors restricted to
// corsOrigins; an empty corsOrigins allows every origin.
func New(sched Scheduler, h Hub, corsOrigins []string) *Server {
	observability.RegisterMetrics()

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(observability.RequestLogger(log.Logger))
	r.Use(observability.RequestMetricsMiddleware())
	r.Use(cors.New(cors.Config{
		AllowOrigins: normalizeOrigins(corsOrigins),
		AllowMethods: []string{"GET"},
		AllowHeaders: []string{"Origin", "Content-Type"},
		MaxAge:       12 * time.Hour,
	}))
	_ = r.SetTrustedProxies([]string{"127.0.0.1", "::1"})

	s := &Server{router: r, sched: sched, h: h, startedAt: time.Now()}
	s.registerRoutes()
	return s
}

// Router returns the underlying gin engine, e.g. for http.ListenAndServe.
func (s *Server) Router() *gin.Engine {
	return s.router
}

func (s *Server) registerRoutes() {
	s.router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
			"uptime": time.Since(s.startedAt).String(),
		})
	})

	s.router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	s.router.GET("/tasks", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"tasks": s.sched.Snapshots(),
		})
	})

	s.router.GET("/ports", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"ports": s.h.Status(),
		})
	})
}

func normalizeOrigins(origins []string) []string {
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}
