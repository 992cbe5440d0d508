package observability

import (
	"strconv"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	registerOnce sync.Once

	schedulerTicks = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "taskrt",
		Subsystem: "scheduler",
		Name:      "ticks_total",
		Help:      "Total scheduler.Update calls.",
	})
	tasksRegistered = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "taskrt",
			Subsystem: "scheduler",
			Name:      "register_total",
			Help:      "register_task calls by resulting status.",
		},
		[]string{"status"},
	)
	tasksReaped = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "taskrt",
		Subsystem: "scheduler",
		Name:      "reaped_total",
		Help:      "Total task records reaped after delivering a result.",
	})
	hubSends = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "taskrt",
			Subsystem: "hub",
			Name:      "sends_total",
			Help:      "Packets fanned out per transport port.",
		},
		[]string{"port"},
	)
	hubReceives = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "taskrt",
			Subsystem: "hub",
			Name:      "receives_total",
			Help:      "Packets accepted per transport port.",
		},
		[]string{"port"},
	)
	validatorDrops = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "taskrt",
			Subsystem: "validator",
			Name:      "drops_total",
			Help:      "Inbound packets dropped before reaching the scheduler.",
		},
		[]string{"reason"},
	)
	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "taskrt",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total requests against the optional debug HTTP surface.",
		},
		[]string{"method", "path", "status"},
	)
	httpDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "taskrt",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Debug HTTP surface request duration in seconds.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)
)

// RegisterMetrics registers every collector with the default prometheus
// registry. Idempotent.
func RegisterMetrics() {
	registerOnce.Do(func() {
		prometheus.MustRegister(
			schedulerTicks,
			tasksRegistered,
			tasksReaped,
			hubSends,
			hubReceives,
			validatorDrops,
			httpRequests,
			httpDuration,
		)
	})
}

// RecordSchedulerTick increments the tick counter. Call once per
// scheduler.Update.
func RecordSchedulerTick() {
	RegisterMetrics()
	schedulerTicks.Inc()
}

// RecordTaskRegister records one register_task call's resulting status
// mnemonic.
func RecordTaskRegister(status string) {
	RegisterMetrics()
	tasksRegistered.WithLabelValues(status).Inc()
}

// RecordTaskReaped increments the reap counter.
func RecordTaskReaped() {
	RegisterMetrics()
	tasksReaped.Inc()
}

// RecordHubSend records one port's successful send.
func RecordHubSend(port string) {
	RegisterMetrics()
	hubSends.WithLabelValues(port).Inc()
}

// RecordHubReceive records one port yielding an accepted packet.
func RecordHubReceive(port string) {
	RegisterMetrics()
	hubReceives.WithLabelValues(port).Inc()
}

// RecordValidatorDrop records one inbound packet dropped for reason
// ("addressee_mismatch", "fcs_invalid", "short_read").
func RecordValidatorDrop(reason string) {
	RegisterMetrics()
	validatorDrops.WithLabelValues(reason).Inc()
}

// RecordHTTPRequest records one debug HTTP surface request.
func RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	RegisterMetrics()
	statusLabel := strconv.Itoa(status)
	httpRequests.WithLabelValues(method, path, statusLabel).Inc()
	httpDuration.WithLabelValues(method, path, statusLabel).Observe(duration.Seconds())
}
