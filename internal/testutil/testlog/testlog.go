package testlog

import (
	"testing"

	"github.com/rs/zerolog/log"

	"github.com/tasknet/taskrt/internal/logging"
)

// Start configures package logging for test output and logs the test's
// name, so a failing run's console output can be correlated back to the
// subtest that produced it.
func Start(t *testing.T) {
	t.Helper()
	logging.ConfigureTests()
	log.Info().Str("test", t.Name()).Msg("test start")
}
