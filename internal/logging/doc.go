// Package logging owns process-wide structured logging setup.
//
// Ownership boundary:
// - a runtime/test Profile and the sync.Once-gated Configure that applies it
// - environment variable overrides for level/timestamp/color/bypass
//
// It wraps github.com/rs/zerolog directly rather than through an extra
// indirection layer (see DESIGN.md). Every other package logs through
// zerolog/log's package-level logger once Configure has run.
package logging
