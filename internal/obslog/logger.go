// Package obslog wires the generation pipeline to zerolog the way
// tw-backend's internal logging packages do: a package-level default
// logger, structured fields rather than formatted strings, and an explicit
// injection point (the Logger field of planetoid.Params) so callers
// embedding the generator in a larger service can route its output
// wherever they already send logs.
package obslog

import (
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Default is the package-level console logger (cmd/planetgen passes it
// as planetoid.Params.Logger when --verbose is set). It writes
// human-readable console output, matching the teacher's InitLogger
// convention.
var Default = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
	With().Timestamp().Logger()

// Nop discards all output. Library callers that never opted into logging
// get this instead of Default so embedding the generator never forces
// stderr writes on a consumer that didn't ask for them.
var Nop = zerolog.Nop()

// Stage logs one pipeline stage at debug level with the planet identity
// attached, matching the "one log line per pipeline stage" convention.
func Stage(log zerolog.Logger, seed uint32, planetType string, stage string) {
	log.Debug().
		Uint32("seed", seed).
		Str("type", planetType).
		Str("stage", stage).
		Msg("generation stage")
}

// Anomaly logs a non-fatal anomaly (non-convergence, clamped draw, retried
// habitability attempt) at warn level.
func Anomaly(log zerolog.Logger, seed uint32, planetType string, msg string, fields map[string]any) {
	event := log.Warn().Uint32("seed", seed).Str("type", planetType)
	for k, v := range fields {
		event = event.Interface(k, v)
	}
	event.Msg(msg)
}
