// Package logging wires zerolog and defines the single error-reporting
// seam the service layer uses for every caught fault.
package logging

import (
	"os"

	"github.com/rs/zerolog"
)

// New builds the root logger. Level falls back to info when unparsable.
func New(level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}
	return zerolog.New(os.Stderr).Level(lvl).With().Timestamp().Logger()
}

// Reporter receives every fault the orchestrators recover from. Keeping it
// as an interface makes logging behaviour uniform and testable.
type Reporter interface {
	Report(op string, err error)
}

// LogReporter reports faults through a zerolog logger.
type LogReporter struct {
	log zerolog.Logger
}

func NewLogReporter(log zerolog.Logger) *LogReporter {
	return &LogReporter{log: log}
}

func (r *LogReporter) Report(op string, err error) {
	r.log.Error().Err(err).Str("op", op).Msg("operation failed")
}
