// Package logging builds the process logger.
package logging

import (
	"io"
	"time"

	"github.com/rs/zerolog"
)

// DefaultLevel keeps normal play quiet so only game narration is printed.
const DefaultLevel = zerolog.WarnLevel

// New returns a human-readable logger writing to w at the named level.
// An empty level means DefaultLevel.
func New(w io.Writer, level string, color bool) (zerolog.Logger, error) {
	lvl := DefaultLevel
	if level != "" {
		var err error
		if lvl, err = zerolog.ParseLevel(level); err != nil {
			return zerolog.Nop(), err
		}
	}

	out := zerolog.ConsoleWriter{Out: w, TimeFormat: time.TimeOnly, NoColor: !color}
	return zerolog.New(out).Level(lvl).With().Timestamp().Logger(), nil
}
