package compiler

import (
	"io"
	"os"

	"github.com/rs/zerolog"

	"github.com/KromDaniel/rexgen/internal/log"
)

// Logger provides verbose output about fixture generation.
type Logger struct {
	enabled bool
	out     zerolog.Logger
}

// NewLogger creates a new logger instance writing to stderr.
func NewLogger(enabled bool) *Logger {
	l := &Logger{enabled: enabled}
	l.SetOutput(os.Stderr)
	return l
}

// SetOutput sets the output writer for the logger.
func (l *Logger) SetOutput(w io.Writer) {
	l.out = log.NewWithWriter(log.Config{Level: "debug"}, w).With().Str("component", "compiler").Logger()
}

// Log prints a formatted message if verbose mode is enabled.
func (l *Logger) Log(format string, args ...interface{}) {
	if l.enabled {
		l.out.Debug().Msgf(format, args...)
	}
}

// Section prints a section header if verbose mode is enabled.
func (l *Logger) Section(name string) {
	if l.enabled {
		l.out.Debug().Str("section", name).Msg("=== " + name + " ===")
	}
}

// Enabled returns whether the logger is enabled.
func (l *Logger) Enabled() bool {
	return l.enabled
}
