// Package logger builds the structured logger shared by the console and the store.
package logger

import (
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const (
	// FormatConsole renders human-readable lines.
	FormatConsole = "console"

	// FormatJSON renders one JSON object per line.
	FormatJSON = "json"
)

// Options controls logger construction.
type Options struct {
	// Level is a zerolog level name ("debug", "info", "warn", ...).
	Level string

	// Format is FormatConsole or FormatJSON.
	Format string

	// SessionID tags every entry. A random UUID is used when empty.
	SessionID string
}

// New returns a logger writing to w.
func New(w io.Writer, opts Options) (zerolog.Logger, error) {
	level, err := ParseLevel(opts.Level)
	if err != nil {
		return zerolog.Nop(), err
	}

	switch opts.Format {
	case "", FormatConsole:
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
	case FormatJSON:
	default:
		return zerolog.Nop(), fmt.Errorf("unknown log format: %s", opts.Format)
	}

	session := opts.SessionID
	if session == "" {
		session = uuid.NewString()
	}

	return zerolog.New(w).
		Level(level).
		With().
		Timestamp().
		Str("session", session).
		Logger(), nil
}

// ParseLevel parses a level name. An empty name means warn.
func ParseLevel(name string) (zerolog.Level, error) {
	if name == "" {
		return zerolog.WarnLevel, nil
	}
	level, err := zerolog.ParseLevel(name)
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("invalid log level: %s", name)
	}
	return level, nil
}
