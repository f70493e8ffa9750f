// Package logging builds the zerolog loggers used across deskclock and
// carries them through context.Context.
package logging

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Environment variables read by ConfigFromEnv.
const (
	EnvLogLevel  = "DESKCLOCK_LOG_LEVEL"
	EnvLogFormat = "DESKCLOCK_LOG_FORMAT"
)

// Config holds logging configuration
type Config struct {
	Level      zerolog.Level
	Format     string // "json" or "console"
	TimeFormat string
	// Output defaults to os.Stderr.
	Output io.Writer
	// File, when set, receives a JSON copy of every entry.
	File io.Writer
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Level:      zerolog.InfoLevel,
		Format:     "console",
		TimeFormat: time.RFC3339,
	}
}

// New creates a new zerolog logger with the given configuration
func New(cfg Config) zerolog.Logger {
	out := cfg.Output
	if out == nil {
		out = os.Stderr
	}

	var output io.Writer = out
	if cfg.Format == "console" {
		output = zerolog.ConsoleWriter{
			Out:        out,
			TimeFormat: cfg.TimeFormat,
		}
	}

	if cfg.File != nil {
		output = zerolog.MultiLevelWriter(output, cfg.File)
	}

	return zerolog.New(output).
		Level(cfg.Level).
		With().
		Timestamp().
		Logger()
}

// ParseLevel maps trace, debug, info, warn and error to zerolog levels.
// ok is false for anything else.
func ParseLevel(level string) (zerolog.Level, bool) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace":
		return zerolog.TraceLevel, true
	case "debug":
		return zerolog.DebugLevel, true
	case "info":
		return zerolog.InfoLevel, true
	case "warn":
		return zerolog.WarnLevel, true
	case "error":
		return zerolog.ErrorLevel, true
	}
	return zerolog.NoLevel, false
}

// ConfigFromEnv returns DefaultConfig overridden by the environment:
// DESKCLOCK_LOG_LEVEL: trace, debug, info, warn, error (default: info)
// DESKCLOCK_LOG_FORMAT: json, console (default: console)
func ConfigFromEnv() Config {
	cfg := DefaultConfig()

	if level, ok := ParseLevel(os.Getenv(EnvLogLevel)); ok {
		cfg.Level = level
	}

	switch format := os.Getenv(EnvLogFormat); format {
	case "json", "console":
		cfg.Format = format
	}

	return cfg
}
