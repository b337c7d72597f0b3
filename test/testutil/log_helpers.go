// Package testutil holds shared logging helpers for tests.
package testutil

import (
	"os"
	"testing"

	"github.com/rs/zerolog"
)

// Logger returns a console logger writing through t.Log, so run output
// stays attached to the test that produced it. The level comes from
// LOG_LEVEL when set, else warnings and up.
func Logger(t *testing.T) zerolog.Logger {
	console := zerolog.ConsoleWriter{Out: testWriter{t}, TimeFormat: "15:04:05", NoColor: true}
	return zerolog.New(console).With().Timestamp().Logger().Level(ParseLogLevel(zerolog.WarnLevel))
}

// ParseLogLevel parses log level from the LOG_LEVEL environment variable
// or returns the default
func ParseLogLevel(defaultLevel zerolog.Level) zerolog.Level {
	levelStr := os.Getenv("LOG_LEVEL")
	if levelStr == "" {
		return defaultLevel
	}

	level, err := zerolog.ParseLevel(levelStr)
	if err != nil {
		return defaultLevel
	}
	return level
}

type testWriter struct {
	t *testing.T
}

func (w testWriter) Write(p []byte) (int, error) {
	w.t.Log(string(p))
	return len(p), nil
}
