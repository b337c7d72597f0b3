package analysis

import (
	"runtime"

	"github.com/rs/zerolog"
)

// Config holds analysis run configuration
type Config struct {
	// Parallelism bounds how many groups decompose concurrently.
	Parallelism int

	// Logger receives per-group run events. Defaults to a disabled logger
	// so library use stays silent.
	Logger zerolog.Logger
}

// DefaultConfig returns default analysis configuration
func DefaultConfig() Config {
	return Config{
		Parallelism: runtime.GOMAXPROCS(0),
		Logger:      zerolog.Nop(),
	}
}
