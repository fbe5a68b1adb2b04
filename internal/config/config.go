// Package config reads TENSORIZED_* environment variables.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"runtime"
	"strconv"
	"strings"

	"github.com/born-ml/tensorized/internal/parallel"
)

// Var returns an environment variable stripped of surrounding quotes and
// whitespace.
func Var(key string) string {
	return strings.Trim(strings.TrimSpace(os.Getenv(key)), "\"'")
}

// LogLevel returns the log level to use.
// Configurable via TENSORIZED_DEBUG: 0/false is INFO (default), 1/true is
// DEBUG, larger integers go below DEBUG in steps of 4.
func LogLevel() slog.Level {
	level := slog.LevelInfo
	if s := Var("TENSORIZED_DEBUG"); s != "" {
		if b, _ := strconv.ParseBool(s); b {
			level = slog.LevelDebug
		} else if i, _ := strconv.ParseInt(s, 10, 64); i != 0 {
			level = slog.Level(i * -4)
		}
	}
	return level
}

// Int returns a getter for a positive integer variable, falling back to
// defaultValue when unset or invalid.
func Int(key string, defaultValue int) func() int {
	return func() int {
		if s := Var(key); s != "" {
			n, err := strconv.Atoi(s)
			if err != nil || n <= 0 {
				slog.Warn("invalid environment variable, using default", "key", key, "value", s, "default", defaultValue)
			} else {
				return n
			}
		}
		return defaultValue
	}
}

// Uint64 returns a getter for an unsigned integer variable.
func Uint64(key string, defaultValue uint64) func() uint64 {
	return func() uint64 {
		if s := Var(key); s != "" {
			if n, err := strconv.ParseUint(s, 10, 64); err != nil {
				slog.Warn("invalid environment variable, using default", "key", key, "value", s, "default", defaultValue)
			} else {
				return n
			}
		}
		return defaultValue
	}
}

var (
	// NumWorkers sets the number of goroutines used by parallel kernels.
	NumWorkers = Int("TENSORIZED_NUM_WORKERS", runtime.NumCPU())
	// MinChunk sets the smallest per-goroutine chunk of parallel kernels.
	MinChunk = Int("TENSORIZED_MIN_CHUNK", parallel.DefaultConfig().MinChunkSize)
	// Seed sets the seed used for random factor initialisation.
	Seed = Uint64("TENSORIZED_SEED", 0)
)

// Parallel returns the kernel parallelism configured by the environment.
func Parallel() parallel.Config {
	n := NumWorkers()
	return parallel.Config{
		Enabled:      n > 1,
		NumWorkers:   n,
		MinChunkSize: MinChunk(),
	}
}

// EnvVar describes one configuration variable.
type EnvVar struct {
	Name        string
	Value       any
	Description string
}

// AsMap returns every configuration variable with its current value.
func AsMap() map[string]EnvVar {
	return map[string]EnvVar{
		"TENSORIZED_DEBUG":       {"TENSORIZED_DEBUG", LogLevel(), "Show additional debug information (e.g. TENSORIZED_DEBUG=1)"},
		"TENSORIZED_NUM_WORKERS": {"TENSORIZED_NUM_WORKERS", NumWorkers(), "Goroutines used by parallel kernels (default: number of CPUs)"},
		"TENSORIZED_MIN_CHUNK":   {"TENSORIZED_MIN_CHUNK", MinChunk(), "Smallest chunk of work handed to one goroutine"},
		"TENSORIZED_SEED":        {"TENSORIZED_SEED", Seed(), "Seed for random factor initialisation"},
	}
}

// Values returns every configuration value formatted as a string.
func Values() map[string]string {
	vals := make(map[string]string)
	for k, v := range AsMap() {
		vals[k] = fmt.Sprintf("%v", v.Value)
	}
	return vals
}
