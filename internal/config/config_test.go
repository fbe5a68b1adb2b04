package config

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLogLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"":      slog.LevelInfo,
		"false": slog.LevelInfo,
		"0":     slog.LevelInfo,
		"1":     slog.LevelDebug,
		"true":  slog.LevelDebug,
		"2":     slog.Level(-8),
	}
	for k, v := range cases {
		t.Run(k, func(t *testing.T) {
			t.Setenv("TENSORIZED_DEBUG", k)
			assert.Equal(t, v, LogLevel())
		})
	}
}

func TestVar(t *testing.T) {
	t.Setenv("TENSORIZED_SEED", `  "42" `)
	assert.Equal(t, "42", Var("TENSORIZED_SEED"))
	assert.Equal(t, uint64(42), Seed())
}

func TestParallel(t *testing.T) {
	t.Setenv("TENSORIZED_NUM_WORKERS", "1")
	t.Setenv("TENSORIZED_MIN_CHUNK", "64")
	cfg := Parallel()
	assert.False(t, cfg.Enabled)
	assert.Equal(t, 1, cfg.NumWorkers)
	assert.Equal(t, 64, cfg.MinChunkSize)

	t.Setenv("TENSORIZED_NUM_WORKERS", "4")
	cfg = Parallel()
	assert.True(t, cfg.Enabled)
	assert.Equal(t, 4, cfg.NumWorkers)
}

func TestInvalidFallsBack(t *testing.T) {
	t.Setenv("TENSORIZED_MIN_CHUNK", "-3")
	assert.Equal(t, 256, MinChunk())

	t.Setenv("TENSORIZED_SEED", "abc")
	assert.Equal(t, uint64(0), Seed())
}

func TestAsMap(t *testing.T) {
	t.Setenv("TENSORIZED_NUM_WORKERS", "3")
	m := AsMap()
	assert.Len(t, m, 4)
	assert.Equal(t, 3, m["TENSORIZED_NUM_WORKERS"].Value)
	assert.Equal(t, "3", Values()["TENSORIZED_NUM_WORKERS"])
}
