package main

import (
	"log/slog"
	"testing"
	"time"

	"github.com/milk9111/starfall/ecs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBench(t *testing.T) {
	for _, mode := range []ecs.Mode{ecs.Strict, ecs.Lenient} {
		t.Run(mode.String(), func(t *testing.T) {
			res, err := bench(120, mode, true, slog.New(slog.DiscardHandler))
			require.NoError(t, err)
			assert.Equal(t, 120, res.frames)
			assert.Positive(t, res.entities)
			assert.Positive(t, res.sprites)
		})
	}
}

func TestProfileMode(t *testing.T) {
	for _, kind := range []string{"cpu", "mem", "allocs", "trace"} {
		assert.NotNil(t, profileMode(kind), kind)
	}
	assert.Nil(t, profileMode(""))
	assert.Nil(t, profileMode("block"))
}

func TestPerFrame(t *testing.T) {
	assert.Zero(t, result{}.perFrame())
	assert.Equal(t, 2*time.Millisecond, result{frames: 5, elapsed: 10 * time.Millisecond}.perFrame())
}
