package main

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCreateMinimax(t *testing.T) {
	valid := config{depth: 2, goroutines: 1, evaluation: "material"}

	t.Run("valid config", func(t *testing.T) {
		m, err := createMinimax(valid)
		require.NoError(t, err)
		require.Equal(t, 2, m.Depth())
	})

	t.Run("non-positive depth is rejected", func(t *testing.T) {
		for _, depth := range []int{0, -1} {
			cfg := valid
			cfg.depth = depth
			_, err := createMinimax(cfg)
			require.Error(t, err, "depth %d should not fall back to the default", depth)
		}
	})

	t.Run("non-positive goroutines are rejected", func(t *testing.T) {
		cfg := valid
		cfg.goroutines = 0
		_, err := createMinimax(cfg)
		require.Error(t, err)
	})

	t.Run("unknown evaluation is rejected", func(t *testing.T) {
		cfg := valid
		cfg.evaluation = "mobility"
		_, err := createMinimax(cfg)
		require.Error(t, err)
	})
}
