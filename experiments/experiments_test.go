package experiments

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"reversi/experiments/metrics"
	"reversi/game"
	"testing"

	"github.com/stretchr/testify/require"
)

func countRows(t *testing.T, path string) int {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return len(rows) - 1 // header
}

func TestRunExperiment(t *testing.T) {
	configs := []metrics.AgentConfig{
		{ID: 1, Kind: "minimax", Depth: 1, Evaluation: "discs"},
		{ID: 2, Kind: "random", Seed: 3},
	}

	dir, err := runExperiment(t.TempDir(), "smoke", configs, [][]metrics.AgentConfig{configs}, 2)

	require.NoError(t, err)
	require.Equal(t, 2, countRows(t, filepath.Join(dir, "agent_configs.csv")))
	require.Equal(t, 2, countRows(t, filepath.Join(dir, "game_records.csv")))
	require.Positive(t, countRows(t, filepath.Join(dir, "move_records.csv")))
}

func TestRunGameAlternatesAgentIDs(t *testing.T) {
	minimax := metrics.AgentConfig{ID: 7, Kind: "minimax", Depth: 1}
	random := metrics.AgentConfig{ID: 8, Kind: "random", Seed: 1}

	winner, gameMetric, _, err := runGame(random, minimax, 0)

	require.NoError(t, err)
	require.Equal(t, 8, gameMetric.Black)
	require.Equal(t, 7, gameMetric.White)
	require.Equal(t, winner, gameMetric.Winner)
}

func TestCreateMinimax(t *testing.T) {
	m := createMinimax(metrics.AgentConfig{Depth: 2, Pruning: true, Goroutines: 2, Evaluation: "material"})
	require.Equal(t, 2, m.Depth())

	_, _, metric := m.BestMove(game.NewState(), true, game.Black)
	require.True(t, metric.Pruning, "Metrics should be collected")
	require.Equal(t, 2, metric.Goroutines)
}
