package experiments

import (
	"runtime"

	"reversi/experiments/metrics"
)

// RunThroughputExperiment plays each search configuration against itself at the same depth
// to compare nodes searched and time per move.
func RunThroughputExperiment(root string, games int) (string, error) {
	const depth = 4
	cpus := runtime.NumCPU()
	configs := []metrics.AgentConfig{
		{ID: 1, Kind: "minimax", Depth: depth, Goroutines: 1, Evaluation: "material"},
		{ID: 2, Kind: "minimax", Depth: depth, Pruning: true, Goroutines: 1, Evaluation: "material"},
		{ID: 3, Kind: "minimax", Depth: depth, Goroutines: cpus, Evaluation: "material"},
		{ID: 4, Kind: "minimax", Depth: depth, Pruning: true, Goroutines: cpus, Evaluation: "material"},
	}
	// Same config for both players, so games differ only in search cost
	matchUps := [][]metrics.AgentConfig{}
	for _, config := range configs {
		matchUps = append(matchUps, []metrics.AgentConfig{config, config})
	}
	return runExperiment(root, "throughput", configs, matchUps, games)
}
