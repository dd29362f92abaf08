package experiments

import (
	"fmt"
	"reversi/engine"
	"reversi/experiments/metrics"
	"reversi/game"
	"reversi/searcher"
	"reversi/searcher/agent"

	"github.com/rs/zerolog/log"
)

// baseline is the random opponent every depth is measured against.
var baseline = metrics.AgentConfig{ID: 0, Kind: "random", Seed: 1}

var depthConfigs = []metrics.AgentConfig{
	{ID: 1, Kind: "minimax", Depth: 1, Pruning: true, Goroutines: 1, Evaluation: "material"},
	{ID: 2, Kind: "minimax", Depth: 2, Pruning: true, Goroutines: 1, Evaluation: "material"},
	{ID: 3, Kind: "minimax", Depth: 3, Pruning: true, Goroutines: 1, Evaluation: "material"},
	{ID: 4, Kind: "minimax", Depth: 4, Pruning: true, Goroutines: 1, Evaluation: "material"},
}

// RunDepthExperiment pairs each search depth against the random baseline, alternating colors.
func RunDepthExperiment(root string, games int) (string, error) {
	matchUps := [][]metrics.AgentConfig{}
	for _, config := range depthConfigs {
		matchUps = append(matchUps, []metrics.AgentConfig{config, baseline})
	}
	return runExperiment(root, "depth", append(depthConfigs, baseline), matchUps, games)
}

// RunEvaluationExperiment pairs the material heuristic against the disc difference heuristic.
func RunEvaluationExperiment(root string, games int) (string, error) {
	material := metrics.AgentConfig{ID: 1, Kind: "minimax", Depth: 3, Pruning: true, Goroutines: 1, Evaluation: "material"}
	discs := metrics.AgentConfig{ID: 2, Kind: "minimax", Depth: 3, Pruning: true, Goroutines: 1, Evaluation: "discs"}
	configs := []metrics.AgentConfig{material, discs}
	return runExperiment(root, "evaluation", configs, [][]metrics.AgentConfig{configs}, games)
}

func runExperiment(root, name string, configs []metrics.AgentConfig, matchUps [][]metrics.AgentConfig, games int) (string, error) {
	gameRecords := []metrics.GameRecord{}
	moveRecords := []metrics.MoveRecord{}

	log.Info().Msgf("starting %s experiment...", name)

	for mi, matchup := range matchUps {
		log.Info().Msgf("starting matchup %d of %d between agent1=%+v and agent2=%+v...", mi+1, len(matchUps), matchup[0], matchup[1])

		for i := 0; i < games; i++ {
			// Alternate who plays black
			black, white := matchup[0], matchup[1]
			if i%2 == 1 {
				black, white = white, black
			}

			winner, gameMetric, moveMetrics, err := runGame(black, white, uint64(i))
			if err != nil {
				return "", fmt.Errorf("matchup %d game %d: %w", mi+1, i+1, err)
			}
			gameRecords = append(gameRecords, metrics.GameRecord{GameMetric: gameMetric})
			for _, mm := range moveMetrics {
				moveRecords = append(moveRecords, metrics.MoveRecord{
					Game:       gameMetric.ID,
					MoveMetric: mm,
				})
			}

			log.Info().Msgf("completed matchup %d of %d game %d with winner: %s", mi+1, len(matchUps), i+1, winner)
		}
		log.Info().Msgf("completed matchup %d of %d", mi+1, len(matchUps))
	}

	log.Info().Msgf("completed %s experiment", name)

	writer, err := metrics.NewWriter(root, name)
	if err != nil {
		return "", fmt.Errorf("failed to create experiment writer: %w", err)
	}
	if err := writer.WriteAgentConfigs(configs); err != nil {
		return "", err
	}
	log.Info().Msg("stored agent configs")

	if err := writer.WriteGameRecords(gameRecords); err != nil {
		return "", err
	}
	log.Info().Msg("stored game records")

	if err := writer.WriteMoveRecords(moveRecords); err != nil {
		return "", err
	}
	log.Info().Msg("stored move records")

	return writer.Dir(), nil
}

// runGame executes a single game between two agents and returns the winner
func runGame(black, white metrics.AgentConfig, round uint64) (game.Color, metrics.GameMetric, []metrics.MoveMetric, error) {
	e := engine.NewLocalEngine(createAgent(black, round), createAgent(white, round), engine.WithAgentIDs(black.ID, white.ID))
	return e.Run()
}

func createAgent(config metrics.AgentConfig, round uint64) agent.Agent {
	if config.Kind == "random" {
		return agent.NewRandomAgent(config.Seed + round)
	}
	return agent.NewMinimaxAgent(createMinimax(config))
}

func createMinimax(config metrics.AgentConfig) *searcher.Minimax {
	options := []searcher.Option{searcher.WithMetrics()}

	if config.Depth > 0 {
		options = append(options, searcher.WithDepth(config.Depth))
	}
	if config.Pruning {
		options = append(options, searcher.WithPruning())
	}
	if config.Goroutines > 0 {
		options = append(options, searcher.WithGoroutines(config.Goroutines))
	}
	if evaluate, ok := game.EvaluationFn(config.Evaluation); ok {
		options = append(options, searcher.WithEvaluationFn(evaluate))
	}

	return searcher.NewMinimax(options...)
}
