package agent

import (
	"reversi/experiments/metrics"
	"reversi/game"
	"reversi/searcher"
)

type minimaxAgent struct {
	minimax *searcher.Minimax
}

// NewMinimaxAgent returns an agent that maximizes the searcher's score from its own color's viewpoint.
func NewMinimaxAgent(minimax *searcher.Minimax) Agent {
	return minimaxAgent{minimax: minimax}
}

func (a minimaxAgent) FindMove(state *game.State) (game.Move, metrics.SearchMetric, error) {
	move, _, metric := a.minimax.BestMove(state, true, state.Current())
	return move, metric, nil
}
