package agent

import (
	"reversi/experiments/metrics"
	"reversi/game"
)

type Agent interface {
	// FindMove returns a move for the side to move in state and search metrics (if collected).
	// The state must not be modified.
	FindMove(state *game.State) (game.Move, metrics.SearchMetric, error)
}
