package engine

import (
	"errors"
	"reversi/experiments/metrics"
	"reversi/game"
)

var ErrMaxTurns = errors.New("turn limit reached")

type Engine interface {
	// Run plays a game till it is over or a max number of turns is reached
	Run() (winner game.Color, gameMetric metrics.GameMetric, moveMetrics []metrics.MoveMetric, err error)
}
