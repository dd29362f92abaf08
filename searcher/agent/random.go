package agent

import (
	"reversi/experiments/metrics"
	"reversi/game"

	"golang.org/x/exp/rand"
)

type randomAgent struct {
	rng *rand.Rand
}

// NewRandomAgent returns an agent that picks uniformly among the legal placements.
// The same seed replays the same choices.
func NewRandomAgent(seed uint64) Agent {
	return &randomAgent{rng: rand.New(rand.NewSource(seed))}
}

func (a *randomAgent) FindMove(state *game.State) (game.Move, metrics.SearchMetric, error) {
	moves := state.Moves()
	if len(moves) == 0 {
		return game.Pass, metrics.SearchMetric{}, nil
	}
	return game.PlaceAt(moves[a.rng.Intn(len(moves))]), metrics.SearchMetric{}, nil
}
