package searcher

import (
	"reversi/experiments/metrics"
	"reversi/game"
	"reversi/meta"
	"time"

	"github.com/rs/zerolog/log"
)

type Option func(m *Minimax)

// Minimax is a fixed-depth adversarial searcher. A Minimax is not safe for concurrent use
// because its metrics collector is shared across calls.
type Minimax struct {
	depth      int
	goroutines int
	pruning    bool
	evaluate   game.Evaluate
	metrics    metrics.Collector
}

func WithDepth(depth int) Option {
	return func(m *Minimax) {
		if depth > 0 {
			m.depth = depth
		}
	}
}

// WithGoroutines searches the root's children concurrently.
func WithGoroutines(goroutines int) Option {
	return func(m *Minimax) {
		if goroutines > 0 {
			m.goroutines = goroutines
		}
	}
}

// WithPruning enables alpha-beta cutoffs. The chosen move and its score are the same as without.
func WithPruning() Option {
	return func(m *Minimax) {
		m.pruning = true
	}
}

func WithEvaluationFn(evaluate game.Evaluate) Option {
	return func(m *Minimax) {
		if evaluate != nil {
			m.evaluate = evaluate
		}
	}
}

func WithMetrics() Option {
	return func(m *Minimax) {
		m.metrics = metrics.NewCollector()
	}
}

func NewMinimax(options ...Option) *Minimax {
	m := &Minimax{ // Default values
		depth:      meta.DefaultDepth,
		goroutines: 1,
		evaluate:   game.EvaluateMaterial,
		metrics:    metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(m)
	}
	return m
}

func (m *Minimax) Depth() int {
	return m.depth
}

// BestMove searches s to the configured depth. maximize tells whether the side to move at the
// root picks the highest or the lowest score; scores are always from perspective's viewpoint.
// The caller's state is never modified.
func (m *Minimax) BestMove(s *game.State, maximize bool, perspective game.Color) (game.Move, float64, metrics.SearchMetric) {
	m.metrics.Start(m.depth, m.goroutines, m.pruning)
	start := time.Now()

	sr := &search{
		evaluate:    m.evaluate,
		perspective: perspective,
		pruning:     m.pruning,
		metrics:     m.metrics,
	}
	var move game.Move
	var score float64
	if m.goroutines > 1 {
		move, score = sr.parallel(s, m.depth, maximize, m.goroutines)
	} else {
		move, score = sr.minimax(s, m.depth, negInf, posInf, maximize)
	}

	metric := m.metrics.Complete()
	metric.Score = score
	log.Debug().
		Stringer("player", s.Current()).
		Stringer("move", move).
		Float64("score", score).
		Int("depth", m.depth).
		Int("nodes", metric.Nodes).
		Dur("elapsed", time.Since(start)).
		Msg("search complete")
	return move, score, metric
}

// BestMove runs plain fixed-depth minimax. At depth 0 or on a finished game it returns
// game.Pass with the static evaluation.
func BestMove(s *game.State, depth int, maximize bool, perspective game.Color) (game.Move, float64) {
	sr := &search{
		evaluate:    game.EvaluateMaterial,
		perspective: perspective,
		metrics:     metrics.NewDummyCollector(),
	}
	return sr.minimax(s, depth, negInf, posInf, maximize)
}

// Evaluate is the static heuristic used at the search frontier.
func Evaluate(s *game.State, perspective game.Color) float64 {
	return game.EvaluateMaterial(s, perspective)
}
