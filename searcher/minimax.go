package searcher

import (
	"fmt"
	"math"
	"reversi/experiments/metrics"
	"reversi/game"
	"sync"
)

var (
	negInf = math.Inf(-1)
	posInf = math.Inf(1)
)

// search holds what stays fixed while recursing.
type search struct {
	evaluate    game.Evaluate
	perspective game.Color
	pruning     bool
	metrics     metrics.Collector
}

func (sr *search) leaf(s *game.State) (game.Move, float64) {
	sr.metrics.AddLeaf()
	return game.Pass, sr.evaluate(s, sr.perspective)
}

// minimax returns the first candidate with the strictly best score. alpha and beta only
// matter when pruning; without it every candidate is searched.
func (sr *search) minimax(s *game.State, depth int, alpha, beta float64, maximize bool) (game.Move, float64) {
	sr.metrics.AddNode()
	if depth <= 0 || s.IsGameOver() {
		return sr.leaf(s)
	}

	best, bestScore := game.Pass, posInf
	if maximize {
		bestScore = negInf
	}
	for _, move := range candidates(s) {
		_, score := sr.minimax(play(s, move), depth-1, alpha, beta, !maximize)
		if improves(score, bestScore, maximize) {
			best, bestScore = move, score
		}
		if !sr.pruning {
			continue
		}
		if maximize {
			alpha = max(alpha, bestScore)
		} else {
			beta = min(beta, bestScore)
		}
		if alpha >= beta {
			break
		}
	}
	return best, bestScore
}

// parallel scores the root's children on separate goroutines, then picks in candidate order
// so the result matches the sequential search.
func (sr *search) parallel(s *game.State, depth int, maximize bool, goroutines int) (game.Move, float64) {
	sr.metrics.AddNode()
	if depth <= 0 || s.IsGameOver() {
		return sr.leaf(s)
	}

	moves := candidates(s)
	scores := make([]float64, len(moves))
	task := make(chan int, len(moves))
	for i := range moves {
		task <- i
	}
	close(task)

	var wg sync.WaitGroup
	for i := 0; i < min(goroutines, len(moves)); i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			for i := range task {
				_, scores[i] = sr.minimax(play(s, moves[i]), depth-1, negInf, posInf, !maximize)
			}
		}()
	}
	wg.Wait()

	best, bestScore := game.Pass, posInf
	if maximize {
		bestScore = negInf
	}
	for i, score := range scores {
		if improves(score, bestScore, maximize) {
			best, bestScore = moves[i], score
		}
	}
	return best, bestScore
}

func improves(score, best float64, maximize bool) bool {
	if maximize {
		return score > best
	}
	return score < best
}

// candidates lists the placements in row-major order, or the forced pass.
func candidates(s *game.State) []game.Move {
	positions := s.Moves()
	if len(positions) == 0 {
		return []game.Move{game.Pass}
	}
	moves := make([]game.Move, len(positions))
	for i, p := range positions {
		moves[i] = game.PlaceAt(p)
	}
	return moves
}

func play(s *game.State, move game.Move) *game.State {
	next := s.Copy()
	if err := next.Apply(move); err != nil {
		panic(fmt.Sprintf("candidate %s rejected: %v", move, err))
	}
	return next
}
