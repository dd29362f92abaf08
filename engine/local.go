package engine

import (
	"errors"
	"fmt"
	"reversi/experiments/metrics"
	"reversi/game"
	"reversi/meta"
	"reversi/searcher/agent"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

var _ Engine = (*LocalEngine)(nil)

type Option func(e *LocalEngine)

// LocalEngine owns the live game state and asks each side's agent for moves in turn.
type LocalEngine struct {
	State       *game.State
	agents      map[game.Color]agent.Agent
	ids         map[game.Color]int
	maxTurns    int
	maxAttempts int
}

func WithMaxTurns(turns int) Option {
	return func(e *LocalEngine) {
		if turns > 0 {
			e.maxTurns = turns
		}
	}
}

// WithMaxAttempts sets how many moves an agent may propose in one turn before an illegal one
// aborts the game. Zero asks again until the move is legal, which is what a human seat needs.
func WithMaxAttempts(attempts int) Option {
	return func(e *LocalEngine) {
		if attempts >= 0 {
			e.maxAttempts = attempts
		}
	}
}

// WithState starts the game from a given position instead of the standard opening.
func WithState(state *game.State) Option {
	return func(e *LocalEngine) {
		if state != nil {
			e.State = state.Copy()
		}
	}
}

// WithAgentIDs labels the agents in the game metrics (metrics.AgentConfig.ID).
func WithAgentIDs(black, white int) Option {
	return func(e *LocalEngine) {
		e.ids[game.Black] = black
		e.ids[game.White] = white
	}
}

func NewLocalEngine(black, white agent.Agent, options ...Option) *LocalEngine {
	if black == nil || white == nil {
		panic("both colors need an agent")
	}
	e := &LocalEngine{
		State:       game.NewState(),
		agents:      map[game.Color]agent.Agent{game.Black: black, game.White: white},
		ids:         map[game.Color]int{},
		maxTurns:    meta.MaxTurns,
		maxAttempts: meta.MaxAttempts,
	}
	for _, option := range options {
		option(e)
	}
	return e
}

// Run executes the game loop until the game is over.
func (e *LocalEngine) Run() (game.Color, metrics.GameMetric, []metrics.MoveMetric, error) {
	gameMetric := metrics.GameMetric{
		ID:        uuid.NewString(),
		Black:     e.ids[game.Black],
		White:     e.ids[game.White],
		StartTime: time.Now(),
	}
	logger := log.With().Str("game", gameMetric.ID).Logger()
	logger.Info().Msgf("%s is starting", e.State.Current())

	var moveMetrics []metrics.MoveMetric
	for turn := 1; !e.State.IsGameOver(); turn++ {
		if turn > e.maxTurns {
			return game.Empty, gameMetric, moveMetrics, fmt.Errorf("%w: %d", ErrMaxTurns, e.maxTurns)
		}

		player := e.State.Current()
		move, searchMetric, err := e.turn(player)
		if err != nil {
			return game.Empty, gameMetric, moveMetrics, err
		}
		if move.IsPass() {
			gameMetric.Passes++
		}
		moveMetrics = append(moveMetrics, metrics.MoveMetric{
			Step:         turn,
			Player:       player,
			Move:         move,
			SearchMetric: searchMetric,
		})
		logger.Debug().Int("turn", turn).Stringer("player", player).Stringer("move", move).Msg("move played")
	}

	winner := e.State.Winner()
	gameMetric.Winner = winner
	gameMetric.BlackDiscs, gameMetric.WhiteDiscs = e.State.Score()
	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)
	gameMetric.TotalMoves = len(moveMetrics)

	if winner == game.Empty {
		logger.Info().Msgf("game over: draw %d-%d", gameMetric.BlackDiscs, gameMetric.WhiteDiscs)
	} else {
		logger.Info().Msgf("game over: %s wins %d-%d", winner, gameMetric.BlackDiscs, gameMetric.WhiteDiscs)
	}
	return winner, gameMetric, moveMetrics, nil
}

// turn asks player's agent for a move and applies it. An illegal move is not applied and the
// agent is asked again, up to maxAttempts times (without limit when maxAttempts is 0).
func (e *LocalEngine) turn(player game.Color) (game.Move, metrics.SearchMetric, error) {
	for attempt := 1; ; attempt++ {
		move, searchMetric, err := e.agents[player].FindMove(e.State.Copy())
		if err != nil {
			return game.Pass, searchMetric, fmt.Errorf("agent for %s failed: %w", player, err)
		}
		err = e.State.Apply(move)
		if err == nil {
			return move, searchMetric, nil
		}
		if !errors.Is(err, game.ErrIllegalMove) || (e.maxAttempts > 0 && attempt >= e.maxAttempts) {
			return game.Pass, searchMetric, err
		}
		log.Warn().Err(err).Int("attempt", attempt).Msg("agent proposed an illegal move")
	}
}
