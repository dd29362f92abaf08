package engine

import (
	"bytes"
	"errors"
	"reversi/experiments/metrics"
	"reversi/game"
	"reversi/searcher"
	"reversi/searcher/agent"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// scriptedAgent replays fixed moves, then falls back to the first legal move.
type scriptedAgent struct {
	moves []game.Move
	calls int
	err   error
}

func (a *scriptedAgent) FindMove(state *game.State) (game.Move, metrics.SearchMetric, error) {
	a.calls++
	if a.err != nil {
		return game.Pass, metrics.SearchMetric{}, a.err
	}
	if len(a.moves) > 0 {
		m := a.moves[0]
		a.moves = a.moves[1:]
		return m, metrics.SearchMetric{}, nil
	}
	if moves := state.Moves(); len(moves) > 0 {
		return game.PlaceAt(moves[0]), metrics.SearchMetric{}, nil
	}
	return game.Pass, metrics.SearchMetric{}, nil
}

func TestLocalEngineRun(t *testing.T) {
	t.Run("random agents play a complete game", func(t *testing.T) {
		e := NewLocalEngine(agent.NewRandomAgent(1), agent.NewRandomAgent(2), WithAgentIDs(1, 2))

		winner, gameMetric, moveMetrics, err := e.Run()

		require.NoError(t, err)
		require.True(t, e.State.IsGameOver())
		require.Equal(t, e.State.Winner(), winner)
		require.Equal(t, winner, gameMetric.Winner)
		require.Equal(t, 1, gameMetric.Black)
		require.Equal(t, 2, gameMetric.White)
		require.Len(t, moveMetrics, gameMetric.TotalMoves)
		black, white := e.State.Score()
		require.Equal(t, black, gameMetric.BlackDiscs)
		require.Equal(t, white, gameMetric.WhiteDiscs)
		_, err = uuid.Parse(gameMetric.ID)
		require.NoError(t, err, "Game ID should be a uuid")

		// Placements plus the 4 starting discs account for every disc
		placements := gameMetric.TotalMoves - gameMetric.Passes
		require.Equal(t, black+white, placements+4)
		for i, mm := range moveMetrics {
			require.Equal(t, i+1, mm.Step)
		}
	})

	t.Run("players alternate", func(t *testing.T) {
		e := NewLocalEngine(agent.NewRandomAgent(3), agent.NewRandomAgent(4))

		_, _, moveMetrics, err := e.Run()

		require.NoError(t, err)
		require.Equal(t, game.Black, moveMetrics[0].Player)
		for i := 1; i < len(moveMetrics); i++ {
			require.Equal(t, moveMetrics[i-1].Player.Opposite(), moveMetrics[i].Player)
		}
	})

	t.Run("minimax agent records search metrics", func(t *testing.T) {
		minimax := agent.NewMinimaxAgent(searcher.NewMinimax(searcher.WithDepth(2), searcher.WithPruning(), searcher.WithMetrics()))
		e := NewLocalEngine(minimax, agent.NewRandomAgent(5))

		_, _, moveMetrics, err := e.Run()

		require.NoError(t, err)
		require.Equal(t, 2, moveMetrics[0].Depth, "Search metrics should be recorded for minimax moves")
		require.Positive(t, moveMetrics[0].Nodes)
	})

	t.Run("illegal move is retried", func(t *testing.T) {
		black := &scriptedAgent{moves: []game.Move{game.PlaceAt(game.Position{}), game.Pass}}
		e := NewLocalEngine(black, &scriptedAgent{}, WithMaxTurns(1), WithMaxAttempts(3))

		_, _, moveMetrics, err := e.Run()

		require.ErrorIs(t, err, ErrMaxTurns)
		require.Equal(t, 3, black.calls, "Agent should be asked again after each illegal move")
		require.Len(t, moveMetrics, 1)
		require.Equal(t, game.PlaceAt(game.Position{Row: 2, Col: 3}), moveMetrics[0].Move)
	})

	t.Run("too many illegal moves abort the game", func(t *testing.T) {
		black := &scriptedAgent{moves: []game.Move{game.Pass, game.Pass}}
		e := NewLocalEngine(black, &scriptedAgent{}, WithMaxAttempts(2))

		_, _, _, err := e.Run()

		require.ErrorIs(t, err, game.ErrIllegalMove)
		require.Equal(t, 2, black.calls)
		require.Equal(t, game.NewState(), e.State, "Illegal moves should not change the state")
	})

	t.Run("unlimited attempts keep asking a human", func(t *testing.T) {
		var out bytes.Buffer
		human := agent.NewConsoleAgent(strings.NewReader("a1\na1\na1\na1\nd3\n"), &out)
		computer := agent.NewMinimaxAgent(searcher.NewMinimax(searcher.WithDepth(1)))
		e := NewLocalEngine(human, computer, WithMaxTurns(1), WithMaxAttempts(0))

		_, _, moveMetrics, err := e.Run()

		require.ErrorIs(t, err, ErrMaxTurns, "Illegal moves should not end the game")
		require.Len(t, moveMetrics, 1)
		require.Equal(t, game.PlaceAt(game.Position{Row: 2, Col: 3}), moveMetrics[0].Move)
		require.Equal(t, game.White, e.State.Current())
	})

	t.Run("agent errors abort the game", func(t *testing.T) {
		failure := errors.New("disconnected")
		e := NewLocalEngine(&scriptedAgent{err: failure}, &scriptedAgent{})

		_, _, _, err := e.Run()

		require.ErrorIs(t, err, failure)
	})

	t.Run("starts from a given position", func(t *testing.T) {
		b, err := game.ParseBoard(`
			........
			........
			........
			...BB...
			........
			........
			........
			........`)
		require.NoError(t, err)
		e := NewLocalEngine(&scriptedAgent{}, &scriptedAgent{}, WithState(game.NewStateFromBoard(b, game.White)))

		winner, gameMetric, moveMetrics, err := e.Run()

		require.NoError(t, err)
		require.Equal(t, game.Black, winner)
		require.Equal(t, 2, gameMetric.Passes)
		require.Len(t, moveMetrics, 2)
	})
}
