package agent

import (
	"bufio"
	"fmt"
	"io"
	"reversi/experiments/metrics"
	"reversi/game"
	"strings"
)

type consoleAgent struct {
	in  *bufio.Scanner
	out io.Writer
}

// NewConsoleAgent returns an agent that shows the board on out and reads moves such as "d3"
// or "pass" from in, one per line.
func NewConsoleAgent(in io.Reader, out io.Writer) Agent {
	return &consoleAgent{in: bufio.NewScanner(in), out: out}
}

func (a *consoleAgent) FindMove(state *game.State) (game.Move, metrics.SearchMetric, error) {
	fmt.Fprintf(a.out, "%s\n", state)
	for {
		fmt.Fprintf(a.out, "%s> ", a.prompt(state))
		if !a.in.Scan() {
			if err := a.in.Err(); err != nil {
				return game.Pass, metrics.SearchMetric{}, fmt.Errorf("failed to read move: %w", err)
			}
			return game.Pass, metrics.SearchMetric{}, fmt.Errorf("failed to read move: %w", io.EOF)
		}
		line := strings.TrimSpace(a.in.Text())
		if line == "" {
			continue
		}
		move, err := game.ParseMove(line)
		if err != nil {
			fmt.Fprintf(a.out, "%v\n", err)
			continue
		}
		return move, metrics.SearchMetric{}, nil
	}
}

func (a *consoleAgent) prompt(state *game.State) string {
	moves := state.Moves()
	if len(moves) == 0 {
		return fmt.Sprintf("%s has no placement, enter pass", state.Current())
	}
	names := make([]string, len(moves))
	for i, p := range moves {
		names[i] = p.String()
	}
	return fmt.Sprintf("%s to move [%s]", state.Current(), strings.Join(names, " "))
}
