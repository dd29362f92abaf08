package game

import (
	"fmt"
	"maps"
	"slices"
	"strings"
)

// Board holds every cell, row-major.
type Board [Size * Size]Color

// State is a game in progress. Cells change only through Apply; the legal move cache is
// rebuilt after every change and must be treated as read-only by callers.
type State struct {
	cells   Board
	current Color
	lines   map[Position][]Line
	passes  int
}

// NewState returns a state in the standard starting position with Black to move.
func NewState() *State {
	s := &State{}
	s.Reset()
	return s
}

// NewStateFromBoard returns a state for an arbitrary position with the given side to move.
// The pass counter starts at 0.
func NewStateFromBoard(cells Board, current Color) *State {
	if current != Black && current != White {
		panic(fmt.Sprintf("side to move must be black or white, got %s", current))
	}
	s := &State{cells: cells, current: current}
	s.lines = computeLegalMoves(&s.cells, s.current)
	return s
}

// Reset replaces the state with a fresh game.
func (s *State) Reset() {
	s.cells = Board{}
	s.set(Position{3, 3}, White)
	s.set(Position{3, 4}, Black)
	s.set(Position{4, 3}, Black)
	s.set(Position{4, 4}, White)
	s.current = Black
	s.passes = 0
	s.lines = computeLegalMoves(&s.cells, s.current)
}

// Copy returns an independent copy of the state.
func (s State) Copy() *State {
	// lines is shared: every mutator installs a freshly computed map instead of writing
	// into the existing one.
	return &s
}

func (s *State) Get(p Position) Color {
	return s.cells[p.index()]
}

func (s *State) set(p Position, c Color) {
	s.cells[p.index()] = c
}

func (s *State) Cells() Board {
	return s.cells
}

func (s *State) Current() Color {
	return s.current
}

// Passes is the number of consecutive turns that ended without a placement.
func (s *State) Passes() int {
	return s.passes
}

// LegalMoves maps each position the current player may place on to its capture lines.
// An empty map means the current player must pass.
func (s *State) LegalMoves() map[Position][]Line {
	return s.lines
}

// Moves returns the legal placements in row-major order.
func (s *State) Moves() []Position {
	moves := slices.Collect(maps.Keys(s.lines))
	slices.SortFunc(moves, func(a, b Position) int {
		return a.index() - b.index()
	})
	return moves
}

func (s *State) IsGameOver() bool {
	return s.passes >= 2 || s.Count(Empty) == 0
}

// Apply plays m for the current player and hands the turn over. A pass is only accepted when
// the current player has no placement. On error the state is unchanged.
func (s *State) Apply(m Move) error {
	if s.IsGameOver() {
		return &IllegalMoveError{Move: m, Player: s.current, Reason: "game is over"}
	}

	if m.IsPass() {
		if len(s.lines) > 0 {
			return &IllegalMoveError{Move: m, Player: s.current, Reason: "placements available"}
		}
		s.passes++
	} else {
		if !InBounds(m.Row, m.Col) {
			return &IllegalMoveError{Move: m, Player: s.current, Reason: "off the board"}
		}
		lines, ok := s.lines[m.Position]
		if !ok {
			reason := "no capture line"
			if s.Get(m.Position) != Empty {
				reason = "cell occupied"
			}
			return &IllegalMoveError{Move: m, Player: s.current, Reason: reason}
		}
		s.set(m.Position, s.current)
		for _, line := range lines {
			for _, p := range line {
				s.set(p, s.current)
			}
		}
		s.passes = 0
	}

	s.current = s.current.Opposite()
	s.lines = computeLegalMoves(&s.cells, s.current)
	return nil
}

func (s *State) Count(c Color) int {
	n := 0
	for _, cell := range s.cells {
		if cell == c {
			n++
		}
	}
	return n
}

func (s *State) Score() (black, white int) {
	return s.Count(Black), s.Count(White)
}

// Winner returns the color with more discs once the game is over, and Empty for a draw or a game in progress.
func (s *State) Winner() Color {
	if !s.IsGameOver() {
		return Empty
	}
	black, white := s.Score()
	switch {
	case black > white:
		return Black
	case white > black:
		return White
	default:
		return Empty
	}
}

// String draws the board with legal placements marked '*'.
func (s *State) String() string {
	var sb strings.Builder
	sb.WriteString("  a b c d e f g h\n")
	for row := 0; row < Size; row++ {
		fmt.Fprintf(&sb, "%d", row+1)
		for col := 0; col < Size; col++ {
			p := Position{Row: row, Col: col}
			ch := '.'
			switch s.Get(p) {
			case Black:
				ch = 'B'
			case White:
				ch = 'W'
			default:
				if _, ok := s.lines[p]; ok {
					ch = '*'
				}
			}
			fmt.Fprintf(&sb, " %c", ch)
		}
		sb.WriteByte('\n')
	}
	black, white := s.Score()
	fmt.Fprintf(&sb, "black %d, white %d, %s to move", black, white, s.current)
	return sb.String()
}

// ParseBoard reads an 8x8 diagram: '.' or '-' for empty, 'B'/'X' for black, 'W'/'O' for white.
// Whitespace is ignored, so rows may be given one per line.
func ParseBoard(text string) (Board, error) {
	var b Board
	i := 0
	for _, ch := range text {
		var c Color
		switch ch {
		case ' ', '\t', '\n', '\r':
			continue
		case '.', '-':
			c = Empty
		case 'B', 'b', 'X', 'x':
			c = Black
		case 'W', 'w', 'O', 'o':
			c = White
		default:
			return Board{}, fmt.Errorf("%w: unexpected character %q", ErrInvalidBoard, ch)
		}
		if i >= len(b) {
			return Board{}, fmt.Errorf("%w: more than %d cells", ErrInvalidBoard, len(b))
		}
		b[i] = c
		i++
	}
	if i != len(b) {
		return Board{}, fmt.Errorf("%w: got %d cells, want %d", ErrInvalidBoard, i, len(b))
	}
	return b, nil
}
