package game

import (
	"fmt"
	"strings"
)

// Position is a cell coordinate, both components in [0, Size).
type Position struct {
	Row int
	Col int
}

// Directions are the 8 compass steps scanned for capture lines.
var Directions = [8]Position{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

func InBounds(row, col int) bool {
	return row >= 0 && row < Size && col >= 0 && col < Size
}

func (p Position) index() int {
	if !InBounds(p.Row, p.Col) {
		panic(fmt.Sprintf("position (%d,%d) out of bounds", p.Row, p.Col))
	}
	return p.Row*Size + p.Col
}

// String renders the position in algebraic notation, e.g. Position{2, 3} is "d3".
func (p Position) String() string {
	if !InBounds(p.Row, p.Col) {
		return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
	}
	return fmt.Sprintf("%c%d", 'a'+p.Col, p.Row+1)
}

// ParsePosition reads algebraic notation ("d3", case-insensitive).
func ParsePosition(text string) (Position, error) {
	text = strings.ToLower(strings.TrimSpace(text))
	if len(text) != 2 {
		return Position{}, fmt.Errorf("%w: %q", ErrInvalidPosition, text)
	}
	col := int(text[0]) - 'a'
	row := int(text[1]) - '1'
	if !InBounds(row, col) {
		return Position{}, fmt.Errorf("%w: %q", ErrInvalidPosition, text)
	}
	return Position{Row: row, Col: col}, nil
}

// Move is either a placement or a pass. The zero value is the pass.
type Move struct {
	Position
	Place bool
}

var Pass = Move{}

func PlaceAt(p Position) Move {
	return Move{Position: p, Place: true}
}

func (m Move) IsPass() bool {
	return !m.Place
}

func (m Move) String() string {
	if m.IsPass() {
		return "pass"
	}
	return m.Position.String()
}

// ParseMove accepts "pass" or a position in algebraic notation.
func ParseMove(text string) (Move, error) {
	if strings.EqualFold(strings.TrimSpace(text), "pass") {
		return Pass, nil
	}
	p, err := ParsePosition(text)
	if err != nil {
		return Pass, err
	}
	return PlaceAt(p), nil
}
