package game

const Size = 8

// Color is the state of a single cell. It doubles as the player identifier.
type Color int

const (
	Empty Color = iota
	Black
	White
)

// Opposite returns the other player's color. Empty has no opponent and maps to itself.
func (c Color) Opposite() Color {
	switch c {
	case Black:
		return White
	case White:
		return Black
	default:
		return Empty
	}
}

func (c Color) String() string {
	switch c {
	case Black:
		return "black"
	case White:
		return "white"
	default:
		return "empty"
	}
}

// Evaluates the state to a score from the perspective color's viewpoint.
// Higher is better for perspective regardless of whose turn it is.
type Evaluate func(s *State, perspective Color) float64
