package game

// Line is a run of opponent discs that a placement would flip, ordered outward from the placed cell.
type Line []Position

// computeLegalMoves maps every empty cell with at least one capture line for mover to its lines.
// It is recomputed from scratch after every state change.
func computeLegalMoves(cells *Board, mover Color) map[Position][]Line {
	moves := make(map[Position][]Line)
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			p := Position{Row: row, Col: col}
			if lines := findLines(cells, p, mover); len(lines) > 0 {
				moves[p] = lines
			}
		}
	}
	return moves
}

// findLines returns the capture lines a placement by mover at p would trigger, one per valid direction.
func findLines(cells *Board, p Position, mover Color) []Line {
	if cells[p.index()] != Empty {
		return nil
	}
	var lines []Line
	for _, d := range Directions {
		if line := findLine(cells, p, d, mover); line != nil {
			lines = append(lines, line)
		}
	}
	return lines
}

// findLine walks from p in direction d. The walk must cross at least one opponent disc and
// stop on one of mover's discs; leaving the board or reaching an empty cell voids the direction.
func findLine(cells *Board, p Position, d Position, mover Color) Line {
	opponent := mover.Opposite()
	var line Line
	row, col := p.Row+d.Row, p.Col+d.Col
	for InBounds(row, col) {
		switch cells[row*Size+col] {
		case opponent:
			line = append(line, Position{Row: row, Col: col})
		case mover:
			if len(line) == 0 {
				return nil
			}
			return line
		default:
			return nil
		}
		row, col = row+d.Row, col+d.Col
	}
	return nil
}
