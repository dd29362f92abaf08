package game

// EvaluateMaterial scores +1 for every cell holding perspective and -1 for every other cell,
// empty cells included, giving a value in [-64, 64].
func EvaluateMaterial(s *State, perspective Color) float64 {
	score := 0
	for _, c := range s.cells {
		if c == perspective {
			score++
		} else {
			score--
		}
	}
	return float64(score)
}

// EvaluateDiscDifference scores perspective's discs minus the opponent's, ignoring empty cells.
func EvaluateDiscDifference(s *State, perspective Color) float64 {
	return float64(s.Count(perspective) - s.Count(perspective.Opposite()))
}

// EvaluationFn looks up an evaluation by name, as used on the command line.
func EvaluationFn(name string) (Evaluate, bool) {
	switch name {
	case "material", "":
		return EvaluateMaterial, true
	case "discs":
		return EvaluateDiscDifference, true
	default:
		return nil, false
	}
}
