package game

// EvaluateCaptures compares the players' stores to produce a score between
// -1 and 1 from the current player's perspective
func EvaluateCaptures(s State) float64 {
	gs, ok := s.(*GameState)
	if !ok {
		panic("unexpected state type")
	}
	current := gs.Current
	return normalize(float64(gs.Stores[current]), float64(gs.Stores[current.Other()]))
}

// EvaluateMaterial also counts the seeds each player still holds on its row,
// which it would collect if the game ended now
func EvaluateMaterial(s State) float64 {
	gs, ok := s.(*GameState)
	if !ok {
		panic("unexpected state type")
	}
	current := gs.Current
	opponent := current.Other()
	mine := float64(gs.Stores[current] + gs.Board.Seeds(current))
	theirs := float64(gs.Stores[opponent] + gs.Board.Seeds(opponent))
	return (normalize(float64(gs.Stores[current]), float64(gs.Stores[opponent])) + normalize(mine, theirs)) / 2
}

// normalize normalizes value relative to otherValue to a score between -1 and 1
func normalize(value float64, otherValue float64) float64 {
	total := value + otherValue
	if total == 0 {
		return 0
	}
	return (value - otherValue) / total
}
