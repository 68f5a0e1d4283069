package searcher

import (
	"awale/experiments/metrics"
	"awale/game"
)

// Enumerate lists every line of play of at most depth moves starting with
// player. Branches whose move leaves the opponent in a terminal position are
// not followed; a line stops early when no branch is left.
func Enumerate(board game.Board, player game.Player, depth int) []Sequence {
	return enumerate(board, player, depth, []int{}, metrics.NewDummyCollector())
}

func enumerate(board game.Board, player game.Player, depth int, moves []int, m metrics.Collector) []Sequence {
	m.AddNode()

	playable := []game.Successor{}
	for _, s := range board.Successors(player) {
		if !s.Board.IsTerminal(player.Other()) {
			playable = append(playable, s)
		}
	}
	if len(playable) == 0 || depth <= 0 {
		return []Sequence{{Moves: moves, Score: 0}}
	}

	sequences := []Sequence{}
	for _, s := range playable {
		path := make([]int, len(moves)+1)
		copy(path, moves)
		path[len(moves)] = s.Cell

		gain := signed(player, s.Captured)
		for _, sub := range enumerate(s.Board, player.Other(), depth-1, path, m) {
			sub.Score += gain
			sequences = append(sequences, sub)
		}
	}
	return sequences
}

// BestSequence returns the sequence that is best for player, the first one
// on ties. It returns false when sequences is empty.
func BestSequence(sequences []Sequence, player game.Player) (Sequence, bool) {
	if len(sequences) == 0 {
		return Sequence{}, false
	}
	best := sequences[0]
	for _, seq := range sequences[1:] {
		if better(player, seq.Score, best.Score) {
			best = seq
		}
	}
	return best, true
}
