package searcher

import (
	"awale/experiments/metrics"
	"awale/game"
)

// Suggest returns the best cell for player searching depth moves ahead, or
// game.NoMove when every move would starve the opponent.
func Suggest(board game.Board, player game.Player, depth int) int {
	best, ok := pick(Rank(board, player, depth), player)
	if !ok {
		return game.NoMove
	}
	return best.Cell
}

// Rank scores every root move that does not starve the opponent, in cell
// order. A move scores its captured seeds plus the minimax value of the
// reply tree.
func Rank(board game.Board, player game.Player, depth int) []Ranked {
	return rank(board, player, depth, metrics.NewDummyCollector())
}

func rank(board game.Board, player game.Player, depth int, m metrics.Collector) []Ranked {
	m.AddNode()

	ranked := []Ranked{}
	for _, s := range board.Successors(player) {
		if s.Starves {
			continue
		}
		score := s.Captured + minimax(s.Board, player.Other(), depth-1, player == game.North, m)
		ranked = append(ranked, Ranked{Cell: s.Cell, Score: score})
	}
	return ranked
}

func pick(ranked []Ranked, player game.Player) (Ranked, bool) {
	if len(ranked) == 0 {
		return Ranked{}, false
	}
	best := ranked[0]
	for _, r := range ranked[1:] {
		if better(player, r.Score, best.Score) {
			best = r
		}
	}
	return best, true
}

// minimax scores the position for mover. A node with no move left after the
// starvation filter scores 0, like a terminal node.
func minimax(board game.Board, mover game.Player, depth int, maximizing bool, m metrics.Collector) int {
	m.AddNode()

	if depth <= 0 || board.IsTerminal(mover) {
		return 0
	}

	found := false
	best := 0
	for _, s := range board.Successors(mover) {
		if s.Starves {
			continue
		}
		score := minimax(s.Board, mover.Other(), depth-1, !maximizing, m)
		if maximizing {
			score += s.Captured
		} else {
			score -= s.Captured
		}

		if !found || (maximizing && score > best) || (!maximizing && score < best) {
			best = score
			found = true
		}
	}
	return best
}
