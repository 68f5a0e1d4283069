package searcher

import "awale/game"

// Sequence is a line of play from the searched position together with the
// seeds it captures, positive when player 0 captures more.
type Sequence struct {
	Moves []int
	Score int
}

// Ranked is a root move with its minimax score.
type Ranked struct {
	Cell  int
	Score int
}

// signed converts seeds captured by player into a score from player 0's side.
func signed(player game.Player, captured int) int {
	if player == game.South {
		return captured
	}
	return -captured
}

// better reports whether score beats best for player: player 0 maximizes and
// player 1 minimizes. Ties never replace best.
func better(player game.Player, score, best int) bool {
	if player == game.South {
		return score > best
	}
	return score < best
}
