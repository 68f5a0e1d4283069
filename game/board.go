package game

import (
	"fmt"
	"strings"

	"awale/meta"
	"awale/utils"

	"github.com/hashicorp/go-multierror"
)

// Player identifies one side of the board.
type Player int

const (
	South Player = iota // player 0
	North               // player 1
)

// NoPlayer marks an undecided or drawn game.
const NoPlayer Player = -1

// NoMove is returned when a player has no playable cell.
const NoMove = -1

func (p Player) Other() Player {
	return 1 - p
}

func (p Player) String() string {
	switch p {
	case South:
		return "player0"
	case North:
		return "player1"
	}
	return "none"
}

// Board holds the seed count of every cell, indexed by player then cell.
// It is a value type: assigning or passing a Board copies it.
type Board [2][meta.Cells]int

// NewBoard returns a board with the given number of seeds in every cell.
func NewBoard(seeds int) Board {
	var b Board
	for p := range b {
		for c := range b[p] {
			b[p][c] = seeds
		}
	}
	return b
}

// Seeds returns the number of seeds left on the player's row.
func (b Board) Seeds(p Player) int {
	return utils.Sum(b[p][:])
}

func (b Board) Total() int {
	return b.Seeds(South) + b.Seeds(North)
}

func (b Board) IsLegal(p Player, cell int) bool {
	return b[p][cell] > 0
}

// LegalMoves returns the player's non-empty cells in ascending order.
func (b Board) LegalMoves(p Player) []int {
	moves := make([]int, 0, meta.Cells)
	for cell, n := range b[p] {
		if n > 0 {
			moves = append(moves, cell)
		}
	}
	return moves
}

// Apply sows the seeds of the player's cell and resolves captures in place.
// It returns the number of captured seeds. An empty cell is a no-op.
func (b *Board) Apply(player Player, cell int) int {
	seeds := b[player][cell]
	if seeds == 0 {
		return 0
	}
	b[player][cell] = 0

	row, pos := player, cell
	for ; seeds > 0; seeds-- {
		pos++
		if pos == meta.Cells {
			row = row.Other()
			pos = 0
		}
		b[row][pos]++
	}

	// Walk back from the landing cell, never crossing into the mover's row
	captured := 0
	for row != player && pos >= 0 && (b[row][pos] == 2 || b[row][pos] == 3) {
		captured += b[row][pos]
		b[row][pos] = 0
		pos--
	}
	return captured
}

// Play returns the board after the move together with the captured seeds,
// leaving the receiver untouched.
func (b Board) Play(player Player, cell int) (Board, int) {
	captured := b.Apply(player, cell)
	return b, captured
}

// Validate reports every cell holding a negative seed count.
func (b Board) Validate() error {
	var errs error
	for p := range b {
		for c, n := range b[p] {
			if n < 0 {
				errs = multierror.Append(errs, fmt.Errorf("%s cell %d holds %d seeds", Player(p), c, n))
			}
		}
	}
	return errs
}

func (b Board) String() string {
	var sb strings.Builder
	// North is printed right to left so that sowing reads counter-clockwise
	for c := meta.Cells - 1; c >= 0; c-- {
		fmt.Fprintf(&sb, "%3d", b[North][c])
	}
	sb.WriteString("\n")
	for c := 0; c < meta.Cells; c++ {
		fmt.Fprintf(&sb, "%3d", b[South][c])
	}
	return sb.String()
}
