package game

import "awale/meta"

// Successor is the outcome of one legal move.
type Successor struct {
	Cell     int
	Board    Board
	Captured int
	Starves  bool // the opponent is left without seeds
}

// Successors simulates every legal move of the player, in cell order.
// Legality and starvation are decided here only, so that the oracle and the
// searches agree on both.
func (b Board) Successors(p Player) []Successor {
	successors := make([]Successor, 0, meta.Cells)
	for _, cell := range b.LegalMoves(p) {
		next, captured := b.Play(p, cell)
		successors = append(successors, Successor{
			Cell:     cell,
			Board:    next,
			Captured: captured,
			Starves:  next.Seeds(p.Other()) == 0,
		})
	}
	return successors
}

// IsTerminal reports whether the player cannot move, or can only move by
// starving the opponent.
func (b Board) IsTerminal(p Player) bool {
	if b.Seeds(p) == 0 {
		return true
	}
	for _, s := range b.Successors(p) {
		if !s.Starves {
			return false
		}
	}
	return true
}
