package game

import (
	"encoding/binary"
	"hash/fnv"
)

// GameState represents the dynamic state of a game: the board, whose turn it
// is and the seeds each player has captured so far.
type GameState struct {
	Board    Board  // Seeds on the board
	Current  Player // The player to move
	Stores   [2]int // Captured seeds per player
	Majority int    // Captures needed to win outright
	Turns    int    // Moves played so far
	LastMove int    // The last cell played, NoMove before the first move
	Ended    bool   // Whether the game is over
	Won      Player // The winner, NoPlayer while undecided or on a draw
}

// NewGameState starts a game from the given board with the given player to move.
func NewGameState(board Board, starting Player) *GameState {
	gs := &GameState{
		Board:    board,
		Current:  starting,
		Majority: board.Total()/2 + 1,
		LastMove: NoMove,
		Won:      NoPlayer,
	}
	gs.checkOver()
	return gs
}

// Board and Stores are arrays, so a shallow copy is a full copy.
func (gs GameState) Copy() *GameState {
	return &gs
}

func (gs GameState) Player() Player {
	return gs.Current
}

// LegalMoves returns the cells the current player may play. Moves that
// would leave the opponent without seeds are forbidden.
func (gs GameState) LegalMoves() []int {
	if gs.Ended {
		return nil
	}
	moves := []int{}
	for _, s := range gs.Board.Successors(gs.Current) {
		if !s.Starves {
			moves = append(moves, s.Cell)
		}
	}
	return moves
}

// Play returns the state after the current player sows the given cell.
// The cell is expected to be one of LegalMoves.
func (gs GameState) Play(cell int) State {
	next := gs.Copy()
	captured := next.Board.Apply(gs.Current, cell)
	next.Stores[gs.Current] += captured
	next.LastMove = cell
	next.Turns++
	next.Current = gs.Current.Other()
	next.checkOver()
	return next
}

func (gs *GameState) checkOver() {
	if gs.Stores[South] >= gs.Majority || gs.Stores[North] >= gs.Majority {
		gs.end()
		return
	}
	if gs.Board.IsTerminal(gs.Current) {
		// Seeds left on the board go to the owner of the row
		for _, p := range []Player{South, North} {
			gs.Stores[p] += gs.Board.Seeds(p)
		}
		gs.Board = Board{}
		gs.end()
	}
}

func (gs *GameState) end() {
	gs.Ended = true
	switch {
	case gs.Stores[South] > gs.Stores[North]:
		gs.Won = South
	case gs.Stores[North] > gs.Stores[South]:
		gs.Won = North
	default:
		gs.Won = NoPlayer
	}
}

func (gs GameState) Over() bool {
	return gs.Ended
}

func (gs GameState) Winner() Player {
	return gs.Won
}

func (gs GameState) Hash() StateHash {
	hasher := fnv.New64a()

	// Hash current player
	binary.Write(hasher, binary.LittleEndian, int64(gs.Current))

	// Hash seed counts
	for _, row := range gs.Board {
		for _, n := range row {
			binary.Write(hasher, binary.LittleEndian, int64(n))
		}
	}

	// Hash stores
	for _, n := range gs.Stores {
		binary.Write(hasher, binary.LittleEndian, int64(n))
	}

	return StateHash(hasher.Sum64())
}
