package gamemaster

import (
	"sync"

	"awale/game"
	"awale/meta"
	"awale/searcher"
	"awale/utils"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

var (
	ErrNotStarted = errors.New("game has not started")
	ErrGameOver   = errors.New("game is over")
	ErrOutOfRange = errors.New("cell out of range")
	ErrEmptyCell  = errors.New("cell is empty")
	ErrStarvation = errors.New("move leaves the opponent without seeds")
)

// Update describes a committed move.
type Update struct {
	Player   game.Player
	Cell     int
	Captured int
	Board    game.Board
	Stores   [2]int
	Over     bool
}

// UpdateGetter returns the oldest unread update, or false if there is none.
type UpdateGetter func() (Update, bool)

type Master interface {
	Init(board game.Board, starting game.Player) (game.State, UpdateGetter, error)
	Play(cell int) error
	Suggest(depth int) int
}

type localMaster struct {
	mu      sync.Mutex
	state   *game.GameState
	updates []Update
}

func NewLocalMaster() *localMaster {
	return &localMaster{}
}

// Init starts a game from board. The returned state is a copy.
func (m *localMaster) Init(board game.Board, starting game.Player) (game.State, UpdateGetter, error) {
	if err := board.Validate(); err != nil {
		return nil, nil, errors.Wrap(err, "invalid board")
	}
	if starting != game.South && starting != game.North {
		return nil, nil, errors.Errorf("invalid starting player %d", starting)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.state = game.NewGameState(board, starting)
	m.updates = nil

	log.Info().Msgf("new game with %d seeds, %s to move", board.Total(), starting)
	return m.state.Copy(), m.next, nil
}

func (m *localMaster) next() (Update, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if len(m.updates) == 0 {
		return Update{}, false
	}
	u := m.updates[0]
	m.updates = m.updates[1:]
	return u, true
}

// Play commits the current player's move after checking it is legal.
func (m *localMaster) Play(cell int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.state == nil {
		return ErrNotStarted
	}
	if m.state.Over() {
		return ErrGameOver
	}
	player := m.state.Current
	if cell < 0 || cell >= meta.Cells {
		return errors.Wrapf(ErrOutOfRange, "cell %d", cell)
	}
	if !m.state.Board.IsLegal(player, cell) {
		return errors.Wrapf(ErrEmptyCell, "%s cell %d", player, cell)
	}
	if utils.FindIndex(m.state.LegalMoves(), cell) < 0 {
		return errors.Wrapf(ErrStarvation, "%s cell %d", player, cell)
	}

	_, captured := m.state.Board.Play(player, cell)
	m.state = m.state.Play(cell).(*game.GameState)
	m.updates = append(m.updates, Update{
		Player:   player,
		Cell:     cell,
		Captured: captured,
		Board:    m.state.Board,
		Stores:   m.state.Stores,
		Over:     m.state.Over(),
	})

	if m.state.Over() {
		log.Info().Msgf("game over, stores %v, winner %s", m.state.Stores, m.state.Winner())
	}
	return nil
}

// Suggest returns a hint for the player to move, or game.NoMove.
func (m *localMaster) Suggest(depth int) int {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.state == nil || m.state.Over() {
		return game.NoMove
	}
	return searcher.Suggest(m.state.Board, m.state.Current, depth)
}
