package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewGameState(t *testing.T) {
	t.Run("opening position", func(t *testing.T) {
		gs := NewGameState(NewBoard(4), South)

		require.False(t, gs.Over(), "Opening position should not be over")
		require.Equal(t, South, gs.Player())
		require.Equal(t, 25, gs.Majority, "Majority should be more than half of 48 seeds")
		require.Equal(t, []int{0, 1, 2, 3, 4, 5}, gs.LegalMoves())
		require.Equal(t, NoMove, gs.LastMove)
		require.Equal(t, NoPlayer, gs.Winner())
	})

	t.Run("position where the mover can only starve the opponent", func(t *testing.T) {
		gs := NewGameState(Board{{0, 0, 0, 0, 0, 1}, {1, 0, 0, 0, 0, 0}}, South)

		require.True(t, gs.Over(), "Game should end when every move starves the opponent")
		require.Equal(t, [2]int{1, 1}, gs.Stores, "Remaining seeds should go to their row owner")
		require.Equal(t, Board{}, gs.Board, "Board should be cleared at close-out")
		require.Equal(t, NoPlayer, gs.Winner(), "Equal stores should be a draw")
		require.Empty(t, gs.LegalMoves(), "Finished game should have no legal moves")
	})
}

func TestGameStatePlay(t *testing.T) {
	t.Run("playing a move", func(t *testing.T) {
		gs := NewGameState(NewBoard(4), South)

		next := gs.Play(2).(*GameState)

		require.Equal(t, North, next.Player(), "Turn should pass to the opponent")
		require.Equal(t, 1, next.Turns)
		require.Equal(t, 2, next.LastMove)
		require.Equal(t, Board{{4, 4, 0, 5, 5, 5}, {5, 4, 4, 4, 4, 4}}, next.Board)
		require.Equal(t, NewBoard(4), gs.Board, "Original state should not change")
		require.Equal(t, 0, gs.Turns, "Original state should not change")
	})

	t.Run("winning with a majority of captures", func(t *testing.T) {
		gs := NewGameState(Board{{0, 0, 0, 0, 0, 1}, {1, 1, 0, 0, 0, 0}}, South)
		require.Equal(t, 2, gs.Majority)
		require.False(t, gs.Over())

		next := gs.Play(5).(*GameState)

		require.True(t, next.Over(), "Capturing a majority should end the game")
		require.Equal(t, South, next.Winner())
		require.Equal(t, [2]int{2, 0}, next.Stores)
	})

	t.Run("starving moves are not legal", func(t *testing.T) {
		gs := NewGameState(Board{{1, 0, 0, 0, 0, 1}, {1, 0, 0, 0, 0, 0}}, South)

		require.False(t, gs.Over())
		require.Equal(t, []int{0}, gs.LegalMoves(), "Capturing the opponent's last seeds is forbidden")
	})
}

func TestGameStateHash(t *testing.T) {
	a := NewGameState(NewBoard(4), South)
	b := NewGameState(NewBoard(4), South)
	c := NewGameState(NewBoard(4), North)

	require.Equal(t, a.Hash(), b.Hash(), "Equal states should hash equally")
	require.NotEqual(t, a.Hash(), c.Hash(), "Player to move should change the hash")
	require.NotEqual(t, a.Hash(), a.Play(0).Hash(), "Moves should change the hash")
}

func TestEvaluate(t *testing.T) {
	t.Run("captures from the mover's perspective", func(t *testing.T) {
		gs := NewGameState(NewBoard(4), South)
		gs.Stores = [2]int{3, 1}

		require.InDelta(t, 0.5, EvaluateCaptures(gs), 1e-9)
		gs.Current = North
		require.InDelta(t, -0.5, EvaluateCaptures(gs), 1e-9)
	})

	t.Run("no captures yet", func(t *testing.T) {
		require.Equal(t, 0.0, EvaluateCaptures(NewGameState(NewBoard(4), South)))
		require.Equal(t, 0.0, EvaluateMaterial(NewGameState(NewBoard(4), South)))
	})

	t.Run("material counts seeds on the row", func(t *testing.T) {
		gs := NewGameState(Board{{4, 0, 0, 0, 0, 0}, {1, 1, 0, 0, 0, 0}}, South)
		gs.Stores = [2]int{2, 2}

		// captures 0, material (6-4)/10
		require.InDelta(t, 0.1, EvaluateMaterial(gs), 1e-9)
	})

	t.Run("panics on foreign states", func(t *testing.T) {
		require.Panics(t, func() { EvaluateCaptures(nil) })
	})
}
