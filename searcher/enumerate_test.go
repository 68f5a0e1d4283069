package searcher

import (
	"awale/game"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEnumerate(t *testing.T) {
	t.Run("depth 0", func(t *testing.T) {
		got := Enumerate(game.NewBoard(4), game.South, 0)

		require.Equal(t, []Sequence{{Moves: []int{}, Score: 0}}, got,
			"Depth 0 should return the empty sequence only")
	})

	t.Run("one move from the opening", func(t *testing.T) {
		got := Enumerate(game.NewBoard(4), game.South, 1)

		require.Len(t, got, 6, "Every cell should start a sequence")
		for i, seq := range got {
			require.Equal(t, []int{i}, seq.Moves, "Sequences should follow cell order")
			require.Equal(t, 0, seq.Score, "Opening moves capture nothing")
		}
	})

	t.Run("frontier size", func(t *testing.T) {
		require.Len(t, Enumerate(game.NewBoard(4), game.South, 2), 36)
		require.Len(t, Enumerate(game.NewBoard(4), game.South, 3), 190)
	})

	t.Run("captures by player 0 score positive", func(t *testing.T) {
		board := game.Board{{0, 0, 0, 0, 2, 1}, {1, 1, 0, 0, 0, 0}}

		require.Equal(t, []Sequence{{Moves: []int{4}, Score: 2}, {Moves: []int{5}, Score: 2}},
			Enumerate(board, game.South, 1))
		require.Equal(t, []Sequence{{Moves: []int{4, 1}, Score: 2}, {Moves: []int{5, 1}, Score: 2}},
			Enumerate(board, game.South, 2), "Scores should accumulate along the line")
	})

	t.Run("captures by player 1 score negative", func(t *testing.T) {
		board := game.Board{{1, 1, 0, 0, 0, 0}, {0, 0, 0, 0, 2, 1}}

		require.Equal(t, []Sequence{{Moves: []int{4}, Score: -2}, {Moves: []int{5}, Score: -2}},
			Enumerate(board, game.North, 1))
	})

	t.Run("branches ending the game are pruned", func(t *testing.T) {
		// The only move captures, and the opponent can then only starve player 0
		board := game.Board{{0, 0, 0, 0, 0, 1}, {1, 1, 0, 0, 0, 0}}

		require.Equal(t, []Sequence{{Moves: []int{}, Score: 0}}, Enumerate(board, game.South, 3))
	})

	t.Run("board is left untouched", func(t *testing.T) {
		board := game.NewBoard(4)
		Enumerate(board, game.South, 3)
		require.Equal(t, game.NewBoard(4), board)
	})

	t.Run("deterministic", func(t *testing.T) {
		board := game.Board{{2, 0, 1, 2, 0, 0}, {2, 0, 0, 0, 1, 2}}
		require.Equal(t, Enumerate(board, game.South, 4), Enumerate(board, game.South, 4))
	})
}

func TestBestSequence(t *testing.T) {
	sequences := []Sequence{
		{Moves: []int{0}, Score: 1},
		{Moves: []int{1}, Score: 3},
		{Moves: []int{2}, Score: -2},
		{Moves: []int{3}, Score: 3},
	}

	best, ok := BestSequence(sequences, game.South)
	require.True(t, ok)
	require.Equal(t, []int{1}, best.Moves, "Player 0 should get the first maximum")

	best, ok = BestSequence(sequences, game.North)
	require.True(t, ok)
	require.Equal(t, []int{2}, best.Moves, "Player 1 should get the minimum")

	_, ok = BestSequence(nil, game.South)
	require.False(t, ok)
}
