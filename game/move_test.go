package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewMove(t *testing.T) {
	t.Run("removal", func(t *testing.T) {
		m, err := NewMove(Player1, c(4, 4))

		require.NoError(t, err)
		require.True(t, m.IsRemoval())
		require.Equal(t, 0, m.Steps)
		require.Equal(t, c(4, 4), m.Start())
		require.Equal(t, c(4, 4), m.End())
		require.Empty(t, m.JumpedOver())
		require.Equal(t, "X removes <4,4>", m.String())
	})

	t.Run("jump chain", func(t *testing.T) {
		m, err := NewMove(Player2, c(4, 0), c(4, 2), c(4, 4))

		require.NoError(t, err)
		require.False(t, m.IsRemoval())
		require.Equal(t, 2, m.Steps)
		require.Equal(t, c(4, 4), m.End())
		require.Equal(t, []Coord{c(4, 0), c(4, 2), c(4, 4)}, m.Coordinates())
		require.Equal(t, []Coord{c(4, 1), c(4, 3)}, m.JumpedOver())
		require.Equal(t, "O moves <4,0> to <4,2> to <4,4>", m.String())
	})

	t.Run("malformed input is rejected", func(t *testing.T) {
		_, err := NewMove(Player1)
		require.ErrorIs(t, err, ErrMalformedMove)

		_, err = NewJump(Player1, c(0, 0))
		require.ErrorIs(t, err, ErrMalformedMove, "a jump needs a destination")

		_, err = NewJump(Player1, c(0, 0), c(0, 2), c(0, 4), c(0, 6), c(0, 8))
		require.ErrorIs(t, err, ErrMalformedMove, "no chain can exceed the board")

		_, err = NewRemoval(None, c(0, 0))
		require.ErrorIs(t, err, ErrInvalidPlayer)

		_, err = NewJump(Player(7), c(0, 0), c(0, 2))
		require.ErrorIs(t, err, ErrInvalidPlayer)

		require.Panics(t, func() { MustJump(Player1, c(0, 0)) })
		require.Panics(t, func() { MustRemoval(None, c(0, 0)) })
	})

	t.Run("moves are comparable values", func(t *testing.T) {
		a := MustJump(Player1, c(1, 3), c(3, 3))
		b := MustJump(Player1, c(1, 3), c(3, 3))
		seen := map[Move]bool{a: true}

		require.True(t, seen[b])
		require.True(t, Move{}.IsZero())
		require.False(t, a.IsZero())
		require.Equal(t, "no move", Move{}.String())
	})
}

func TestRender(t *testing.T) {
	gs := NewGameState()

	out := gs.String()

	require.Contains(t, out, "Turn: X\n")
	require.Contains(t, out, "\t1 2 3 4 5 6 7 8\n\n")
	require.Contains(t, out, "1\tX O X O X O X O \n")
	require.Contains(t, out, "8\tO X O X O X O X \n")

	parsed, err := ParseBoard(
		"X O X O X O X O",
		"O X O X O X O X",
		"X O X O X O X O",
		"O X O X O X O X",
		"X O X O X O X O",
		"O X O X O X O X",
		"X O X O X O X O",
		"O X O X O X O X",
	)
	require.NoError(t, err)
	require.Equal(t, gs.Board(), parsed, "parsing the rendered layout should give the initial board")

	_, err = ParseBoard("X")
	require.Error(t, err)
	_, err = ParseBoard("XOXOXOXZ", "", "", "", "", "", "", "")
	require.Error(t, err)
}
