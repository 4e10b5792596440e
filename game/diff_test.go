package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInferMove(t *testing.T) {
	t.Run("every opening move", func(t *testing.T) {
		before := NewBoard()
		for _, player := range []Color{Green, Red} {
			for _, move := range before.LegalMoves(player) {
				after := before
				after.ApplyMove(move.From, move.To, nil)

				got, err := InferMove(&before, &after, player.Opponent())
				require.NoError(t, err)
				require.Equal(t, move, got)
			}
		}
	})

	t.Run("identical boards", func(t *testing.T) {
		b := NewBoard()
		_, err := InferMove(&b, &b, Red)
		require.ErrorIs(t, err, ErrAmbiguousDiff)
	})

	t.Run("two origins", func(t *testing.T) {
		before := NewBoard()
		after := before
		after.Set(at(3, 2), Empty)
		after.Set(at(3, 3), Empty)
		after.Set(at(4, 2), Green)

		_, err := InferMove(&before, &after, Red)
		require.ErrorIs(t, err, ErrAmbiguousDiff)
	})

	t.Run("wrong excluded color sees the captures", func(t *testing.T) {
		before := NewBoard()
		after := before
		after.ApplyMove(at(3, 2), at(4, 2), nil)

		_, err := InferMove(&before, &after, Green)
		require.ErrorIs(t, err, ErrAmbiguousDiff)
	})
}

func TestCapturedBetween(t *testing.T) {
	before := NewBoard()
	after := before
	after.ApplyMove(at(4, 3), at(4, 2), nil)

	require.Equal(t, []Coord{at(4, 0), at(4, 1)}, CapturedBetween(&before, &after, Green))
	require.Equal(t, []Coord{at(4, 3)}, CapturedBetween(&before, &after, Red), "the mover's origin reads as a removed green token")

	var quiet Board
	quiet.Set(at(0, 4), Green)
	moved := quiet
	moved.ApplyMove(at(0, 4), at(0, 3), nil)
	require.Empty(t, CapturedBetween(&quiet, &moved, Green))
}
