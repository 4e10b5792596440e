package searcher

import (
	"fanorona/experiments/metrics"
	"fanorona/game"
	"testing"

	"github.com/stretchr/testify/require"
)

func at(x, y int) game.Coord {
	return game.Coord{X: x, Y: y}
}

func TestFindMove(t *testing.T) {
	t.Run("green takes the largest capture", func(t *testing.T) {
		result, err := New(WithDepth(1), WithHeuristic(game.Counting)).FindMove(game.NewBoard(), game.Green)
		require.NoError(t, err)

		require.Equal(t, []int{4, 2, 2, 2}, result.ChildValues)
		require.Equal(t, 4, result.Value)
		require.Equal(t, 0, result.Index)
		require.Equal(t, game.Move{From: at(3, 2), To: at(4, 2)}, result.Move)
		require.Equal(t, []game.Coord{at(5, 2), at(6, 2), at(7, 2), at(8, 2)}, result.Captured)
		require.Equal(t, 18, result.State.Tokens(game.Red))
	})

	t.Run("red minimizes", func(t *testing.T) {
		result, err := New(WithDepth(1), WithHeuristic(game.Counting), WithAlphaBeta()).FindMove(game.NewBoard(), game.Red)
		require.NoError(t, err)

		require.Equal(t, -4, result.Value)
		require.Equal(t, game.Move{From: at(5, 2), To: at(4, 2)}, result.Move)
		require.Len(t, result.Captured, 4)
	})

	t.Run("ties go to the first child", func(t *testing.T) {
		var board game.Board
		board.Set(at(0, 4), game.Green)
		board.Set(at(8, 0), game.Red)

		result, err := New(WithDepth(1), WithHeuristic(game.Counting)).FindMove(board, game.Green)
		require.NoError(t, err)
		require.Equal(t, []int{0, 0, 0}, result.ChildValues)
		require.Equal(t, 0, result.Index)
		require.Equal(t, board.LegalMoves(game.Green)[0], result.Move)
	})

	t.Run("depth 0 evaluates the root", func(t *testing.T) {
		result, err := New(WithDepth(0), WithHeuristic(game.Naive)).FindMove(game.NewBoard(), game.Green)
		require.NoError(t, err)
		require.Equal(t, 4400, result.Value)
		require.Empty(t, result.ChildValues)
		require.Equal(t, game.Move{From: at(3, 2), To: at(4, 2)}, result.Move, "falls back to the first child")
	})

	t.Run("negative depth", func(t *testing.T) {
		_, err := New(WithDepth(-1)).FindMove(game.NewBoard(), game.Green)
		require.ErrorIs(t, err, game.ErrInvalidDepth)
	})

	t.Run("unknown heuristic", func(t *testing.T) {
		board := game.NewBoard()
		require.NotPanics(t, func() {
			_, err := New(WithDepth(1), WithHeuristic(game.Heuristic(5))).FindMove(board, game.Green)
			require.ErrorIs(t, err, game.ErrUnknownHeuristic)
		})
	})

	t.Run("no legal moves", func(t *testing.T) {
		var board game.Board
		board.Set(at(0, 0), game.Green)
		board.Set(at(1, 0), game.Red)
		board.Set(at(0, 1), game.Red)
		board.Set(at(1, 1), game.Red)

		_, err := New(WithDepth(2)).FindMove(board, game.Green)
		require.ErrorIs(t, err, game.ErrNoLegalMoves)
	})

	t.Run("does not modify the board", func(t *testing.T) {
		board := game.NewBoard()
		_, err := New(WithDepth(2), WithAlphaBeta()).FindMove(board, game.Green)
		require.NoError(t, err)
		require.Equal(t, game.NewBoard(), board)
	})
}

func TestAlphaBetaMatchesMinimax(t *testing.T) {
	boards := map[string]game.Board{"start": game.NewBoard()}
	opened := game.NewBoard()
	opened.ApplyMove(at(3, 2), at(4, 2), nil)
	boards["opened"] = opened

	for name, board := range boards {
		for _, heuristic := range []game.Heuristic{game.Naive, game.Counting, game.Informed} {
			for depth := 0; depth <= 2; depth++ {
				for _, player := range []game.Color{game.Green, game.Red} {
					if len(board.LegalMoves(player)) == 0 {
						continue
					}
					minimax, err := New(WithDepth(depth), WithHeuristic(heuristic)).FindMove(board, player)
					require.NoError(t, err)
					alphaBeta, err := New(WithDepth(depth), WithHeuristic(heuristic), WithAlphaBeta()).FindMove(board, player)
					require.NoError(t, err)

					require.Equal(t, minimax.Value, alphaBeta.Value, "%s %s depth %d %s", name, heuristic, depth, player)
					require.Equal(t, minimax.Move, alphaBeta.Move, "%s %s depth %d %s", name, heuristic, depth, player)
				}
			}
		}
	}
}

func TestAlternatingTurns(t *testing.T) {
	board := game.NewBoard()
	result, err := New(WithDepth(2), WithHeuristic(game.Counting), WithAlternatingTurns()).FindMove(board, game.Green)
	require.NoError(t, err)
	require.Contains(t, board.LegalMoves(game.Green), result.Move)

	// Red answers the four-token capture with a capture of its own.
	require.Less(t, result.Value, 4)
}

func TestTrace(t *testing.T) {
	result, err := New(WithDepth(1), WithHeuristic(game.Counting), WithTrace()).FindMove(game.NewBoard(), game.Green)
	require.NoError(t, err)
	require.NotNil(t, result.Trace)

	require.Equal(t, 4, result.Trace.Value)
	require.Len(t, result.Trace.Children, 4)
	require.Equal(t, 5, result.Trace.Size())
	require.Equal(t, 1, result.Trace.Depth())
	for i, child := range result.Trace.Children {
		require.Equal(t, result.ChildValues[i], child.Value)
	}

	result, err = New(WithDepth(1)).FindMove(game.NewBoard(), game.Green)
	require.NoError(t, err)
	require.Nil(t, result.Trace, "trace is opt-in")

	var empty *Trace
	require.Zero(t, empty.Size())
	require.Zero(t, empty.Depth())
}

func TestSearchMetrics(t *testing.T) {
	collect := func(alphaBeta bool) metrics.SearchMetric {
		options := []Option{WithDepth(2), WithHeuristic(game.Counting), WithMetrics(metrics.NewCollector())}
		if alphaBeta {
			options = append(options, WithAlphaBeta())
		}
		result, err := New(options...).FindMove(game.NewBoard(), game.Green)
		require.NoError(t, err)
		return result.Metric
	}

	minimax := collect(false)
	require.False(t, minimax.AlphaBeta)
	require.Equal(t, 2, minimax.Depth)
	require.Equal(t, 4, minimax.Frontier)
	require.Equal(t, 1+4, minimax.Nodes, "root and its children are expanded")
	require.Zero(t, minimax.Cutoffs)

	alphaBeta := collect(true)
	require.True(t, alphaBeta.AlphaBeta)
	require.LessOrEqual(t, alphaBeta.Leaves, minimax.Leaves)
	require.Equal(t, 4, alphaBeta.Frontier)

	require.NotPanics(t, func() { New(WithMetrics(nil)) })
}
