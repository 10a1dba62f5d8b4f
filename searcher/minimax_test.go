package searcher

import (
	"bytes"
	"konane/game"
	"konane/meta"
	"konane/utils"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func c(row, col int) game.Coord {
	return game.Coord{Row: row, Col: col}
}

func afterOpening(t *testing.T) *game.GameState {
	gs := game.NewGameState()
	require.True(t, gs.ApplyInPlace(game.MustRemoval(game.Player1, c(3, 3))))
	require.True(t, gs.ApplyInPlace(game.MustRemoval(game.Player2, c(3, 4))))
	return gs
}

// doubleJump has Player1 choosing between a single and a double capture along
// the top row. Neither choice ends the game immediately.
func doubleJump() *game.GameState {
	board := game.MustParseBoard(
		"XO.O....",
		"........",
		"........",
		"........",
		"........",
		"........",
		"........",
		"OX......",
	)
	return game.NewGameStateFrom(board, game.Player1, true, true)
}

// shortGame is a single row where every line of play ends within two plies.
func shortGame() *game.GameState {
	board := game.MustParseBoard(
		"XO.O....",
		"........",
		"........",
		"........",
		"........",
		"........",
		"........",
		"........",
	)
	return game.NewGameStateFrom(board, game.Player1, true, true)
}

// midgame plays random moves from the opening.
func midgame(t *testing.T, seed uint64, plies int) *game.GameState {
	rng := rand.New(rand.NewSource(seed))
	gs := afterOpening(t)
	for i := 0; i < plies; i++ {
		moves := gs.LegalMoves()
		if len(moves) == 0 {
			break
		}
		require.True(t, gs.ApplyInPlace(moves[rng.Intn(len(moves))]))
	}
	return gs
}

func capturedByOpponent(gs *game.GameState, player game.Player) int {
	return -gs.NumPieces(player.Opponent())
}

func constant(*game.GameState, game.Player) int {
	return 0
}

func TestNewMinimax(t *testing.T) {
	require.Panics(t, func() { NewMinimax(game.None, game.EvaluatePieces, WithDepth(1)) })
	require.Panics(t, func() { NewMinimax(game.Player1, nil, WithDepth(1)) })
	require.Panics(t, func() { NewMinimax(game.Player1, game.EvaluatePieces) })
	require.Panics(t, func() { NewMinimax(game.Player1, game.EvaluatePieces, WithDepth(-1)) })
	require.Panics(t, func() { NewMinimax(game.Player1, game.EvaluatePieces, WithDuration(-1)) })
	require.Panics(t, func() {
		NewMinimax(game.Player1, game.EvaluatePieces, WithDepth(meta.FIRST_DEPTH-1), WithDuration(time.Minute))
	}, "a deepening cap below the first depth would never search")

	m := NewMinimax(game.Player2, game.EvaluatePieces, WithDepth(2))
	require.Equal(t, game.Player2, m.Player())
	require.True(t, m.pruning, "pruning should be on by default")
}

func TestSearch(t *testing.T) {
	t.Run("prefers the capture that leaves the opponent fewer pieces", func(t *testing.T) {
		gs := doubleJump()
		require.Len(t, gs.LegalMoves(), 2)

		for _, pruning := range []bool{true, false} {
			m := NewMinimax(game.Player1, capturedByOpponent, WithDepth(1), WithPruning(pruning))
			result := m.Search(gs)

			require.True(t, result.Found)
			require.Equal(t, game.MustJump(game.Player1, c(0, 0), c(0, 2), c(0, 4)), result.Move)
			require.Equal(t, -1, result.Value)
			require.Equal(t, 1, result.Depth)
		}
	})

	t.Run("ties go to the first generated move", func(t *testing.T) {
		gs := doubleJump()

		m := NewMinimax(game.Player1, game.EvaluatePieces, WithDepth(1))
		move, ok := m.FindMove(gs)

		require.True(t, ok)
		require.Equal(t, game.MustJump(game.Player1, c(0, 0), c(0, 2)), move)

		m = NewMinimax(game.Player1, constant, WithDepth(1))
		move, ok = m.FindMove(game.NewGameState())
		require.True(t, ok)
		require.Equal(t, game.MustRemoval(game.Player1, c(0, 0)), move)
	})

	t.Run("terminal positions score as wins and losses", func(t *testing.T) {
		gs := shortGame()

		m := NewMinimax(game.Player1, constant, WithDepth(4))
		result := m.Search(gs)

		require.True(t, result.Found)
		require.Equal(t, game.MustJump(game.Player1, c(0, 0), c(0, 2), c(0, 4)), result.Move)
		require.Equal(t, game.WinScore, result.Value)
	})

	t.Run("no move when the side to move is stuck", func(t *testing.T) {
		board := game.MustParseBoard(
			"X.......",
			"........",
			"........",
			"........",
			"........",
			"........",
			"........",
			"........",
		)
		gs := game.NewGameStateFrom(board, game.Player1, true, true)

		m := NewMinimax(game.Player1, constant, WithDepth(3))
		result := m.Search(gs)

		require.False(t, result.Found)
		require.True(t, result.Move.IsZero())
	})

	t.Run("search leaves the state untouched", func(t *testing.T) {
		gs := afterOpening(t)
		before := *gs

		NewMinimax(game.Player1, game.EvaluateSafeMoves, WithDepth(3)).Search(gs)

		require.Equal(t, before, *gs)
	})
}

func TestPruningMatchesMinimax(t *testing.T) {
	states := map[string]*game.GameState{
		"after opening": afterOpening(t),
		"midgame 1":     midgame(t, 3, 6),
		"midgame 2":     midgame(t, 11, 9),
		"double jump":   doubleJump(),
	}

	evaluators := map[string]game.Evaluate{
		"pieces":              game.EvaluatePieces,
		"dmoves":              game.EvaluateMobilityDifference,
		"dsafemoves":          game.EvaluateSafeMoves,
		"drelaxedsafesquares": game.EvaluateRelaxedSafeSquares,
		"asymmetric":          game.Asymmetric(game.EvaluateMobility, game.EvaluateSafeSquares),
	}

	for name, gs := range states {
		for evalName, evaluate := range evaluators {
			player := gs.Turn()
			moves := gs.LegalMoves()
			for depth := 1; depth <= 3; depth++ {
				pruned := NewMinimax(player, evaluate, WithDepth(depth))
				plain := NewMinimax(player, evaluate, WithDepth(depth), WithPruning(false))

				a := pruned.scan(gs, moves, depth, nil)
				b := plain.scan(gs, moves, depth, nil)

				require.Equal(t, b.values, a.values, "%s/%s at depth %d", name, evalName, depth)
				require.Equal(t, b.best, a.best, "%s/%s at depth %d", name, evalName, depth)
				require.Equal(t, b.value, a.value, "%s/%s at depth %d", name, evalName, depth)
			}
		}
	}
}

func TestShuffle(t *testing.T) {
	gs := game.NewGameState()
	const seed = 42

	expected := gs.LegalMoves()
	utils.Shuffle(expected, rand.New(rand.NewSource(seed)))

	m := NewMinimax(game.Player1, constant, WithDepth(1), WithShuffle(seed))
	move, ok := m.FindMove(gs)

	require.True(t, ok)
	require.Equal(t, expected[0], move, "ties should go to the first move in shuffled order")
}

func TestMetrics(t *testing.T) {
	gs := afterOpening(t)

	pruned := NewMinimax(game.Player1, game.EvaluateMobilityDifference, WithDepth(3), WithMetrics()).Search(gs)
	plain := NewMinimax(game.Player1, game.EvaluateMobilityDifference, WithDepth(3), WithMetrics(), WithPruning(false)).Search(gs)

	require.Equal(t, 3, pruned.Metrics.Depth)
	require.Positive(t, pruned.Metrics.Nodes)
	require.Positive(t, pruned.Metrics.Leaves)
	require.LessOrEqual(t, pruned.Metrics.Nodes, plain.Metrics.Nodes)
	require.Zero(t, plain.Metrics.Prunes)
	require.False(t, pruned.Metrics.Interrupted)

	untracked := NewMinimax(game.Player1, game.EvaluateMobilityDifference, WithDepth(3)).Search(gs)
	require.Zero(t, untracked.Metrics.Nodes)
}

func TestLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)

	m := NewMinimax(game.Player1, constant, WithDuration(time.Minute), WithLogger(logger), WithClock(frozen()))
	m.Search(shortGame())

	require.Contains(t, buf.String(), "completed depth")
	require.Contains(t, buf.String(), "explored whole move tree")
}
