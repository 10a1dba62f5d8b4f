package searcher

import (
	"konane/game"
	"math"
	"time"
)

// Bounds of the alpha-beta window. Every score lies strictly inside them
// (see game.WinScore and game.LossScore).
const (
	NegInf = math.MinInt
	PosInf = math.MaxInt
)

// Searcher picks moves for one player.
type Searcher interface {
	Player() game.Player
	Search(state *game.GameState) Result
}

// Result of one top-level search.
type Result struct {
	Move    game.Move
	Value   int
	Depth   int  // depth limit of the scan the move comes from
	Found   bool // false when there were no moves or no scan completed in time
	Metrics MoveMetrics
}

// Clock returns the current time. Iterative deepening polls it between root
// candidates.
type Clock func() time.Time
