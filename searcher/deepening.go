package searcher

import (
	"konane/game"
	"konane/meta"
)

// deepen repeats full root scans at increasing depth limits until the time
// budget runs out. Only completed scans count. A scan that never reached its
// depth limit has seen the whole game tree, so deeper scans would not change
// the answer.
func (m *Minimax) deepen(state *game.GameState) Result {
	start := m.clock()
	moves := m.rootMoves(state)
	expired := func() bool {
		return m.clock().Sub(start) > m.duration
	}

	var best Result
	for depth := meta.FIRST_DEPTH; (m.depth == 0 || depth <= m.depth) && m.clock().Sub(start) < m.duration; depth++ {
		s := m.scan(state, moves, depth, expired)
		if s.interrupted {
			m.metrics.Interrupt()
			m.logger.Debug().Int("depth", depth).Int("scanned", len(s.values)).Int("moves", len(moves)).Msg("search interrupted")
			break
		}
		best = s.result(depth)
		m.metrics.CompleteDepth(depth)
		m.logger.Debug().Int("depth", depth).Int("value", s.value).Stringer("move", s.best).Msg("completed depth")
		if !s.cutoff {
			m.logger.Debug().Int("depth", depth).Msg("explored whole move tree")
			break
		}
	}
	return best
}
