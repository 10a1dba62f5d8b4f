package agent

import (
	"konane/game"
	"konane/searcher"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

type searchAgent struct {
	searcher searcher.Searcher
}

// NewSearchAgent returns an agent that plays the moves chosen by s.
func NewSearchAgent(s searcher.Searcher) Agent {
	return searchAgent{searcher: s}
}

func (a searchAgent) GetMove(state *game.GameState, _ game.Move) (game.Move, error) {
	if state.Turn() != a.searcher.Player() {
		return game.Move{}, errors.Errorf("search agent plays %s but %s is to move", a.searcher.Player(), state.Turn())
	}

	result := a.searcher.Search(state)
	log.Debug().
		Stringer("player", state.Turn()).
		Int("depth", result.Depth).
		Int("value", result.Value).
		Int64("nodes", result.Metrics.Nodes).
		Int64("prunes", result.Metrics.Prunes).
		Dur("elapsed", result.Metrics.Duration).
		Msg("search finished")

	if result.Found {
		return result.Move, nil
	}

	moves := state.LegalMoves()
	if len(moves) == 0 {
		return game.Move{}, ErrNoMoves
	}
	log.Warn().Stringer("player", state.Turn()).Msg("search found no move in time, playing the first legal move")
	return moves[0], nil
}
