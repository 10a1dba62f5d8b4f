package agent

import (
	"konane/game"

	"github.com/pkg/errors"
)

var ErrNoMoves = errors.New("no legal moves")

type Agent interface {
	// GetMove returns a legal move for the side to move in state. lastMove is
	// the move that produced state, the zero Move before the first move.
	GetMove(state *game.GameState, lastMove game.Move) (game.Move, error)
}
