package engine

import (
	"konane/game"

	"github.com/pkg/errors"
)

// ErrIllegalMove is returned when an agent answers with a move that fails
// validation. It ends the game.
var ErrIllegalMove = errors.New("illegal move")

type Engine interface {
	// Run plays until the side to move is stuck and returns the winner.
	Run() (game.Player, error)
}
