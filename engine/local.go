package engine

import (
	"fmt"
	"io"
	"konane/agent"
	"konane/game"
	"slices"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

// Turn is one applied move.
type Turn struct {
	Number  int
	Player  game.Player
	Move    game.Move
	Elapsed time.Duration // time the agent took to answer
}

type Option func(e *Local)

// WithRender prints the board before every move and the result at the end.
func WithRender(w io.Writer) Option {
	return func(e *Local) {
		e.render = w
	}
}

// WithState starts the game from state instead of the initial position.
func WithState(state *game.GameState) Option {
	return func(e *Local) {
		e.state = state.Copy()
	}
}

// Local runs a game between two in-process agents.
type Local struct {
	state   *game.GameState
	agents  [2]agent.Agent
	render  io.Writer
	history []Turn
}

func NewLocal(player1, player2 agent.Agent, options ...Option) *Local {
	if player1 == nil || player2 == nil {
		panic("need an agent for each player")
	}
	e := &Local{
		state:  game.NewGameState(),
		agents: [2]agent.Agent{player1, player2},
	}
	for _, option := range options {
		option(e)
	}
	return e
}

// Run executes the game loop until a winner is found. Agents receive a copy
// of the current state.
func (e *Local) Run() (game.Player, error) {
	log.Info().Stringer("player", e.state.Turn()).Msg("game started")

	var lastMove game.Move
	for !e.state.IsTerminal() {
		e.print(e.state)

		player := e.state.Turn()
		number := len(e.history) + 1
		start := time.Now()
		move, err := e.agents[player-1].GetMove(e.state.Copy(), lastMove)
		if err != nil {
			return game.None, errors.WithMessagef(err, "player %s on turn %d", player, number)
		}
		elapsed := time.Since(start)

		if !e.state.ApplyInPlace(move) {
			return game.None, errors.Wrapf(ErrIllegalMove, "player %s played %q on turn %d", player, move, number)
		}
		e.history = append(e.history, Turn{
			Number:  number,
			Player:  player,
			Move:    move,
			Elapsed: elapsed,
		})
		log.Debug().Int("turn", number).Stringer("move", move).Dur("elapsed", elapsed).Msg("move played")
		lastMove = move
	}

	winner := e.state.Winner()
	e.print(e.state)
	e.print(fmt.Sprintf("%s has won!", winner))
	log.Info().Stringer("winner", winner).Int("turns", len(e.history)).Msg("game over")
	return winner, nil
}

func (e *Local) State() *game.GameState {
	return e.state.Copy()
}

func (e *Local) History() []Turn {
	return slices.Clone(e.history)
}

func (e *Local) print(v any) {
	if e.render != nil {
		fmt.Fprintln(e.render, v)
	}
}
