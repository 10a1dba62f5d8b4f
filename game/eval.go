package game

import (
	"errors"
	"fmt"
)

// Evaluate statically scores a non-terminal state from player's perspective.
// Higher is better for player.
type Evaluate func(gs *GameState, player Player) int

// Score returns the terminal sentinel when the side to move is stuck (WinScore
// for the other side, LossScore for the stuck side) and evaluate otherwise.
func Score(gs *GameState, player Player, evaluate Evaluate) int {
	if gs.IsTerminal() {
		if player != gs.turn {
			return WinScore
		}
		return LossScore
	}
	return evaluate(gs, player)
}

// EvaluatePieces counts the player's pieces on the board.
func EvaluatePieces(gs *GameState, player Player) int {
	return gs.NumPieces(player)
}

// EvaluateMobility counts the player's legal moves.
func EvaluateMobility(gs *GameState, player Player) int {
	return gs.NumMoves(player)
}

// EvaluateMobilityDifference is own mobility minus the opponent's.
func EvaluateMobilityDifference(gs *GameState, player Player) int {
	return gs.NumMoves(player) - gs.NumMoves(player.Opponent())
}

// EvaluateSafeMoves adds the number of the player's safe moves to twice the
// mobility difference.
func EvaluateSafeMoves(gs *GameState, player Player) int {
	a := gs.Analyze()
	return mobilityTerm(a, player) + a.SafeMoves(player)
}

// EvaluateSafeSquares adds the number of squares the player can safely move
// from to twice the mobility difference.
func EvaluateSafeSquares(gs *GameState, player Player) int {
	a := gs.Analyze()
	return mobilityTerm(a, player) + a.SafeSquares(player, false)
}

// EvaluateRelaxedSafeSquares is EvaluateSafeSquares without requiring the
// starting square to be out of reach.
func EvaluateRelaxedSafeSquares(gs *GameState, player Player) int {
	a := gs.Analyze()
	return mobilityTerm(a, player) + a.SafeSquares(player, true)
}

func mobilityTerm(a *Analysis, player Player) int {
	return 2 * (a.Mobility(player) - a.Mobility(player.Opponent()))
}

// Asymmetric evaluates with player1 when Player1 is evaluating and with
// player2 otherwise.
func Asymmetric(player1, player2 Evaluate) Evaluate {
	if player1 == nil || player2 == nil {
		panic("asymmetric evaluation needs both evaluators")
	}
	return func(gs *GameState, player Player) int {
		if player == Player1 {
			return player1(gs, player)
		}
		return player2(gs, player)
	}
}

// Strategy names an evaluation heuristic in configuration.
type Strategy string

const (
	Pieces             Strategy = "pieces"
	Mobility           Strategy = "moves"
	MobilityDifference Strategy = "dmoves"
	SafeMoves          Strategy = "dsafemoves"
	SafeSquares        Strategy = "dsafesquares"
	RelaxedSafeSquares Strategy = "drelaxedsafesquares"
)

var ErrUnknownStrategy = errors.New("unknown evaluation strategy")

var evaluators = map[Strategy]Evaluate{
	Pieces:             EvaluatePieces,
	Mobility:           EvaluateMobility,
	MobilityDifference: EvaluateMobilityDifference,
	SafeMoves:          EvaluateSafeMoves,
	SafeSquares:        EvaluateSafeSquares,
	RelaxedSafeSquares: EvaluateRelaxedSafeSquares,
}

func Strategies() []Strategy {
	return []Strategy{Pieces, Mobility, MobilityDifference, SafeMoves, SafeSquares, RelaxedSafeSquares}
}

func ParseStrategy(name string) (Strategy, error) {
	s := Strategy(name)
	if _, ok := evaluators[s]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
	}
	return s, nil
}

// Evaluate returns the heuristic. It panics for unknown strategies.
func (s Strategy) Evaluate() Evaluate {
	e, ok := evaluators[s]
	if !ok {
		panic(fmt.Sprintf("%v: %q", ErrUnknownStrategy, string(s)))
	}
	return e
}
