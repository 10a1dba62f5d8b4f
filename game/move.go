package game

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidPlayer = errors.New("move must belong to Player1 or Player2")
	ErrMalformedMove = errors.New("malformed move")
)

// Move is either a removal (zero steps, one coordinate) or a jump chain
// (Steps hops, Steps+1 coordinates). Moves are comparable values.
type Move struct {
	Player Player
	Steps  int
	coords [MaxSteps + 1]Coord
}

// NewRemoval creates the opening move that removes the player's own piece at c.
func NewRemoval(player Player, c Coord) (Move, error) {
	if !player.Valid() {
		return Move{}, fmt.Errorf("%w: got %d", ErrInvalidPlayer, player)
	}
	m := Move{Player: player}
	m.coords[0] = c
	return m, nil
}

// NewJump creates a jump chain starting at coords[0] and landing on each of
// the following coordinates in turn.
func NewJump(player Player, coords ...Coord) (Move, error) {
	if !player.Valid() {
		return Move{}, fmt.Errorf("%w: got %d", ErrInvalidPlayer, player)
	}
	if len(coords) < 2 {
		return Move{}, fmt.Errorf("%w: a jump needs a start and at least one destination, got %d coordinates", ErrMalformedMove, len(coords))
	}
	if len(coords)-1 > MaxSteps {
		return Move{}, fmt.Errorf("%w: %d steps exceed the board limit of %d", ErrMalformedMove, len(coords)-1, MaxSteps)
	}
	m := Move{Player: player, Steps: len(coords) - 1}
	copy(m.coords[:], coords)
	return m, nil
}

// NewMove builds a removal from a single coordinate and a jump otherwise.
func NewMove(player Player, coords ...Coord) (Move, error) {
	switch len(coords) {
	case 0:
		return Move{}, fmt.Errorf("%w: no coordinates", ErrMalformedMove)
	case 1:
		return NewRemoval(player, coords[0])
	default:
		return NewJump(player, coords...)
	}
}

func MustRemoval(player Player, c Coord) Move {
	m, err := NewRemoval(player, c)
	if err != nil {
		panic(err)
	}
	return m
}

func MustJump(player Player, coords ...Coord) Move {
	m, err := NewJump(player, coords...)
	if err != nil {
		panic(err)
	}
	return m
}

// IsZero reports whether m is the zero Move, used as "no move".
func (m Move) IsZero() bool {
	return m == Move{}
}

func (m Move) IsRemoval() bool {
	return m.Steps == 0
}

func (m Move) Start() Coord {
	return m.coords[0]
}

// End is the final landing square (the start for a removal).
func (m Move) End() Coord {
	return m.coords[m.Steps]
}

// Nth returns the n-th coordinate, 0 being the start.
func (m Move) Nth(n int) Coord {
	return m.coords[n]
}

func (m Move) Coordinates() []Coord {
	out := make([]Coord, m.Steps+1)
	copy(out, m.coords[:m.Steps+1])
	return out
}

// JumpedOver returns the midpoint of every hop.
func (m Move) JumpedOver() []Coord {
	if m.IsRemoval() {
		return nil
	}
	out := make([]Coord, 0, m.Steps)
	for i := 1; i <= m.Steps; i++ {
		out = append(out, m.coords[i-1].Midpoint(m.coords[i]))
	}
	return out
}

func (m Move) String() string {
	if m.IsZero() {
		return "no move"
	}
	var b strings.Builder
	b.WriteString(m.Player.String())
	if m.IsRemoval() {
		b.WriteString(" removes ")
		b.WriteString(m.Start().String())
		return b.String()
	}
	b.WriteString(" moves ")
	b.WriteString(m.Start().String())
	for i := 1; i <= m.Steps; i++ {
		b.WriteString(" to ")
		b.WriteString(m.coords[i].String())
	}
	return b.String()
}
