package game

import (
	"math"
	"strconv"
)

const BoardSize = 8

// A jump chain runs in one direction and lands two cells further each hop, so
// on an 8x8 board it can hop at most 3 times.
const MaxSteps = (BoardSize - 1) / 2

// Sentinel scores for terminal states. The ±1 offset leaves room for negation.
const (
	WinScore  = math.MaxInt - 1
	LossScore = math.MinInt + 1
)

// Player identifies a side. None doubles as the empty cell value.
type Player int8

const (
	None Player = iota
	Player1
	Player2
)

// Empty marks a cell holding no piece.
const Empty = None

var symbols = map[Player]string{
	Player1: "X",
	Player2: "O",
	None:    ".",
}

func (p Player) Valid() bool {
	return p == Player1 || p == Player2
}

// Opponent returns the other side. It panics for None.
func (p Player) Opponent() Player {
	switch p {
	case Player1:
		return Player2
	case Player2:
		return Player1
	default:
		panic("no opponent for an invalid player")
	}
}

func (p Player) String() string {
	if s, ok := symbols[p]; ok {
		return s
	}
	return "?"
}

// Coord is a (row, column) pair, 0-indexed.
type Coord struct {
	Row int
	Col int
}

func (c Coord) OnBoard() bool {
	return c.Row >= 0 && c.Row < BoardSize && c.Col >= 0 && c.Col < BoardSize
}

func (c Coord) Add(d Coord) Coord {
	return Coord{Row: c.Row + d.Row, Col: c.Col + d.Col}
}

func (c Coord) Sub(d Coord) Coord {
	return Coord{Row: c.Row - d.Row, Col: c.Col - d.Col}
}

// Midpoint of c and d. Only meaningful when they are two cells apart.
func (c Coord) Midpoint(d Coord) Coord {
	return Coord{Row: (c.Row + d.Row) / 2, Col: (c.Col + d.Col) / 2}
}

func (c Coord) String() string {
	return "<" + strconv.Itoa(c.Row) + "," + strconv.Itoa(c.Col) + ">"
}

// Hop vectors in generation order.
var (
	North = Coord{Row: -2, Col: 0}
	East  = Coord{Row: 0, Col: 2}
	South = Coord{Row: 2, Col: 0}
	West  = Coord{Row: 0, Col: -2}

	Directions = [4]Coord{North, East, South, West}
)

func isDirection(v Coord) bool {
	for _, d := range Directions {
		if v == d {
			return true
		}
	}
	return false
}
