package game

// Squares is a set of board squares.
type Squares [BoardSize][BoardSize]bool

func (s *Squares) Has(c Coord) bool {
	return c.OnBoard() && s[c.Row][c.Col]
}

func (s *Squares) Add(c Coord) {
	s[c.Row][c.Col] = true
}

func (s *Squares) Len() int {
	n := 0
	for i := range s {
		for j := range s[i] {
			if s[i][j] {
				n++
			}
		}
	}
	return n
}

// Analysis holds both sides' legal moves for one position and the views
// derived from them. It is recomputed per position, never stored on the state.
type Analysis struct {
	// Endangered holds every square some legal move of either side jumps over.
	Endangered Squares
	// Movable holds every square some legal move of either side starts from.
	Movable Squares

	moves [2][]Move
}

func (gs *GameState) Analyze() *Analysis {
	a := &Analysis{}
	for _, p := range []Player{Player1, Player2} {
		moves := gs.MovesFor(p)
		a.moves[p-1] = moves
		for _, m := range moves {
			a.Movable.Add(m.Start())
			for _, c := range m.JumpedOver() {
				a.Endangered.Add(c)
			}
		}
	}
	return a
}

// Endangered is a shortcut for Analyze().Endangered.
func (gs *GameState) Endangered() Squares {
	return gs.Analyze().Endangered
}

// Movable is a shortcut for Analyze().Movable.
func (gs *GameState) Movable() Squares {
	return gs.Analyze().Movable
}

// Moves returns p's moves as if it were p's turn.
func (a *Analysis) Moves(p Player) []Move {
	return a.moves[p-1]
}

// Mobility is the number of moves p has.
func (a *Analysis) Mobility(p Player) int {
	return len(a.moves[p-1])
}

// IsSafe reports whether m starts on a square nothing can jump and jumps only
// pieces that cannot move away first. relaxed drops the first condition.
func (a *Analysis) IsSafe(m Move, relaxed bool) bool {
	if !relaxed && a.Endangered.Has(m.Start()) {
		return false
	}
	for _, c := range m.JumpedOver() {
		if a.Movable.Has(c) {
			return false
		}
	}
	return true
}

// SafeMoves counts p's safe moves.
func (a *Analysis) SafeMoves(p Player) int {
	n := 0
	for _, m := range a.moves[p-1] {
		if a.IsSafe(m, false) {
			n++
		}
	}
	return n
}

// SafeSquares counts the distinct squares from which p has a safe move.
func (a *Analysis) SafeSquares(p Player, relaxed bool) int {
	var squares Squares
	for _, m := range a.moves[p-1] {
		if a.IsSafe(m, relaxed) {
			squares.Add(m.Start())
		}
	}
	return squares.Len()
}
