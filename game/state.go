package game

// Board holds one cell value per square, indexed [row][col].
type Board [BoardSize][BoardSize]Player

// InitialBoard returns the standard parity layout: Player1 wherever
// row+col is even, Player2 elsewhere.
func InitialBoard() Board {
	var b Board
	for i := 0; i < BoardSize; i++ {
		for j := 0; j < BoardSize; j++ {
			if (i+j)%2 == 0 {
				b[i][j] = Player1
			} else {
				b[i][j] = Player2
			}
		}
	}
	return b
}

func (b *Board) at(c Coord) Player {
	return b[c.Row][c.Col]
}

func (b *Board) set(c Coord, p Player) {
	b[c.Row][c.Col] = p
}

// GameState is the board, the side to move and whether each side has made its
// opening removal. The board is an array, so copying a GameState copies
// everything: Apply relies on this.
type GameState struct {
	board   Board
	turn    Player
	removed [2]bool
}

// NewGameState returns the starting position with Player1 to move.
func NewGameState() *GameState {
	return &GameState{
		board: InitialBoard(),
		turn:  Player1,
	}
}

// NewGameStateFrom builds an arbitrary position. It panics if turn is not a
// player or the board holds an unknown cell value.
func NewGameStateFrom(board Board, turn Player, removed1, removed2 bool) *GameState {
	if !turn.Valid() {
		panic("turn must be Player1 or Player2")
	}
	for i := range board {
		for j := range board[i] {
			if v := board[i][j]; v != Empty && !v.Valid() {
				panic("board holds an unknown cell value")
			}
		}
	}
	return &GameState{
		board:   board,
		turn:    turn,
		removed: [2]bool{removed1, removed2},
	}
}

func (gs *GameState) Copy() *GameState {
	c := *gs
	return &c
}

func (gs *GameState) Turn() Player {
	return gs.turn
}

func (gs *GameState) Board() Board {
	return gs.board
}

// At returns the cell value at c, Empty when c is off the board.
func (gs *GameState) At(c Coord) Player {
	if !c.OnBoard() {
		return Empty
	}
	return gs.board.at(c)
}

func (gs *GameState) HasRemoved(p Player) bool {
	return gs.removed[p-1]
}

// LegalMoves returns every legal move for the side to move.
//
// During the removal phase these are removals in row-major order. Afterwards,
// for each own piece in row-major order and each direction north, east, south,
// west, the chains of increasing length in that direction.
func (gs *GameState) LegalMoves() []Move {
	return gs.MovesFor(gs.turn)
}

// MovesFor generates moves as if it were player's turn. The state is not
// modified.
func (gs *GameState) MovesFor(player Player) []Move {
	var moves []Move

	if !gs.HasRemoved(player) {
		for i := 0; i < BoardSize; i++ {
			for j := 0; j < BoardSize; j++ {
				c := Coord{Row: i, Col: j}
				if gs.board.at(c) == player {
					moves = append(moves, MustRemoval(player, c))
				}
			}
		}
		return moves
	}

	for i := 0; i < BoardSize; i++ {
		for j := 0; j < BoardSize; j++ {
			start := Coord{Row: i, Col: j}
			if gs.board.at(start) != player {
				continue
			}
			for _, dir := range Directions {
				moves = gs.appendChains(moves, player, start, dir)
			}
		}
	}
	return moves
}

// appendChains extends a chain one hop at a time and re-validates the whole
// chain on each extension until it fails or leaves the board.
func (gs *GameState) appendChains(moves []Move, player Player, start, dir Coord) []Move {
	coords := make([]Coord, 1, MaxSteps+1)
	coords[0] = start
	next := start.Add(dir)
	for next.OnBoard() && len(coords) <= MaxSteps {
		coords = append(coords, next)
		m := MustJump(player, coords...)
		if !gs.validFor(m, player) {
			break
		}
		moves = append(moves, m)
		next = next.Add(dir)
	}
	return moves
}

// IsTerminal reports whether the side to move is stuck.
func (gs *GameState) IsTerminal() bool {
	return len(gs.LegalMoves()) == 0
}

// Winner returns the opponent of the stuck side, or None if the game is on.
func (gs *GameState) Winner() Player {
	if gs.IsTerminal() {
		return gs.turn.Opponent()
	}
	return None
}

// IsValid reports whether m can be played now. It has no side effects.
func (gs *GameState) IsValid(m Move) bool {
	return gs.validFor(m, gs.turn)
}

func (gs *GameState) validFor(m Move, turn Player) bool {
	if m.Player != turn || !turn.Valid() {
		return false
	}

	removed := gs.HasRemoved(turn)
	if !removed && !m.IsRemoval() {
		return false
	}
	if removed && m.IsRemoval() {
		return false
	}

	start := m.Start()
	if !start.OnBoard() || gs.board.at(start) != turn {
		return false
	}
	if m.IsRemoval() {
		return true
	}

	vector := m.Nth(1).Sub(start)
	if !isDirection(vector) {
		return false
	}

	opponent := turn.Opponent()
	for i := 1; i <= m.Steps; i++ {
		prev, cur := m.Nth(i-1), m.Nth(i)
		if !cur.OnBoard() {
			return false
		}
		if gs.board.at(cur) != Empty {
			return false
		}
		if cur.Sub(prev) != vector {
			return false
		}
		if gs.board.at(prev.Midpoint(cur)) != opponent {
			return false
		}
	}
	return true
}

// Apply returns the state after m, leaving gs untouched. ok is false and the
// state nil when m is not valid.
func (gs *GameState) Apply(m Move) (next *GameState, ok bool) {
	if !gs.IsValid(m) {
		return nil, false
	}
	next = gs.Copy()
	next.play(m)
	return next, true
}

// ApplyInPlace plays m on gs, returning false without change if m is not valid.
func (gs *GameState) ApplyInPlace(m Move) bool {
	if !gs.IsValid(m) {
		return false
	}
	gs.play(m)
	return true
}

func (gs *GameState) play(m Move) {
	if m.IsRemoval() {
		gs.board.set(m.Start(), Empty)
		gs.removed[gs.turn-1] = true
	} else {
		gs.board.set(m.Start(), Empty)
		gs.board.set(m.End(), gs.turn)
		for _, c := range m.JumpedOver() {
			gs.board.set(c, Empty)
		}
	}
	gs.turn = gs.turn.Opponent()
}

func (gs *GameState) NumPieces(p Player) int {
	count := 0
	for i := range gs.board {
		for j := range gs.board[i] {
			if gs.board[i][j] == p {
				count++
			}
		}
	}
	return count
}

// NumMoves counts the legal moves p would have if it were p's turn.
func (gs *GameState) NumMoves(p Player) int {
	return len(gs.MovesFor(p))
}
