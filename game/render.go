package game

import (
	"fmt"
	"strconv"
	"strings"
)

// String draws the grid with 1-based row and column labels.
func (b Board) String() string {
	var sb strings.Builder
	sb.WriteString("\t")
	for j := 0; j < BoardSize; j++ {
		if j > 0 {
			sb.WriteString(" ")
		}
		sb.WriteString(strconv.Itoa(j + 1))
	}
	sb.WriteString("\n\n")
	for i := 0; i < BoardSize; i++ {
		sb.WriteString(strconv.Itoa(i + 1))
		sb.WriteString("\t")
		for j := 0; j < BoardSize; j++ {
			sb.WriteString(b[i][j].String())
			sb.WriteString(" ")
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

func (gs *GameState) String() string {
	return "Turn: " + gs.turn.String() + "\n" + gs.board.String()
}

// ParseBoard reads BoardSize rows of BoardSize glyphs (X, O or .). Spaces are
// ignored.
func ParseBoard(rows ...string) (Board, error) {
	var b Board
	if len(rows) != BoardSize {
		return b, fmt.Errorf("expected %d rows, got %d", BoardSize, len(rows))
	}
	for i, row := range rows {
		row = strings.ReplaceAll(row, " ", "")
		if len(row) != BoardSize {
			return b, fmt.Errorf("row %d: expected %d cells, got %d", i+1, BoardSize, len(row))
		}
		for j, r := range row {
			switch r {
			case 'X':
				b[i][j] = Player1
			case 'O':
				b[i][j] = Player2
			case '.':
				b[i][j] = Empty
			default:
				return b, fmt.Errorf("row %d: unknown glyph %q", i+1, r)
			}
		}
	}
	return b, nil
}

func MustParseBoard(rows ...string) Board {
	b, err := ParseBoard(rows...)
	if err != nil {
		panic(err)
	}
	return b
}
