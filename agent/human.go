package agent

import (
	"bufio"
	"fmt"
	"io"
	"konane/game"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

type humanAgent struct {
	player game.Player
	input  *bufio.Scanner
	output io.Writer
}

// NewHumanAgent reads moves for player from in as lines of 1-based
// "row column" pairs: the piece to move, then each landing square, then an
// empty line. A single pair is a removal.
func NewHumanAgent(player game.Player, in io.Reader, out io.Writer) Agent {
	return &humanAgent{
		player: player,
		input:  bufio.NewScanner(in),
		output: out,
	}
}

func (a *humanAgent) GetMove(state *game.GameState, lastMove game.Move) (game.Move, error) {
	if !lastMove.IsZero() {
		fmt.Fprintln(a.output, lastMove)
	}
	for {
		var coords []game.Coord
		for len(coords) == 0 {
			fmt.Fprintf(a.output, "Player %s, which piece would you like to move? Enter as 'row column'\n", a.player)
			line, err := a.readLine()
			if err != nil {
				return game.Move{}, err
			}
			c, err := parseCoord(line)
			if err != nil {
				fmt.Fprintln(a.output, "Invalid input format")
				continue
			}
			coords = append(coords, c)
		}

		for {
			fmt.Fprintln(a.output, "Enter another set of coordinates, or nothing to finish move")
			line, err := a.readLine()
			if err != nil {
				return game.Move{}, err
			}
			if line == "" {
				break
			}
			c, err := parseCoord(line)
			if err != nil {
				fmt.Fprintln(a.output, "Invalid input format")
				continue
			}
			coords = append(coords, c)
		}

		move, err := game.NewMove(a.player, coords...)
		if err == nil && state.IsValid(move) {
			return move, nil
		}
		fmt.Fprintln(a.output, "That move is invalid")
	}
}

func (a *humanAgent) readLine() (string, error) {
	if !a.input.Scan() {
		if err := a.input.Err(); err != nil {
			return "", errors.Wrap(err, "reading move")
		}
		return "", errors.Wrap(io.ErrUnexpectedEOF, "reading move")
	}
	return strings.TrimSpace(a.input.Text()), nil
}

// parseCoord reads a 1-based "row column" pair.
func parseCoord(line string) (game.Coord, error) {
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return game.Coord{}, errors.Errorf("expected 'row column', got %q", line)
	}
	row, err := strconv.Atoi(fields[0])
	if err != nil {
		return game.Coord{}, errors.Wrap(err, "row")
	}
	col, err := strconv.Atoi(fields[1])
	if err != nil {
		return game.Coord{}, errors.Wrap(err, "column")
	}
	return game.Coord{Row: row - 1, Col: col - 1}, nil
}
