package engine

import (
	"encoding/csv"
	"io"
	"os"
	"strconv"

	"github.com/pkg/errors"
)

// WriteHistory writes one CSV row per turn.
func WriteHistory(w io.Writer, history []Turn) error {
	writer := csv.NewWriter(w)

	// Write header
	header := []string{"turn", "player", "move", "elapsed"}
	if err := writer.Write(header); err != nil {
		return errors.Wrap(err, "failed to write history header")
	}

	for _, turn := range history {
		row := []string{
			strconv.Itoa(turn.Number),
			turn.Player.String(),
			turn.Move.String(),
			turn.Elapsed.String(),
		}
		if err := writer.Write(row); err != nil {
			return errors.Wrapf(err, "failed to write turn %d", turn.Number)
		}
	}

	writer.Flush()
	return errors.Wrap(writer.Error(), "failed to flush history")
}

// SaveHistory writes the history to a CSV file at path.
func SaveHistory(path string, history []Turn) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "failed to create history file")
	}
	defer func() {
		if closeErr := f.Close(); err == nil && closeErr != nil {
			err = errors.Wrap(closeErr, "failed to close history file")
		}
	}()
	return WriteHistory(f, history)
}
