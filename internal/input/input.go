// Package input reads puzzle text and turns it into grid contents.
package input

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"treetop/internal/grid"
)

// Dir is the default directory puzzle inputs are read from.
const Dir = "inputs"

var (
	// ErrEmpty reports input without any cells.
	ErrEmpty = errors.New("input: empty grid")
	// ErrRagged reports a row whose length differs from the first row.
	ErrRagged = errors.New("input: ragged row")
	// ErrNotDigit reports a cell that is not a decimal digit.
	ErrNotDigit = errors.New("input: not a digit")
)

// ReadFile returns the contents of dir/name. An empty dir reads name as is.
func ReadFile(dir, name string) (string, error) {
	path := name
	if dir != "" {
		path = filepath.Join(dir, name)
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("input: read %s: %w", path, err)
	}
	return string(b), nil
}

// Lines splits text into lines, dropping carriage returns and any trailing
// empty lines. Blank lines between rows are kept.
func Lines(text string) []string {
	text = strings.ReplaceAll(text, "\r", "")
	text = strings.TrimRight(text, "\n")
	if text == "" {
		return nil
	}
	return strings.Split(text, "\n")
}

// DigitGrid parses one decimal digit per cell, one row per line. The width
// is taken from the first line.
func DigitGrid(text string) (*grid.Grid[uint8], error) {
	lines := Lines(text)
	if len(lines) == 0 || lines[0] == "" {
		return nil, ErrEmpty
	}
	w := len(lines[0])
	cells := make([]uint8, 0, w*len(lines))
	for y, line := range lines {
		if len(line) != w {
			return nil, fmt.Errorf("%w: line %d has %d cells, want %d", ErrRagged, y+1, len(line), w)
		}
		for x := 0; x < len(line); x++ {
			c := line[x]
			if c < '0' || c > '9' {
				return nil, fmt.Errorf("%w: %q at line %d column %d", ErrNotDigit, c, y+1, x+1)
			}
			cells = append(cells, c-'0')
		}
	}
	return grid.FromSlice(w, len(lines), cells)
}
