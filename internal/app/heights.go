package app

import (
	"errors"
	"fmt"

	"treetop/internal/core"
	"treetop/internal/grid"
	"treetop/internal/input"
)

// ErrNoTrees reports a forest with no cells.
var ErrNoTrees = errors.New("app: forest has no trees")

// Heights loads the forest described by c: a random one when c.Random is
// set, otherwise the digits in c.Input.
func (c *Config) Heights() (*grid.Grid[uint8], error) {
	var heights *grid.Grid[uint8]
	if c.Random {
		if c.Width <= 0 || c.Height <= 0 {
			return nil, fmt.Errorf("%w: %dx%d", ErrNoTrees, c.Width, c.Height)
		}
		heights = core.NewRNG(c.Seed).Heights(c.Width, c.Height)
	} else {
		text, err := input.ReadFile("", c.Input)
		if err != nil {
			return nil, err
		}
		heights, err = input.DigitGrid(text)
		if err != nil {
			return nil, fmt.Errorf("app: %s: %w", c.Input, err)
		}
	}
	if heights.Size() == 0 {
		return nil, ErrNoTrees
	}
	return heights, nil
}
