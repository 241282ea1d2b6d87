// Package forest scores a grid of tree heights: which trees can be seen
// from outside the forest, and how far each tree can see.
package forest

import (
	"fmt"

	"treetop/internal/grid"
	"treetop/internal/input"
)

// Tallest is the greatest height a tree can have. A line of sight is
// blocked for good once a tree this tall has been seen.
const Tallest = 9

// Tree is one forest cell.
type Tree struct {
	Height  uint8
	Visible bool

	// View distances, in trees, looking in each direction.
	North int
	South int
	East  int
	West  int
}

// ScenicScore multiplies the four view distances.
func (t Tree) ScenicScore() int {
	return t.North * t.South * t.East * t.West
}

// Parse reads a digit-per-tree forest and marks its edge trees visible.
func Parse(text string) (*grid.Grid[Tree], error) {
	heights, err := input.DigitGrid(text)
	if err != nil {
		return nil, fmt.Errorf("forest: %w", err)
	}
	return FromHeights(heights), nil
}

// FromHeights builds a forest from a height grid and marks its edge trees
// visible. The height grid is left untouched.
func FromHeights(heights *grid.Grid[uint8]) *grid.Grid[Tree] {
	trees := make([]Tree, 0, heights.Size())
	for h := range heights.All() {
		trees = append(trees, Tree{Height: h})
	}
	f := grid.MustFromSlice(heights.LenX(), heights.LenY(), trees)
	markEdges(f)
	return f
}

func markEdges(f *grid.Grid[Tree]) {
	if f.Size() == 0 {
		return
	}
	for _, y := range []int{0, f.LenY() - 1} {
		row := f.Row(y)
		for i := range row {
			row[i].Visible = true
		}
	}
	for _, x := range []int{0, f.LenX() - 1} {
		for _, t := range f.Col(x).All() {
			t.Visible = true
		}
	}
}

// CountVisible runs the full visibility sweep over f and returns how many
// trees can be seen from outside.
func CountVisible(f *grid.Grid[Tree]) int {
	s := NewSweep(f)
	for s.Step() {
	}
	n := 0
	for t := range f.All() {
		if t.Visible {
			n++
		}
	}
	return n
}

// BestScenicScore fills in every view distance and returns the highest
// scenic score, or 0 for an empty forest.
func BestScenicScore(f *grid.Grid[Tree]) int {
	s := NewScenicSweep(f)
	for s.Step() {
	}
	return bestScore(f)
}
