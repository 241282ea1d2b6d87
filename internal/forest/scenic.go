package forest

import (
	"iter"

	"treetop/internal/grid"
)

// ScenicSweep fills in view distances one line at a time, using the same
// line order as Sweep. A row pass from the west sets every West distance in
// that row; a column pass from the north sets every North distance in that
// column, and so on.
type ScenicSweep struct {
	lineWalker
	forest *grid.Grid[Tree]
}

// NewScenicSweep starts a view-distance sweep over f.
func NewScenicSweep(f *grid.Grid[Tree]) *ScenicSweep {
	return &ScenicSweep{lineWalker: newLineWalker(f), forest: f}
}

// Step processes one line and reports whether there was a line left.
func (s *ScenicSweep) Step() bool {
	if s.done() {
		return false
	}
	f := s.forest
	switch s.dir {
	case FromWest:
		row := f.Row(s.line)
		for x := range row {
			row[x].West = viewDistance(row[x].Height, backward(row[:x]))
		}
	case FromEast:
		row := f.Row(s.line)
		for x := range row {
			row[x].East = viewDistance(row[x].Height, forward(row[x+1:]))
		}
	case FromNorth:
		col := f.Col(s.line)
		for y, t := range col.All() {
			t.North = viewDistance(t.Height, col.Slice(0, y).Backward())
		}
	case FromSouth:
		col := f.Col(s.line)
		for y, t := range col.All() {
			t.South = viewDistance(t.Height, col.Slice(y+1, col.Len()).All())
		}
	}
	s.advance()
	return true
}

// viewDistance counts trees along a line of sight, nearest first, up to and
// including the first one at least as tall as height.
func viewDistance(height uint8, sight iter.Seq2[int, *Tree]) int {
	n := 0
	for _, t := range sight {
		n++
		if t.Height >= height {
			break
		}
	}
	return n
}
