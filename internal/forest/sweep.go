package forest

import (
	"iter"

	"treetop/internal/grid"
)

// Direction names the side of the forest a line is looked at from.
type Direction int

const (
	FromWest Direction = iota
	FromEast
	FromNorth
	FromSouth
	numDirections
)

func (d Direction) String() string {
	switch d {
	case FromWest:
		return "west"
	case FromEast:
		return "east"
	case FromNorth:
		return "north"
	case FromSouth:
		return "south"
	}
	return "done"
}

// alongRows reports whether lines in this direction are rows.
func (d Direction) alongRows() bool { return d == FromWest || d == FromEast }

// lineWalker moves a Direction/line cursor across every line of a forest,
// rows first, then columns.
type lineWalker struct {
	lenX, lenY int
	dir        Direction
	line       int
}

func newLineWalker(f *grid.Grid[Tree]) lineWalker {
	w := lineWalker{lenX: f.LenX(), lenY: f.LenY()}
	w.settle()
	return w
}

func (w *lineWalker) lines(d Direction) int {
	if d.alongRows() {
		return w.lenY
	}
	return w.lenX
}

// settle skips past exhausted directions.
func (w *lineWalker) settle() {
	for w.dir < numDirections && w.line >= w.lines(w.dir) {
		w.dir++
		w.line = 0
	}
}

func (w *lineWalker) advance() {
	w.line++
	w.settle()
}

func (w *lineWalker) done() bool { return w.dir >= numDirections }

// Pending reports the line the next Step will process.
func (w *lineWalker) Pending() (Direction, int, bool) {
	if w.done() {
		return numDirections, 0, false
	}
	return w.dir, w.line, true
}

// Done reports whether every line has been processed.
func (w *lineWalker) Done() bool { return w.done() }

// Sweep marks trees visible from outside the forest one line at a time:
// every row from the west, every row from the east, every column from the
// north and every column from the south.
type Sweep struct {
	lineWalker
	forest *grid.Grid[Tree]
}

// NewSweep starts a visibility sweep over f.
func NewSweep(f *grid.Grid[Tree]) *Sweep {
	return &Sweep{lineWalker: newLineWalker(f), forest: f}
}

// Step processes one line and reports whether there was a line left.
func (s *Sweep) Step() bool {
	if s.done() {
		return false
	}
	markVisible(lineCells(s.forest, s.dir, s.line))
	s.advance()
	return true
}

// lineCells walks line i as seen from d, nearest tree first.
func lineCells(f *grid.Grid[Tree], d Direction, i int) iter.Seq2[int, *Tree] {
	switch d {
	case FromWest:
		return forward(f.Row(i))
	case FromEast:
		return backward(f.Row(i))
	case FromNorth:
		return f.Col(i).All()
	default:
		return f.Col(i).Backward()
	}
}

func markVisible(line iter.Seq2[int, *Tree]) {
	var tallest uint8
	for _, t := range line {
		if t.Height <= tallest {
			continue
		}
		tallest = t.Height
		t.Visible = true
		if tallest == Tallest {
			return
		}
	}
}

func forward(row []Tree) iter.Seq2[int, *Tree] {
	return func(yield func(int, *Tree) bool) {
		for i := range row {
			if !yield(i, &row[i]) {
				return
			}
		}
	}
}

func backward(row []Tree) iter.Seq2[int, *Tree] {
	return func(yield func(int, *Tree) bool) {
		for i := len(row) - 1; i >= 0; i-- {
			if !yield(i, &row[i]) {
				return
			}
		}
	}
}
