package forest

import (
	"fmt"

	"treetop/internal/core"
	"treetop/internal/grid"
)

// Palette indices produced by the sims' Cells.
const (
	// CellHidden + height colours a tree not (yet) seen or scored.
	CellHidden = 0
	// CellLit + height colours a visible tree, or the best scenic spot.
	CellLit = 10
	// CellCursor marks the line the next step will process.
	CellCursor = 20
)

// scan is what VisibilitySim and ScenicSim drive.
type scan interface {
	Step() bool
	Pending() (Direction, int, bool)
}

type sim struct {
	name    string
	heights *grid.Grid[uint8]
	forest  *grid.Grid[Tree]
	scan    scan
	start   func(*grid.Grid[Tree]) scan
	lit     func(*grid.Grid[Tree]) func(Tree) bool
	cells   []uint8
	steps   int
}

func (s *sim) Name() string { return s.name }

func (s *sim) Size() core.Size { return core.Size{W: s.heights.LenX(), H: s.heights.LenY()} }

func (s *sim) Cells() []uint8 { return s.cells }

func (s *sim) Reset() {
	s.forest = FromHeights(s.heights)
	s.scan = s.start(s.forest)
	s.steps = 0
	s.paint()
}

func (s *sim) Step() bool {
	if !s.scan.Step() {
		return false
	}
	s.steps++
	s.paint()
	return true
}

// Forest exposes the trees being scanned.
func (s *sim) Forest() *grid.Grid[Tree] { return s.forest }

func (s *sim) paint() {
	isLit := s.lit(s.forest)
	i := 0
	for t := range s.forest.All() {
		c := CellHidden + t.Height
		if isLit(t) {
			c = CellLit + t.Height
		}
		s.cells[i] = c
		i++
	}
	d, line, ok := s.scan.Pending()
	if !ok {
		return
	}
	w := s.forest.LenX()
	if d.alongRows() {
		for x := 0; x < w; x++ {
			s.cells[line*w+x] = CellCursor
		}
		return
	}
	for y := 0; y < s.forest.LenY(); y++ {
		s.cells[y*w+line] = CellCursor
	}
}

func (s *sim) status(result string) string {
	d, line, ok := s.scan.Pending()
	if !ok {
		return fmt.Sprintf("%s: done after %d steps, %s", s.name, s.steps, result)
	}
	return fmt.Sprintf("%s: step %d, from %s line %d, %s", s.name, s.steps, d, line, result)
}

// VisibilitySim animates Sweep.
type VisibilitySim struct{ sim }

// NewVisibilitySim returns a sim sweeping a forest grown from heights.
func NewVisibilitySim(heights *grid.Grid[uint8]) *VisibilitySim {
	s := &VisibilitySim{sim{
		name:    "visibility",
		heights: heights,
		start:   func(f *grid.Grid[Tree]) scan { return NewSweep(f) },
		lit: func(*grid.Grid[Tree]) func(Tree) bool {
			return func(t Tree) bool { return t.Visible }
		},
		cells: make([]uint8, heights.Size()),
	}}
	s.Reset()
	return s
}

// Status reports the sweep position and the visible count so far.
func (s *VisibilitySim) Status() string {
	n := 0
	for t := range s.forest.All() {
		if t.Visible {
			n++
		}
	}
	return s.status(fmt.Sprintf("%d visible", n))
}

// ScenicSim animates ScenicSweep. Once finished it lights the trees with
// the best score.
type ScenicSim struct{ sim }

// NewScenicSim returns a sim scoring a forest grown from heights.
func NewScenicSim(heights *grid.Grid[uint8]) *ScenicSim {
	s := &ScenicSim{sim{
		name:    "scenic",
		heights: heights,
		start:   func(f *grid.Grid[Tree]) scan { return NewScenicSweep(f) },
		lit: func(f *grid.Grid[Tree]) func(Tree) bool {
			best := bestScore(f)
			return func(t Tree) bool { return best > 0 && t.ScenicScore() == best }
		},
		cells: make([]uint8, heights.Size()),
	}}
	s.Reset()
	return s
}

// Status reports the sweep position and the best score so far.
func (s *ScenicSim) Status() string {
	return s.status(fmt.Sprintf("best score %d", bestScore(s.forest)))
}

func bestScore(f *grid.Grid[Tree]) int {
	best := 0
	for t := range f.All() {
		best = max(best, t.ScenicScore())
	}
	return best
}

func init() {
	core.Register("visibility", func(heights *grid.Grid[uint8]) core.Sim {
		return NewVisibilitySim(heights)
	})
	core.Register("scenic", func(heights *grid.Grid[uint8]) core.Sim {
		return NewScenicSim(heights)
	})
}
