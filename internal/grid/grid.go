// Package grid provides a fixed-size two-dimensional container stored in
// row-major order over a single flat slice.
//
// x selects the column (position within a row) and y selects the row. The
// cell at (x, y) lives at offset LenX*y + x, so a row is a contiguous slice
// while a column is a walk with stride LenX. Rows are handed out as aliasing
// slices and columns as Column views; neither copies cells.
//
// Out-of-range coordinates are programmer errors and panic. Construction from
// an existing slice returns an error instead, since its input usually comes
// from parsed text.
package grid

import (
	"errors"
	"fmt"
	"iter"
)

var (
	// ErrBadDimensions reports a negative width or height, or one whose
	// product does not fit in an int.
	ErrBadDimensions = errors.New("grid: bad dimensions")
	// ErrShortBacking reports a backing slice with fewer than LenX*LenY elements.
	ErrShortBacking = errors.New("grid: backing slice too short")
)

// Grid is a LenX by LenY container of T values in row-major order.
type Grid[T any] struct {
	lenX, lenY int
	data       []T
}

// New allocates a lenX by lenY grid with every cell set to init. Zero
// dimensions give an empty grid. Negative or overflowing dimensions panic.
func New[T any](lenX, lenY int, init T) *Grid[T] {
	n, err := cellCount(lenX, lenY)
	if err != nil {
		panic(fmt.Sprintf("grid: New(%d, %d): %v", lenX, lenY, err))
	}
	data := make([]T, n)
	for i := range data {
		data[i] = init
	}
	return &Grid[T]{lenX: lenX, lenY: lenY, data: data}
}

// FromSlice builds a grid that takes ownership of s. Elements past
// lenX*lenY are dropped; a shorter s yields ErrShortBacking. The caller
// must not keep using s afterwards.
func FromSlice[T any](lenX, lenY int, s []T) (*Grid[T], error) {
	n, err := cellCount(lenX, lenY)
	if err != nil {
		return nil, err
	}
	if len(s) < n {
		return nil, fmt.Errorf("%w: have %d elements, need %d for %dx%d", ErrShortBacking, len(s), n, lenX, lenY)
	}
	return &Grid[T]{lenX: lenX, lenY: lenY, data: s[:n:n]}, nil
}

// MustFromSlice is like FromSlice but panics on error.
func MustFromSlice[T any](lenX, lenY int, s []T) *Grid[T] {
	g, err := FromSlice(lenX, lenY, s)
	if err != nil {
		panic(err)
	}
	return g
}

// LenX returns the number of columns.
func (g *Grid[T]) LenX() int { return g.lenX }

// LenY returns the number of rows.
func (g *Grid[T]) LenY() int { return g.lenY }

// Size returns LenX*LenY.
func (g *Grid[T]) Size() int { return len(g.data) }

// InBounds reports whether (x, y) addresses a cell.
func (g *Grid[T]) InBounds(x, y int) bool {
	return x >= 0 && x < g.lenX && y >= 0 && y < g.lenY
}

// Get returns the value at (x, y).
func (g *Grid[T]) Get(x, y int) T { return g.data[g.index(x, y)] }

// At returns a pointer to the cell at (x, y). The pointer stays valid for
// the lifetime of the grid.
func (g *Grid[T]) At(x, y int) *T { return &g.data[g.index(x, y)] }

// Set stores v at (x, y).
func (g *Grid[T]) Set(x, y int, v T) { g.data[g.index(x, y)] = v }

// All yields every value in row-major order. Each call starts a fresh pass
// over the current contents.
func (g *Grid[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range g.data {
			if !yield(v) {
				return
			}
		}
	}
}

// Cells yields a pointer to every cell in row-major order.
func (g *Grid[T]) Cells() iter.Seq[*T] {
	return func(yield func(*T) bool) {
		for i := range g.data {
			if !yield(&g.data[i]) {
				return
			}
		}
	}
}

// Row returns row y as a slice of exactly LenX cells ordered by x. The
// slice aliases the grid, and its capacity ends at the row boundary so an
// append never overwrites the next row.
func (g *Grid[T]) Row(y int) []T {
	if y < 0 || y >= g.lenY {
		panic(fmt.Sprintf("grid: row %d out of range for %dx%d grid", y, g.lenX, g.lenY))
	}
	start := g.lenX * y
	end := start + g.lenX
	return g.data[start:end:end]
}

// Col returns a view over column x ordered by y.
func (g *Grid[T]) Col(x int) Column[T] {
	if x < 0 || x >= g.lenX {
		panic(fmt.Sprintf("grid: column %d out of range for %dx%d grid", x, g.lenX, g.lenY))
	}
	return Column[T]{data: g.data, start: x, stride: g.lenX, n: g.lenY}
}

// Clone returns a grid with its own copy of the cells.
func (g *Grid[T]) Clone() *Grid[T] {
	data := make([]T, len(g.data))
	copy(data, g.data)
	return &Grid[T]{lenX: g.lenX, lenY: g.lenY, data: data}
}

// cellCount returns lenX*lenY, rejecting negative dimensions and products
// that overflow int.
func cellCount(lenX, lenY int) (int, error) {
	if lenX < 0 || lenY < 0 {
		return 0, fmt.Errorf("%w: %dx%d", ErrBadDimensions, lenX, lenY)
	}
	n := lenX * lenY
	if lenX != 0 && n/lenX != lenY {
		return 0, fmt.Errorf("%w: %dx%d overflows", ErrBadDimensions, lenX, lenY)
	}
	return n, nil
}

func (g *Grid[T]) index(x, y int) int {
	if !g.InBounds(x, y) {
		panic(fmt.Sprintf("grid: (%d, %d) out of range for %dx%d grid", x, y, g.lenX, g.lenY))
	}
	return g.lenX*y + x
}
