package grid

import (
	"fmt"
	"iter"
)

// Column is a strided view over one column of a Grid, or a contiguous run of
// rows within it. It holds an offset and a stride into the grid's backing
// slice, so creating one is O(1) and walking it in either direction never
// allocates. Writes through a Column are visible through the grid and vice
// versa.
type Column[T any] struct {
	data   []T
	start  int
	stride int
	n      int
}

// Len returns the number of cells in the view.
func (c Column[T]) Len() int { return c.n }

// Get returns the i-th cell of the view.
func (c Column[T]) Get(i int) T { return c.data[c.offset(i)] }

// At returns a pointer to the i-th cell of the view.
func (c Column[T]) At(i int) *T { return &c.data[c.offset(i)] }

// Set stores v in the i-th cell of the view.
func (c Column[T]) Set(i int, v T) { c.data[c.offset(i)] = v }

// All yields (position, cell) pairs from the top of the view down.
func (c Column[T]) All() iter.Seq2[int, *T] {
	return func(yield func(int, *T) bool) {
		for i, off := 0, c.start; i < c.n; i, off = i+1, off+c.stride {
			if !yield(i, &c.data[off]) {
				return
			}
		}
	}
}

// Backward yields (position, cell) pairs from the bottom of the view up.
// Positions are the same as in All, so they count down to zero.
func (c Column[T]) Backward() iter.Seq2[int, *T] {
	return func(yield func(int, *T) bool) {
		for i := c.n - 1; i >= 0; i-- {
			if !yield(i, &c.data[c.start+i*c.stride]) {
				return
			}
		}
	}
}

// Values yields the cell values from the top of the view down.
func (c Column[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, p := range c.All() {
			if !yield(*p) {
				return
			}
		}
	}
}

// Slice returns the sub-view of positions [lo, hi).
func (c Column[T]) Slice(lo, hi int) Column[T] {
	if lo < 0 || hi < lo || hi > c.n {
		panic(fmt.Sprintf("grid: column slice [%d:%d] out of range for length %d", lo, hi, c.n))
	}
	return Column[T]{data: c.data, start: c.start + lo*c.stride, stride: c.stride, n: hi - lo}
}

// Collect copies the view into a new slice.
func (c Column[T]) Collect() []T {
	out := make([]T, 0, c.n)
	for v := range c.Values() {
		out = append(out, v)
	}
	return out
}

func (c Column[T]) offset(i int) int {
	if i < 0 || i >= c.n {
		panic(fmt.Sprintf("grid: column position %d out of range for length %d", i, c.n))
	}
	return c.start + i*c.stride
}
