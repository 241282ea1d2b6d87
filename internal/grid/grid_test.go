package grid

import (
	"math"
	"math/bits"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// numbered returns a w*h grid whose cells hold their own row-major offset.
func numbered(w, h int) *Grid[int] {
	cells := make([]int, w*h)
	for i := range cells {
		cells[i] = i
	}
	return MustFromSlice(w, h, cells)
}

func collectBackward[T any](c Column[T]) []T {
	var out []T
	for _, p := range c.Backward() {
		out = append(out, *p)
	}
	return out
}

func TestNewFillsEveryCell(t *testing.T) {
	g := New(4, 3, 7)
	require.Equal(t, 4, g.LenX())
	require.Equal(t, 3, g.LenY())
	assert.Equal(t, 12, g.Size())
	for y := 0; y < g.LenY(); y++ {
		for x := 0; x < g.LenX(); x++ {
			assert.Equalf(t, 7, g.Get(x, y), "cell (%d,%d)", x, y)
		}
	}
}

func TestNewZeroSizedIsEmpty(t *testing.T) {
	for _, dims := range [][2]int{{0, 0}, {0, 3}, {5, 0}} {
		g := New(dims[0], dims[1], "x")
		assert.Equal(t, 0, g.Size())
		assert.Empty(t, slices.Collect(g.All()))
		assert.Panics(t, func() { g.Get(0, 0) })
	}
}

// overflowDims are dimension pairs whose product does not fit in an int.
// The first wraps to exactly zero.
var overflowDims = [][2]int{
	{1 << (bits.UintSize / 2), 1 << (bits.UintSize / 2)},
	{math.MaxInt/2 + 1, 2},
	{3, math.MaxInt},
}

func TestNewBadDimensionsPanics(t *testing.T) {
	assert.Panics(t, func() { New(-1, 2, 0) })
	assert.Panics(t, func() { New(2, -1, 0) })
	for _, d := range overflowDims {
		assert.Panicsf(t, func() { New(d[0], d[1], 0) }, "%dx%d", d[0], d[1])
	}
}

func TestSetThenRow(t *testing.T) {
	g := New(3, 2, 0)
	*g.At(2, 1) = 9

	if diff := cmp.Diff([]int{0, 0, 9}, g.Row(1)); diff != "" {
		t.Fatalf("row 1 mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]int{0, 9}, g.Col(2).Collect()); diff != "" {
		t.Fatalf("column 2 mismatch (-want +got):\n%s", diff)
	}
}

func TestGetAtRoundTrip(t *testing.T) {
	g := New(5, 4, -1)
	for y := 0; y < 4; y++ {
		for x := 0; x < 5; x++ {
			*g.At(x, y) = x*10 + y
		}
	}
	for y := 0; y < 4; y++ {
		for x := 0; x < 5; x++ {
			require.Equal(t, x*10+y, g.Get(x, y))
		}
	}
	g.Set(3, 2, 100)
	assert.Equal(t, 100, g.Get(3, 2))
}

func TestOutOfRangePanics(t *testing.T) {
	g := numbered(3, 2)
	cases := []struct {
		name string
		fn   func()
	}{
		{"get x past width", func() { g.Get(3, 0) }},
		{"get y past height", func() { g.Get(0, 2) }},
		{"get negative", func() { g.Get(-1, 0) }},
		{"at x past width", func() { g.At(3, 1) }},
		{"set y past height", func() { g.Set(0, 5, 1) }},
		{"row past height", func() { g.Row(2) }},
		{"col past width", func() { g.Col(3) }},
		{"column position", func() { g.Col(0).Get(2) }},
		{"column slice", func() { g.Col(0).Slice(1, 3) }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Panics(t, tc.fn)
		})
	}
}

func TestXPastWidthDoesNotWrap(t *testing.T) {
	// (3, 0) would be offset 3, which is a real cell (0, 1).
	g := numbered(3, 2)
	assert.PanicsWithValue(t, "grid: (3, 0) out of range for 3x2 grid", func() { g.Get(3, 0) })
}

func TestFromSlice(t *testing.T) {
	t.Run("exact", func(t *testing.T) {
		g, err := FromSlice(2, 2, []int{1, 2, 3, 4})
		require.NoError(t, err)
		assert.Equal(t, []int{3, 4}, g.Row(1))
	})
	t.Run("truncates surplus", func(t *testing.T) {
		g, err := FromSlice(2, 2, []int{1, 2, 3, 4, 5, 6})
		require.NoError(t, err)
		assert.Equal(t, 4, g.Size())
		assert.Equal(t, []int{1, 2, 3, 4}, slices.Collect(g.All()))
	})
	t.Run("short backing", func(t *testing.T) {
		_, err := FromSlice(3, 3, []int{1, 2, 3})
		require.ErrorIs(t, err, ErrShortBacking)
		assert.Panics(t, func() { MustFromSlice(3, 3, []int{1, 2, 3}) })
	})
	t.Run("negative", func(t *testing.T) {
		_, err := FromSlice(-2, 1, []int{1})
		require.ErrorIs(t, err, ErrBadDimensions)
	})
	t.Run("overflowing dimensions", func(t *testing.T) {
		for _, d := range overflowDims {
			g, err := FromSlice(d[0], d[1], []int{})
			require.ErrorIsf(t, err, ErrBadDimensions, "%dx%d", d[0], d[1])
			assert.Nil(t, g)
		}
	})
}

func TestRowMatchesGet(t *testing.T) {
	g := numbered(4, 3)
	for y := 0; y < g.LenY(); y++ {
		row := g.Row(y)
		require.Len(t, row, g.LenX())
		for x, v := range row {
			assert.Equal(t, g.Get(x, y), v)
		}
	}
}

func TestRowAppendStaysInRow(t *testing.T) {
	g := numbered(3, 2)
	row := g.Row(0)
	_ = append(row, 42)
	assert.Equal(t, 3, g.Get(0, 1))
}

func TestColumnForwardAndBackward(t *testing.T) {
	g := numbered(3, 4)
	for x := 0; x < g.LenX(); x++ {
		col := g.Col(x)
		require.Equal(t, g.LenY(), col.Len())

		var want []int
		for y := 0; y < g.LenY(); y++ {
			want = append(want, g.Get(x, y))
		}
		assert.Equal(t, want, slices.Collect(col.Values()))

		slices.Reverse(want)
		assert.Equal(t, want, collectBackward(col))
	}
}

func TestColumnBackwardPositions(t *testing.T) {
	g := numbered(2, 3)
	var positions []int
	for i := range g.Col(1).Backward() {
		positions = append(positions, i)
	}
	assert.Equal(t, []int{2, 1, 0}, positions)
}

func TestColumnEarlyBreak(t *testing.T) {
	g := numbered(2, 5)
	seen := 0
	for _, p := range g.Col(0).All() {
		seen++
		if *p >= 4 {
			break
		}
	}
	assert.Equal(t, 3, seen)
}

func TestColumnSlice(t *testing.T) {
	g := numbered(3, 5)
	col := g.Col(1)

	above := col.Slice(0, 2)
	below := col.Slice(3, 5)
	assert.Equal(t, []int{1, 4}, above.Collect())
	assert.Equal(t, []int{10, 13}, below.Collect())
	assert.Equal(t, []int{4, 1}, collectBackward(above))
	assert.Equal(t, 0, col.Slice(5, 5).Len())
	assert.Equal(t, []int{13}, below.Slice(1, 2).Collect())
}

func TestIterRowMajor(t *testing.T) {
	g := numbered(3, 3)
	var want []int
	for y := 0; y < g.LenY(); y++ {
		want = append(want, g.Row(y)...)
	}
	got := slices.Collect(g.All())
	assert.Len(t, got, g.Size())
	assert.Equal(t, want, got)
	// restartable
	assert.Equal(t, got, slices.Collect(g.All()))
}

func TestCellsMutate(t *testing.T) {
	g := New(2, 2, 1)
	for p := range g.Cells() {
		*p *= 5
	}
	assert.Equal(t, []int{5, 5, 5, 5}, slices.Collect(g.All()))
}

func TestAliasingBetweenViews(t *testing.T) {
	g := New(3, 3, 0)

	g.Row(1)[2] = 7
	assert.Equal(t, 7, g.Get(2, 1))
	assert.Equal(t, 7, g.Col(2).Get(1))

	for i, p := range g.Col(0).Backward() {
		*p = 10 + i
	}
	assert.Equal(t, []int{10, 0, 0}, g.Row(0))
	assert.Equal(t, []int{12, 0, 0}, g.Row(2))

	g.Col(1).Set(2, 5)
	assert.Equal(t, 5, g.Row(2)[1])

	*g.At(2, 2) = 3
	assert.Equal(t, []int{3}, g.Col(2).Slice(2, 3).Collect())
	assert.Equal(t, []int{12, 5, 3}, g.Row(2))
}

func TestClone(t *testing.T) {
	g := numbered(2, 2)
	c := g.Clone()
	c.Set(0, 0, 99)
	assert.Equal(t, 0, g.Get(0, 0))
	assert.Equal(t, 99, c.Get(0, 0))
}

type record struct {
	height uint8
	seen   bool
}

func TestStructCells(t *testing.T) {
	g := New(2, 2, record{height: 3})
	g.At(1, 0).seen = true
	for _, p := range g.Col(1).All() {
		p.height++
	}
	assert.Equal(t, record{height: 4, seen: true}, g.Get(1, 0))
	assert.Equal(t, record{height: 3}, g.Get(0, 1))
}
