package core

import (
	"sort"

	"treetop/internal/grid"
)

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// Sim is a grid scan that can be advanced one step at a time and drawn.
type Sim interface {
	Name() string
	Size() Size
	// Reset rewinds the scan to its initial state.
	Reset()
	// Step advances the scan and reports whether anything was left to do.
	Step() bool
	// Cells returns one palette index per cell in row-major order.
	Cells() []uint8
}

// Reporter is implemented by sims that can describe their progress.
type Reporter interface {
	Status() string
}

// Factory constructs a Sim over a grid of heights.
type Factory func(heights *grid.Grid[uint8]) Sim

var sims = map[string]Factory{}

// Register adds a simulation factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	sims[name] = f
}

// Sims exposes the registry of available simulation factories.
func Sims() map[string]Factory {
	return sims
}

// SimNames lists the registered names in sorted order.
func SimNames() []string {
	names := make([]string, 0, len(sims))
	for name := range sims {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
