package core

import (
	"math/rand/v2"

	"treetop/internal/grid"
)

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// Uint8n returns a random uint8 in [0, n).
func (r *RNG) Uint8n(n uint8) uint8 {
	if n == 0 {
		return 0
	}
	return uint8(r.r.IntN(int(n)))
}

// Heights returns a w by h grid of random heights in [0, 9].
func (r *RNG) Heights(w, h int) *grid.Grid[uint8] {
	g := grid.New(w, h, uint8(0))
	for c := range g.Cells() {
		*c = r.Uint8n(10)
	}
	return g
}
