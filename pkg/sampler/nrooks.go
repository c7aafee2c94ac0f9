package sampler

import (
	"math/rand"

	"github.com/dmccue/go-ray-caster/pkg/core"
)

// NRooks places n samples on an n×n grid such that every row and every
// column holds exactly one sample, like non-attacking rooks on a
// chessboard. Good 1D projections, mediocre 2D distribution.
type NRooks struct {
	numSamples int
}

// NewNRooks creates an n-rooks generator
func NewNRooks(numSamples int) *NRooks {
	return &NRooks{numSamples: numSamples}
}

// NumSamples returns the number of samples in each set
func (n *NRooks) NumSamples() int {
	return n.numSamples
}

// NumSets returns the number of distinct sets worth generating
func (n *NRooks) NumSets() int {
	return NumSets
}

// SquareSet generates one set satisfying the n-rooks condition
func (n *NRooks) SquareSet(rng *rand.Rand) []core.Vec2 {
	xs := rng.Perm(n.numSamples)
	ys := rng.Perm(n.numSamples)

	set := make([]core.Vec2, n.numSamples)
	for i := range set {
		set[i] = core.NewVec2(
			float64(xs[i])+rng.Float64(),
			float64(ys[i])+rng.Float64(),
		).Divide(float64(n.numSamples))
	}
	return set
}
