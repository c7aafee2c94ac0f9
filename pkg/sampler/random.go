package sampler

import (
	"math/rand"

	"github.com/dmccue/go-ray-caster/pkg/core"
)

// Random places every sample uniformly at random. Cheap, but gives no
// guarantees about sample distribution; expect clumping.
type Random struct {
	numSamples int
}

// NewRandom creates a purely random generator
func NewRandom(numSamples int) *Random {
	return &Random{numSamples: numSamples}
}

// NumSamples returns the number of samples in each set
func (r *Random) NumSamples() int {
	return r.numSamples
}

// NumSets returns the number of distinct sets worth generating
func (r *Random) NumSets() int {
	return NumSets
}

// SquareSet generates one set of uniformly random samples
func (r *Random) SquareSet(rng *rand.Rand) []core.Vec2 {
	set := make([]core.Vec2, r.numSamples)
	for i := range set {
		set[i] = core.NewVec2(rng.Float64(), rng.Float64())
	}
	return set
}
