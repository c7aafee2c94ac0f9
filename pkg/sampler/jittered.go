package sampler

import (
	"math/rand"

	"github.com/dmccue/go-ray-caster/pkg/core"
)

// Jittered divides the unit square into a grid of numSamples cells and
// places one random sample inside each cell. This keeps the regular
// grid's even coverage while breaking up its aliasing artifacts.
type Jittered struct {
	numSamples int
	n          int
}

// NewJittered creates a jittered generator. numSamples must be a perfect
// square.
func NewJittered(numSamples int) (*Jittered, error) {
	n, err := gridSize(numSamples)
	if err != nil {
		return nil, err
	}
	return &Jittered{numSamples: numSamples, n: n}, nil
}

// NumSamples returns the number of samples in each set
func (j *Jittered) NumSamples() int {
	return j.numSamples
}

// NumSets returns the number of distinct sets worth generating
func (j *Jittered) NumSets() int {
	return NumSets
}

// SquareSet generates one set with a random sample in every grid cell
func (j *Jittered) SquareSet(rng *rand.Rand) []core.Vec2 {
	set := make([]core.Vec2, 0, j.numSamples)
	for x := 0; x < j.n; x++ {
		for y := 0; y < j.n; y++ {
			sample := core.NewVec2(
				float64(x)+rng.Float64(),
				float64(y)+rng.Float64(),
			).Divide(float64(j.n))
			set = append(set, sample)
		}
	}
	return set
}
