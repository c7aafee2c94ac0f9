package sampler

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/dmccue/go-ray-caster/pkg/core"
)

// Regular places samples on a fixed grid over the unit square. There is
// no randomness at all, so only a single set is generated.
type Regular struct {
	numSamples int
	n          int
}

// NewRegular creates a grid generator. numSamples must be a perfect
// square so the grid divides the unit square evenly.
func NewRegular(numSamples int) (*Regular, error) {
	n, err := gridSize(numSamples)
	if err != nil {
		return nil, err
	}
	return &Regular{numSamples: numSamples, n: n}, nil
}

// NumSamples returns the number of samples in each set
func (r *Regular) NumSamples() int {
	return r.numSamples
}

// NumSets returns 1; there is only one kind of regular
func (r *Regular) NumSets() int {
	return 1
}

// SquareSet generates the grid of samples
func (r *Regular) SquareSet(_ *rand.Rand) []core.Vec2 {
	set := make([]core.Vec2, 0, r.numSamples)
	for x := 0; x < r.n; x++ {
		for y := 0; y < r.n; y++ {
			set = append(set, core.NewVec2(float64(x), float64(y)).Divide(float64(r.n)))
		}
	}
	return set
}

// gridSize validates that numSamples is a perfect square and returns its
// square root, the subdivision count per axis.
func gridSize(numSamples int) (int, error) {
	n := int(math.Sqrt(float64(numSamples)))
	if n*n != numSamples {
		return 0, fmt.Errorf("sampler: sample count %d is not a perfect square", numSamples)
	}
	return n, nil
}
