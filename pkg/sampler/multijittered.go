package sampler

import (
	"math/rand"

	"github.com/dmccue/go-ray-caster/pkg/core"
)

// MultiJittered combines jittered and n-rooks sampling. Samples are
// jittered within a coarse n×n grid for good 2D distribution while the
// fine n²-cell subgrid satisfies the n-rooks condition for good 1D
// projections. This is the default generator.
type MultiJittered struct {
	numSamples int
	n          int
}

// NewMultiJittered creates a multi-jittered generator. numSamples must
// be a perfect square.
func NewMultiJittered(numSamples int) (*MultiJittered, error) {
	n, err := gridSize(numSamples)
	if err != nil {
		return nil, err
	}
	return &MultiJittered{numSamples: numSamples, n: n}, nil
}

// NumSamples returns the number of samples in each set
func (m *MultiJittered) NumSamples() int {
	return m.numSamples
}

// NumSets returns the number of distinct sets worth generating
func (m *MultiJittered) NumSets() int {
	return NumSets
}

// SquareSet generates one multi-jittered set
func (m *MultiJittered) SquareSet(rng *rand.Rand) []core.Vec2 {
	xs := make([]float64, 0, m.numSamples)
	ys := make([]float64, 0, m.numSamples)

	subcellSize := 1.0 / float64(m.numSamples)

	// Lay the coordinates out in the initial jittered n-rooks pattern
	for i := 0; i < m.n; i++ {
		for j := 0; j < m.n; j++ {
			x := float64(i*m.n+j)*subcellSize + rng.Float64()*subcellSize
			y := float64(j*m.n+i)*subcellSize + rng.Float64()*subcellSize
			xs = append(xs, x)
			ys = append(ys, y)
		}
	}

	// Shuffle x-coordinates within each row
	for row := 0; row < m.n; row++ {
		for col := 0; col < m.n-1; col++ {
			r := col + rng.Intn(m.n-1-col)
			xs[row*m.n+col], xs[row*m.n+r] = xs[row*m.n+r], xs[row*m.n+col]
		}
	}

	// Shuffle y-coordinates within each column
	for col := 0; col < m.n; col++ {
		for row := 0; row < m.n-1; row++ {
			r := row + rng.Intn(m.n-1-row)
			ys[row*m.n+col], ys[r*m.n+col] = ys[r*m.n+col], ys[row*m.n+col]
		}
	}

	set := make([]core.Vec2, m.numSamples)
	for i := range set {
		set[i] = core.NewVec2(xs[i], ys[i])
	}
	rng.Shuffle(len(set), func(i, j int) {
		set[i], set[j] = set[j], set[i]
	})
	return set
}
