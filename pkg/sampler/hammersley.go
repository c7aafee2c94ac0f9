package sampler

import (
	"math/rand"

	"github.com/dmccue/go-ray-caster/pkg/core"
)

// Hammersley places samples at (i/n, Φ₂(i)) where Φ₂ is the base-2
// radical inverse. Entirely deterministic, so only one set exists.
type Hammersley struct {
	numSamples int
}

// NewHammersley creates a Hammersley generator
func NewHammersley(numSamples int) *Hammersley {
	return &Hammersley{numSamples: numSamples}
}

// NumSamples returns the number of samples in each set
func (h *Hammersley) NumSamples() int {
	return h.numSamples
}

// NumSets returns 1; the point set is deterministic
func (h *Hammersley) NumSets() int {
	return 1
}

// SquareSet generates the Hammersley point set
func (h *Hammersley) SquareSet(_ *rand.Rand) []core.Vec2 {
	n := float64(h.numSamples)
	set := make([]core.Vec2, h.numSamples)
	for i := range set {
		set[i] = core.NewVec2(float64(i)/n, radicalInverse(i))
	}
	return set
}

// radicalInverse mirrors the binary digits of j about the radix point
func radicalInverse(j int) float64 {
	x := 0.0
	f := 0.5
	for j != 0 {
		x += f * float64(j&1)
		j >>= 1
		f *= 0.5
	}
	return x
}
