// Package sampler provides sample-set generators for antialiasing, lens
// sampling and hemisphere sampling. Each generator produces batches of
// points on the unit square which can be remapped onto the unit disc or
// the unit hemisphere.
package sampler

import (
	"math"
	"math/rand"

	"github.com/dmccue/go-ray-caster/pkg/core"
)

// NumSets is the number of sample sets precomputed per Samples container.
// Consumers draw the sets round-robin, so a modest prime-ish count keeps
// neighbouring pixels from reusing the same set in lockstep.
const NumSets = 83

// Generator produces sets of well-distributed sample points on the unit
// square. Generators hold only distribution parameters; all randomness
// comes from the *rand.Rand passed in, so renders are reproducible under
// a fixed seed.
type Generator interface {
	// NumSamples is the number of samples in each set.
	NumSamples() int

	// NumSets is the number of distinct sets worth generating. Purely
	// deterministic generators return 1.
	NumSets() int

	// SquareSet generates one fresh set of samples on the unit square.
	SquareSet(rng *rand.Rand) []core.Vec2
}

// NewDefault returns the generator to use if you're not fussed
// otherwise. numSamples must be a perfect square.
func NewDefault(numSamples int) (*MultiJittered, error) {
	return NewMultiJittered(numSamples)
}

// GenSquareSamples precomputes sample sets on the unit square.
// Each sample lies between (0, 0) and (1, 1).
func GenSquareSamples(g Generator, rng *rand.Rand) *Samples[core.Vec2] {
	sets := make([][]core.Vec2, g.NumSets())
	for i := range sets {
		sets[i] = g.SquareSet(rng)
	}
	return newSamples(g.NumSamples(), sets, rng)
}

// GenDiscSamples precomputes sample sets on the unit disc, centred at
// (0, 0) with radius 1, via Shirley's concentric square-to-disc map.
func GenDiscSamples(g Generator, rng *rand.Rand) *Samples[core.Vec2] {
	sets := make([][]core.Vec2, g.NumSets())
	for i := range sets {
		set := g.SquareSet(rng)
		mapped := make([]core.Vec2, len(set))
		for j, s := range set {
			mapped[j] = squareToDisc(s)
		}
		sets[i] = mapped
	}
	return newSamples(g.NumSamples(), sets, rng)
}

// GenHemisphereSamples precomputes sample sets on the unit hemisphere
// with z >= 0, distributed according to a cosine-power density with
// exponent e. Samples bunch toward the pole as e grows; e = 0 gives a
// uniform distribution. e must be non-negative.
func GenHemisphereSamples(g Generator, e float64, rng *rand.Rand) *Samples[core.Vec3] {
	sets := make([][]core.Vec3, g.NumSets())
	for i := range sets {
		set := g.SquareSet(rng)
		mapped := make([]core.Vec3, len(set))
		for j, s := range set {
			mapped[j] = squareToHemisphere(s, e)
		}
		sets[i] = mapped
	}
	return newSamples(g.NumSamples(), sets, rng)
}

// squareToDisc maps a sample on the unit square onto the unit disc using
// the concentric mapping, which preserves the relative area of sample
// regions better than a polar mapping.
func squareToDisc(sample core.Vec2) core.Vec2 {
	// Map to [-1,1]² and handle degeneracy at the origin
	x := 2.0*sample.X - 1.0
	y := 2.0*sample.Y - 1.0
	if x == 0 && y == 0 {
		return core.NewVec2(0, 0)
	}

	var r, phi float64
	if math.Abs(x) > math.Abs(y) {
		r = x
		phi = math.Pi / 4 * (y / x)
	} else {
		r = y
		phi = math.Pi/2 - math.Pi/4*(x/y)
	}
	return core.NewVec2(r*math.Cos(phi), r*math.Sin(phi))
}

// squareToHemisphere maps a sample on the unit square onto the unit
// hemisphere according to the cosine-power distribution with exponent e.
func squareToHemisphere(sample core.Vec2, e float64) core.Vec3 {
	phi := 2.0 * math.Pi * sample.X
	cosTheta := math.Pow(1.0-sample.Y, 1.0/(e+1.0))
	sinTheta := math.Sqrt(1.0 - cosTheta*cosTheta)
	return core.NewVec3(sinTheta*math.Cos(phi), sinTheta*math.Sin(phi), cosTheta)
}
