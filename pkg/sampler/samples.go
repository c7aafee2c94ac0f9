package sampler

import "math/rand"

// Samples is a container of precomputed sample sets. GetNext hands the
// sets out round-robin and never runs out: after one full rotation the
// visiting order is reshuffled and the rotation restarts. Each render
// invocation owns its own Samples value, so the cursor and shuffle state
// are never shared between renders.
type Samples[T any] struct {
	sets       [][]T
	numSamples int
	count      int
	indices    []int
	rng        *rand.Rand
}

func newSamples[T any](numSamples int, sets [][]T, rng *rand.Rand) *Samples[T] {
	indices := make([]int, len(sets))
	for i := range indices {
		indices[i] = i
	}
	return &Samples[T]{
		sets:       sets,
		numSamples: numSamples,
		indices:    indices,
		rng:        rng,
	}
}

// NumSamples returns the number of samples in each set.
// Equivalent to len(s.GetNext()) without consuming a set.
func (s *Samples[T]) NumSamples() int {
	return s.numSamples
}

// GetNext returns the next sample set. The returned slice is shared
// state and must not be modified or retained across calls.
func (s *Samples[T]) GetNext() []T {
	// A single-set container just hands out the same set forever
	if len(s.indices) > 1 {
		s.count++
		if s.count == len(s.indices) {
			s.count = 0
			s.rng.Shuffle(len(s.indices), func(i, j int) {
				s.indices[i], s.indices[j] = s.indices[j], s.indices[i]
			})
		}
	}
	return s.sets[s.indices[s.count]]
}
