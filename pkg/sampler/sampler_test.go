package sampler

import (
	"math"
	"math/rand"
	"testing"

	"github.com/dmccue/go-ray-caster/pkg/core"
)

func testGenerators(t *testing.T) map[string]Generator {
	t.Helper()

	jittered, err := NewJittered(25)
	if err != nil {
		t.Fatalf("NewJittered: %v", err)
	}
	regular, err := NewRegular(25)
	if err != nil {
		t.Fatalf("NewRegular: %v", err)
	}
	multiJittered, err := NewMultiJittered(25)
	if err != nil {
		t.Fatalf("NewMultiJittered: %v", err)
	}

	return map[string]Generator{
		"random":        NewRandom(25),
		"regular":       regular,
		"jittered":      jittered,
		"nrooks":        NewNRooks(25),
		"multijittered": multiJittered,
		"hammersley":    NewHammersley(25),
	}
}

func TestGenerators_SquareSamplesInUnitSquare(t *testing.T) {
	for name, gen := range testGenerators(t) {
		t.Run(name, func(t *testing.T) {
			rng := rand.New(rand.NewSource(1))
			samples := GenSquareSamples(gen, rng)

			for draw := 0; draw < 5; draw++ {
				set := samples.GetNext()
				if len(set) != gen.NumSamples() {
					t.Fatalf("Expected %d samples per set, got %d", gen.NumSamples(), len(set))
				}
				for _, s := range set {
					if s.X < 0 || s.X > 1 || s.Y < 0 || s.Y > 1 {
						t.Errorf("Sample %v outside unit square", s)
					}
				}
			}
		})
	}
}

func TestGenerators_DiscSamplesInUnitDisc(t *testing.T) {
	for name, gen := range testGenerators(t) {
		t.Run(name, func(t *testing.T) {
			rng := rand.New(rand.NewSource(1))
			samples := GenDiscSamples(gen, rng)

			for draw := 0; draw < 5; draw++ {
				for _, s := range samples.GetNext() {
					if s.Dot(s) > 1.0+1e-9 {
						t.Errorf("Sample %v outside unit disc (r²=%f)", s, s.Dot(s))
					}
				}
			}
		})
	}
}

func TestGenerators_HemisphereSamplesOnUpperHemisphere(t *testing.T) {
	for name, gen := range testGenerators(t) {
		t.Run(name, func(t *testing.T) {
			rng := rand.New(rand.NewSource(1))
			samples := GenHemisphereSamples(gen, 1.0, rng)

			for draw := 0; draw < 5; draw++ {
				for _, s := range samples.GetNext() {
					if s.Z < 0 {
						t.Errorf("Sample %v below the hemisphere", s)
					}
					length := math.Sqrt(s.Dot(s))
					if math.Abs(length-1.0) > 1e-9 {
						t.Errorf("Sample %v not on unit hemisphere (|s|=%f)", s, length)
					}
				}
			}
		})
	}
}

func TestGridGenerators_RejectNonSquareCounts(t *testing.T) {
	if _, err := NewJittered(24); err == nil {
		t.Error("Expected error for non-square jittered sample count")
	}
	if _, err := NewRegular(2); err == nil {
		t.Error("Expected error for non-square regular sample count")
	}
	if _, err := NewMultiJittered(50); err == nil {
		t.Error("Expected error for non-square multi-jittered sample count")
	}
	if _, err := NewMultiJittered(49); err != nil {
		t.Errorf("Expected 49 samples to be accepted: %v", err)
	}
}

func TestSamples_RoundRobinNeverRunsOut(t *testing.T) {
	gen, err := NewJittered(16)
	if err != nil {
		t.Fatalf("NewJittered: %v", err)
	}
	rng := rand.New(rand.NewSource(7))
	samples := GenSquareSamples(gen, rng)

	// Draw well past one full rotation through the precomputed sets;
	// every draw must produce a full set
	for draw := 0; draw < 3*NumSets; draw++ {
		if got := len(samples.GetNext()); got != 16 {
			t.Fatalf("Draw %d returned %d samples, want 16", draw, got)
		}
	}
}

func TestSamples_SingleSetGeneratorRepeats(t *testing.T) {
	gen := NewHammersley(9)
	samples := GenSquareSamples(gen, nil)

	first := append([]core.Vec2(nil), samples.GetNext()...)
	for draw := 0; draw < 10; draw++ {
		set := samples.GetNext()
		for i := range set {
			if set[i] != first[i] {
				t.Fatalf("Deterministic generator changed its set on draw %d", draw)
			}
		}
	}
}

func TestGenerators_Deterministic(t *testing.T) {
	gen, err := NewMultiJittered(16)
	if err != nil {
		t.Fatalf("NewMultiJittered: %v", err)
	}

	a := gen.SquareSet(rand.New(rand.NewSource(3)))
	b := gen.SquareSet(rand.New(rand.NewSource(3)))
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("Same seed produced different sets at index %d: %v != %v", i, a[i], b[i])
		}
	}
}

func TestNRooks_Condition(t *testing.T) {
	gen := NewNRooks(8)
	set := gen.SquareSet(rand.New(rand.NewSource(5)))

	// Exactly one sample per row and column of the 8×8 grid
	var rows, cols [8]int
	for _, s := range set {
		rows[int(s.Y*8)]++
		cols[int(s.X*8)]++
	}
	for i := 0; i < 8; i++ {
		if rows[i] != 1 || cols[i] != 1 {
			t.Fatalf("n-rooks condition violated: row %d used %d times, column %d used %d times",
				i, rows[i], i, cols[i])
		}
	}
}
