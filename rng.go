package maxxor

import (
	"math"
	"math/rand"

	rng "github.com/leesper/go_rng"
)

// RNG is the source of randomness used to generate test sequences.
type RNG interface {
	// Int64n returns a uniformly distributed value in [0, n).
	Int64n(n int64) int64
}

type globalRNG struct{}

func (r *globalRNG) Int64n(n int64) int64 {
	return rand.Int63n(n)
}

// GlobalRNG returns an RNG backed by the math/rand global source.
func GlobalRNG() RNG {
	return &globalRNG{}
}

type uniformRNG struct {
	gen *rng.UniformGenerator
}

func (r *uniformRNG) Int64n(n int64) int64 {
	return r.gen.Int64n(n)
}

// NewUniformRNG returns a seeded RNG, so generated sequences can be
// reproduced.
func NewUniformRNG(seed int64) RNG {
	return &uniformRNG{gen: rng.NewUniformGenerator(seed)}
}

// RandomSequence returns n values that fit in width bits. For width 64
// the values span the whole int64 range, negatives included.
func RandomSequence(r RNG, n int, width uint) []int64 {
	if width < 1 || width > 64 {
		panic("RandomSequence: width must be within [1, 64]")
	}

	values := make([]int64, n)
	for i := range values {
		switch {
		case width < 63:
			values[i] = r.Int64n(int64(1) << width)
		case width == 63:
			values[i] = r.Int64n(math.MaxInt64)
		default:
			v := r.Int64n(math.MaxInt64)
			if r.Int64n(2) == 1 {
				v = ^v
			}
			values[i] = v
		}
	}
	return values
}
