package maxxor

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"testing"
)

func xorRange(values []int64, r Result) int64 {
	var x int64
	for i := r.Start; i <= r.End; i++ {
		x ^= values[i]
	}
	return x
}

func assertWitness(values []int64, r Result, t *testing.T) {
	t.Helper()
	if r.Start < 0 || r.End >= len(values) || r.Start > r.End {
		t.Fatalf("Witness %v is not a valid subrange of %d values", r, len(values))
	}
	if x := xorRange(values, r); x != r.Value {
		t.Errorf("Witness %v xors to %d, not %d", r, x, r.Value)
	}
}

func TestScenarios(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		values []int64
		want   int64
	}{
		{[]int64{1, 2, 3, 4}, 7},
		{[]int64{5}, 5},
		{[]int64{0, 0, 0}, 0},
		{[]int64{8, 1, 2, 12}, 15},
		{[]int64{7, 7, 7, 7}, 7},
		{[]int64{-1, 3}, 3},
		{[]int64{-5}, -5},
		{[]int64{math.MinInt64, -1}, math.MaxInt64},
	} {
		res, err := Compute(tc.values)
		if err != nil {
			t.Fatalf("Compute(%v) errored: %s", tc.values, err)
		}
		if res.Value != tc.want {
			t.Errorf("Compute(%v) = %d, wanted %d", tc.values, res.Value, tc.want)
		}
		assertWitness(tc.values, res, t)

		naive, _ := Naive(tc.values)
		if naive.Value != res.Value {
			t.Errorf("Naive(%v) = %d but Compute gave %d", tc.values, naive.Value, res.Value)
		}
	}
}

func TestSingleValue(t *testing.T) {
	t.Parallel()

	for _, v := range []int64{0, 1, 5, math.MaxInt64, -1, math.MinInt64} {
		res, err := Compute([]int64{v})
		if err != nil || res.Value != v || res.Start != 0 || res.End != 0 || res.Len() != 1 {
			t.Errorf("Compute([%d]) should give the value itself. Got %v, %v", v, res, err)
		}
	}
}

func TestEmptyInput(t *testing.T) {
	t.Parallel()

	res, err := Compute(nil)
	if !errors.Is(err, ErrEmptyInput) {
		t.Errorf("Compute() on an empty sequence should give ErrEmptyInput. Got %v", err)
	}
	if res != (Result{}) {
		t.Errorf("Compute() on an empty sequence should give the zero Result. Got %v", res)
	}

	_, err = Naive([]int64{})
	if !errors.Is(err, ErrEmptyInput) {
		t.Errorf("Naive() on an empty sequence should give ErrEmptyInput. Got %v", err)
	}

	c, _ := New()
	if _, err := c.Max(); !errors.Is(err, ErrEmptyInput) {
		t.Errorf("Max() on a fresh Computer should give ErrEmptyInput. Got %v", err)
	}
}

func TestMatchesNaive(t *testing.T) {
	t.Parallel()

	r := NewUniformRNG(0xDEADBEEF)

	for round := 0; round < 2000; round++ {
		n := int(r.Int64n(12)) + 1
		width := []uint{1, 3, 8, 31, 64}[round%5]
		values := RandomSequence(r, n, width)

		res, err := Compute(values, Width(width))
		if err != nil {
			t.Fatalf("Compute(%v) errored: %s", values, err)
		}
		naive, _ := Naive(values)

		if res.Value != naive.Value {
			t.Fatalf("Compute(%v) = %d, Naive = %d", values, res.Value, naive.Value)
		}
		assertWitness(values, res, t)

		if width < 64 && res.Value < 0 {
			t.Errorf("Non-negative input must give a non-negative result. Got %d", res.Value)
		}
	}
}

func TestIdempotence(t *testing.T) {
	t.Parallel()

	values := RandomSequence(NewUniformRNG(7), 500, 20)

	first, _ := Compute(values)
	second, _ := Compute(values)

	if first != second {
		t.Errorf("Computing twice should give the same result. Got %v and %v", first, second)
	}
}

func TestOrderMatters(t *testing.T) {
	t.Parallel()

	a, _ := Compute([]int64{1, 2, 5})
	b, _ := Compute([]int64{2, 1, 5})

	if a.Value != 7 || b.Value != 6 {
		t.Errorf("Reordering should change the result. Got %d and %d", a.Value, b.Value)
	}
}

func TestStreaming(t *testing.T) {
	t.Parallel()

	values := RandomSequence(GlobalRNG(), 300, 64)
	c, _ := New()

	for i, v := range values {
		if err := c.Add(v); err != nil {
			t.Fatalf("Add(%d) errored: %s", v, err)
		}

		got, err := c.Max()
		if err != nil {
			t.Fatalf("Max() errored after %d values: %s", i+1, err)
		}
		if i < 40 {
			want, _ := Naive(values[:i+1])
			if got.Value != want.Value {
				t.Fatalf("After %d values: Max() = %d, Naive = %d", i+1, got.Value, want.Value)
			}
		}
	}

	if c.Count() != len(values) {
		t.Errorf("Count() = %d, expected %d", c.Count(), len(values))
	}

	var prefix int64
	for _, v := range values {
		prefix ^= v
	}
	if c.Prefix() != prefix {
		t.Errorf("Prefix() = %d, expected %d", c.Prefix(), prefix)
	}

	c.Reset()
	if c.Count() != 0 || c.Prefix() != 0 {
		t.Errorf("Reset() should clear the sequence. Got %s", c)
	}
	if _, err := c.Max(); !errors.Is(err, ErrEmptyInput) {
		t.Errorf("Max() after Reset() should give ErrEmptyInput. Got %v", err)
	}
}

func TestOutOfRange(t *testing.T) {
	t.Parallel()

	c, _ := New(Width(4))

	for _, v := range []int64{-1, 16, math.MaxInt64} {
		if err := c.Add(v); !errors.Is(err, ErrValueOutOfRange) {
			t.Errorf("Add(%d) with width 4 should give ErrValueOutOfRange. Got %v", v, err)
		}
	}

	if c.Count() != 0 {
		t.Errorf("Rejected values must not be counted. Got %d", c.Count())
	}

	if err := c.AddAll([]int64{15, 0, 3}); err != nil {
		t.Errorf("Values within width should be accepted. Got %s", err)
	}

	if _, err := Compute([]int64{1, 2, 300}, Width(8)); !errors.Is(err, ErrValueOutOfRange) {
		t.Errorf("Compute() should surface ErrValueOutOfRange. Got %v", err)
	}
}

func BenchmarkAdd(b *testing.B) {
	for _, width := range []uint{16, 32, 64} {
		width := width
		b.Run(fmt.Sprintf("width=%d", width), func(b *testing.B) {
			c, _ := New(Width(width), Capacity(uint(b.N)))

			data := make([]int64, b.N)
			mask := int64(math.MaxInt64)
			if width < 64 {
				mask = 1<<width - 1
			}
			for n := 0; n < b.N; n++ {
				data[n] = rand.Int63() & mask
			}

			b.ResetTimer()
			for n := 0; n < b.N; n++ {
				if err := c.Add(data[n]); err != nil {
					b.Error(err)
				}
			}
		})
	}
}
