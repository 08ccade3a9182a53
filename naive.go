package maxxor

import (
	"gonum.org/v1/gonum/stat/combin"
)

// Naive computes the same quantity as Compute by trying every pair of
// prefix positions, which amounts to every contiguous subrange. It runs in
// O(n²) and only exists as a reference for small inputs.
//
// Ties may be resolved with a different witnessing subrange than Compute
// picks; the values always agree.
func Naive(values []int64) (Result, error) {
	if len(values) == 0 {
		return Result{}, ErrEmptyInput
	}

	prefix := make([]int64, len(values)+1)
	for i, v := range values {
		prefix[i+1] = prefix[i] ^ v
	}

	var best Result
	found := false

	pair := make([]int, 2)
	gen := combin.NewCombinationGenerator(len(prefix), 2)
	for gen.Next() {
		gen.Combination(pair)
		l, r := pair[0], pair[1]

		x := prefix[l] ^ prefix[r]
		if !found || x > best.Value {
			best = Result{Value: x, Start: l, End: r - 1}
			found = true
		}
	}

	return best, nil
}
