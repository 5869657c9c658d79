package array

import (
	"math"
	"math/bits"
	"slices"
)

// Range enumerates every multi-index of shape in row-major order.
//
// A rank-1 shape [n] yields 0..n. For higher ranks each index is written
// as a trailing axis of length rank, so Range([2 3]) has shape [2 × 3 × 2].
// An empty shape yields the scalar 0, and any zero axis an empty array.
// Ranges of more than maxRangeLen elements fail with a DomainError.
func Range(shape Shape, env *Env) (*Array[float64], error) {
	for _, dim := range shape {
		if dim < 0 {
			return nil, env.Errorf(DomainError, "Range max should be a natural number, but it is %d", dim)
		}
	}
	if len(shape) == 0 {
		return Scalar(0.0), nil
	}

	outShape := shape.Clone()
	if len(shape) > 1 {
		outShape = append(outShape, len(shape))
	}
	if slices.Contains(shape, 0) {
		return &Array[float64]{shape: outShape, data: []float64{}}, nil
	}

	n, err := rangeLen(shape, env)
	if err != nil {
		return nil, err
	}

	data := make([]float64, 0, n)
	curr := make([]int, len(shape))
	for {
		for _, d := range curr {
			data = append(data, float64(d))
		}
		i := len(shape) - 1
		for {
			curr[i]++
			if curr[i] < shape[i] {
				break
			}
			curr[i] = 0
			if i == 0 {
				return &Array[float64]{shape: outShape, data: data}, nil
			}
			i--
		}
	}
}

// maxRangeLen is the largest number of elements Range will allocate.
const maxRangeLen uint64 = 1 << 32

// rangeLen returns rank × product(shape), failing if it exceeds
// maxRangeLen or does not fit in an int.
func rangeLen(shape Shape, env *Env) (int, error) {
	n := uint64(len(shape))
	for _, dim := range shape {
		hi, lo := bits.Mul64(n, uint64(dim))
		if hi != 0 || lo > maxRangeLen || lo > math.MaxInt {
			total := float64(len(shape))
			for _, d := range shape {
				total *= float64(d)
			}
			return 0, env.Errorf(DomainError,
				"Attempting to make a range from shape %v would create an array with %v elements, which is too large",
				shape, total)
		}
		n = lo
	}
	return int(n), nil
}
