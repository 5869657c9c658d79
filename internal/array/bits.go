package array

import (
	"math"
	"math/bits"
)

// maxBitsValue is the first natural that no longer fits in 64 bits.
const maxBitsValue = 1 << 64

// Bits expands every natural number into its binary digits along a new
// trailing axis. Bit i of each value lands at index i of its digit row, so
// the least significant bit comes first. The axis is as long as the
// largest value needs; an empty array gets a trailing axis of length 0.
func Bits(a *Array[float64], env *Env) (*Array[uint8], error) {
	nats := make([]uint64, len(a.data))
	var largest uint64
	for i, n := range a.data {
		if n < 0 || math.Trunc(n) != n || math.IsInf(n, 0) {
			return nil, env.Errorf(DomainError, "Array must be a list of naturals")
		}
		if n >= maxBitsValue {
			return nil, env.Errorf(DomainError, "Cannot take the bits of %v, which is too large", n)
		}
		nats[i] = uint64(n)
		largest = max(largest, nats[i])
	}

	shape := append(a.shape.Clone(), 0)
	if len(nats) == 0 {
		return &Array[uint8]{shape: shape, data: []uint8{}}, nil
	}

	maxBits := bits.Len64(largest)
	data := make([]uint8, 0, len(nats)*maxBits)
	for _, n := range nats {
		for i := range maxBits {
			data = append(data, uint8(n>>i&1))
		}
	}
	shape[len(shape)-1] = maxBits
	return &Array[uint8]{shape: shape, data: data}, nil
}

// InverseBits rebuilds natural numbers from digit rows produced by Bits.
// The trailing axis is consumed; a boolean scalar yields its own value.
func InverseBits(a *Array[uint8], env *Env) (*Array[float64], error) {
	for _, b := range a.data {
		if b > 1 {
			return nil, env.Errorf(DomainError, "Array must be a list of booleans")
		}
	}
	if len(a.shape) == 0 {
		return Scalar(float64(a.data[0])), nil
	}

	shape := a.shape[:len(a.shape)-1].Clone()
	bitLen := a.shape[len(a.shape)-1]
	data := make([]float64, shape.NumElements())
	if bitLen == 0 {
		return &Array[float64]{shape: shape, data: data}, nil
	}
	for k := range data {
		group := a.data[k*bitLen : (k+1)*bitLen]
		var n float64
		for i, b := range group {
			if b != 0 {
				n += math.Ldexp(1, i)
			}
		}
		data[k] = n
	}
	return &Array[float64]{shape: shape, data: data}, nil
}
