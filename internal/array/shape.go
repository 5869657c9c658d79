package array

import (
	"strconv"
	"strings"
)

// Shape represents the dimensions of an array, outermost axis first.
// An empty shape is a scalar.
type Shape []int

// NumElements returns the total number of elements in the array.
func (s Shape) NumElements() int {
	n := 1 // Scalar has 1 element
	for _, dim := range s {
		n *= dim
	}
	return n
}

// Rank returns the number of axes.
func (s Shape) Rank() int {
	return len(s)
}

// RowCount returns the length of the leading axis, or 1 for a scalar.
func (s Shape) RowCount() int {
	if len(s) == 0 {
		return 1
	}
	return s[0]
}

// RowLen returns the number of elements in one row: the product of every
// axis after the first. A scalar's row length is 1.
func (s Shape) RowLen() int {
	if len(s) == 0 {
		return 1
	}
	return s[1:].NumElements()
}

// Equal checks if two shapes are equal.
func (s Shape) Equal(other Shape) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}
	return true
}

// PrefixesMatch reports whether s and other agree on every axis of their
// common leading prefix. A scalar matches every shape.
func (s Shape) PrefixesMatch(other Shape) bool {
	n := min(len(s), len(other))
	return s[:n].Equal(other[:n])
}

// Clone returns a copy of the shape.
func (s Shape) Clone() Shape {
	clone := make(Shape, len(s))
	copy(clone, s)
	return clone
}

// ComputeStrides calculates row-major strides for the shape.
// Strides define memory layout: stride[i] = product of all dimensions after i.
func (s Shape) ComputeStrides() []int {
	strides := make([]int, len(s))
	if len(s) == 0 {
		return strides
	}

	strides[len(s)-1] = 1
	for i := len(s) - 2; i >= 0; i-- {
		strides[i] = strides[i+1] * s[i+1]
	}
	return strides
}

// String formats the shape as [2 × 3 × 4].
func (s Shape) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, dim := range s {
		if i > 0 {
			sb.WriteString(" × ")
		}
		sb.WriteString(strconv.Itoa(dim))
	}
	sb.WriteByte(']')
	return sb.String()
}

// MaxShape returns the element-wise maximum of a and b. Axes present in
// only the longer shape are taken from it unchanged.
func MaxShape(a, b Shape) Shape {
	if len(a) < len(b) {
		a, b = b, a
	}
	result := a.Clone()
	for i, dim := range b {
		result[i] = max(result[i], dim)
	}
	return result
}
