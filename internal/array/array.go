// Package array provides the array value type of the runtime together with
// its rank-polymorphic shape algorithms.
//
// An Array[T] is a flat, row-major buffer plus a Shape. The product of the
// shape always equals the buffer length. Rows are contiguous sub-slices of
// the buffer along the leading axis.
package array

import (
	"fmt"
	"iter"
)

// Arrayish is anything that exposes a shape and its flat data. Both owned
// arrays and borrowed views satisfy it, so recursive algorithms can walk
// sub-arrays without copying.
type Arrayish[T Element] interface {
	Shape() Shape
	Data() []T
}

// Array is an owned n-dimensional array.
type Array[T Element] struct {
	shape Shape
	data  []T
}

// New creates an array that takes ownership of data. The shape is copied.
func New[T Element](shape Shape, data []T) (*Array[T], error) {
	if shape.NumElements() != len(data) {
		return nil, fmt.Errorf("shape %v requires %d elements, but got %d", shape, shape.NumElements(), len(data))
	}
	for i, dim := range shape {
		if dim < 0 {
			return nil, fmt.Errorf("invalid dimension at index %d: %d (must be >= 0)", i, dim)
		}
	}
	return &Array[T]{shape: shape.Clone(), data: data}, nil
}

// MustNew is like New but panics on a shape/data mismatch.
// It is intended for literals and tests.
func MustNew[T Element](shape Shape, data []T) *Array[T] {
	a, err := New(shape, data)
	if err != nil {
		panic(err)
	}
	return a
}

// Scalar creates a rank-0 array.
func Scalar[T Element](v T) *Array[T] {
	return &Array[T]{shape: Shape{}, data: []T{v}}
}

// FromSlice creates a rank-1 array. The slice is copied.
func FromSlice[T Element](values []T) *Array[T] {
	data := make([]T, len(values))
	copy(data, values)
	return &Array[T]{shape: Shape{len(values)}, data: data}
}

// Shape returns the array's shape. The caller must not modify it.
func (a *Array[T]) Shape() Shape {
	return a.shape
}

// Data returns the flat row-major buffer.
//
// WARNING: Modifications to the returned slice will modify the array.
func (a *Array[T]) Data() []T {
	return a.data
}

// Rank returns the number of axes.
func (a *Array[T]) Rank() int {
	return len(a.shape)
}

// FlatLen returns the number of elements.
func (a *Array[T]) FlatLen() int {
	return len(a.data)
}

// RowCount returns the length of the leading axis (1 for a scalar).
func (a *Array[T]) RowCount() int {
	return a.shape.RowCount()
}

// RowLen returns the number of elements in each row.
func (a *Array[T]) RowLen() int {
	return a.shape.RowLen()
}

// Row returns row i as a borrowed view.
func (a *Array[T]) Row(i int) View[T] {
	return ViewOf[T](a).Row(i)
}

// Rows iterates over the rows of the array.
func (a *Array[T]) Rows() iter.Seq2[int, View[T]] {
	return ViewOf[T](a).Rows()
}

// Clone returns a deep copy of the array.
func (a *Array[T]) Clone() *Array[T] {
	data := make([]T, len(a.data))
	copy(data, a.data)
	return &Array[T]{shape: a.shape.Clone(), data: data}
}

// Validate checks the shape/data invariant.
func (a *Array[T]) Validate() error {
	if a.shape.NumElements() != len(a.data) {
		return fmt.Errorf("shape %v requires %d elements, but array holds %d", a.shape, a.shape.NumElements(), len(a.data))
	}
	return nil
}

// Equal reports whether a and b have equal shapes and equal elements under
// the total element order.
func (a *Array[T]) Equal(b *Array[T]) bool {
	return a.shape.Equal(b.shape) && len(a.data) == len(b.data) && CompareRows(a.data, b.data) == 0
}

// String implements fmt.Stringer.
func (a *Array[T]) String() string {
	return fmt.Sprintf("%v%v", a.shape, a.data)
}

// View is a borrowed (shape, data) pair. It shares its backing slice with
// the array it was taken from.
type View[T Element] struct {
	shape Shape
	data  []T
}

// ViewOf returns a view over any Arrayish value.
func ViewOf[T Element](a Arrayish[T]) View[T] {
	return View[T]{shape: a.Shape(), data: a.Data()}
}

// Shape returns the view's shape.
func (v View[T]) Shape() Shape {
	return v.shape
}

// Data returns the view's elements.
func (v View[T]) Data() []T {
	return v.data
}

// Rank returns the number of axes.
func (v View[T]) Rank() int {
	return len(v.shape)
}

// FlatLen returns the number of elements.
func (v View[T]) FlatLen() int {
	return len(v.data)
}

// RowLen returns the number of elements in each row.
func (v View[T]) RowLen() int {
	return v.shape.RowLen()
}

// RowCount returns the length of the leading axis (1 for a scalar).
func (v View[T]) RowCount() int {
	return v.shape.RowCount()
}

// Row returns row i. The view must have rank >= 1.
func (v View[T]) Row(i int) View[T] {
	n := v.RowLen()
	return View[T]{shape: v.shape[1:], data: v.data[i*n : (i+1)*n]}
}

// Rows iterates over the rows of the view. The sequence is finite and may
// be ranged over any number of times. A scalar yields nothing.
func (v View[T]) Rows() iter.Seq2[int, View[T]] {
	return func(yield func(int, View[T]) bool) {
		if len(v.shape) == 0 {
			return
		}
		for i := range v.shape[0] {
			if !yield(i, v.Row(i)) {
				return
			}
		}
	}
}

// PrefixesMatch reports whether the shapes of a and b agree over their
// common leading axes.
func PrefixesMatch[A, B Element](a Arrayish[A], b Arrayish[B]) bool {
	return a.Shape().PrefixesMatch(b.Shape())
}
