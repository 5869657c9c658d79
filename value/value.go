// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package value

import (
	"fmt"

	"github.com/born-ml/arrays/internal/array"
)

// Type aliases for public API

// Element is a constraint for array element types.
// Supported types: float64, uint8, rune, Func.
type Element = array.Element

// Shape represents the dimensions of an array, outermost first.
// Example: Shape{2, 3} represents 2 rows of 3 elements.
type Shape = array.Shape

// Array is a typed n-dimensional array.
type Array[T Element] = array.Array[T]

// Func is an opaque function element.
type Func = array.Func

// Env is the evaluation context: fill values and parallelism settings.
// A nil *Env has no fill values and runs sequentially.
type Env = array.Env

// Error is a runtime failure raised by an operation.
type Error = array.Error

// ErrorKind classifies an Error.
type ErrorKind = array.Kind

// Error kinds.
const (
	ShapeMismatch ErrorKind = array.ShapeMismatch
	TypeMismatch  ErrorKind = array.TypeMismatch
	DomainError   ErrorKind = array.DomainError
	NoInverse     ErrorKind = array.NoInverse
)

// Sentinel errors matched by errors.Is.
var (
	ErrShapeMismatch     = array.ErrShapeMismatch
	ErrTypeMismatch      = array.ErrTypeMismatch
	ErrDomain            = array.ErrDomain
	ErrNoInverse         = array.ErrNoInverse
	ErrFillShapeMismatch = array.ErrFillShapeMismatch
)

// NewEnv returns an Env with no fill values and default parallelism.
func NewEnv() *Env {
	return array.NewEnv()
}

// WithFill returns a copy of env whose fill value for T is fill.
// Functions have no fill value.
func WithFill[T Element](env *Env, fill T) *Env {
	return array.WithFill(env, fill)
}

// WithoutFill returns a copy of env with T's fill value cleared.
func WithoutFill[T Element](env *Env) *Env {
	return array.WithoutFill[T](env)
}

// NewFunc creates a function element with the given identity.
func NewFunc(id uint64, name string) Func {
	return array.NewFunc(id, name)
}

// Kind is the element type of a Value.
type Kind int

// Element kinds.
const (
	KindNum Kind = iota
	KindByte
	KindChar
	KindFunc
)

// String returns the user-facing type name.
func (k Kind) String() string {
	switch k {
	case KindNum:
		return array.TypeName[float64]()
	case KindByte:
		return array.TypeName[uint8]()
	case KindChar:
		return array.TypeName[rune]()
	case KindFunc:
		return array.TypeName[Func]()
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Value is an array of numbers, bytes, characters or functions.
// Exactly one of the typed arrays is set, selected by kind.
//
// The zero Value is not usable; create Values with the constructors.
type Value struct {
	kind  Kind
	nums  *Array[float64]
	bytes *Array[uint8]
	chars *Array[rune]
	funcs *Array[Func]
}

// New creates a Value from a shape and its row-major data.
func New[T Element](shape Shape, data []T) (Value, error) {
	a, err := array.New(shape, data)
	if err != nil {
		return Value{}, err
	}
	return FromArray(a), nil
}

// FromArray wraps a typed array. The Value takes ownership of a.
func FromArray[T Element](a *Array[T]) Value {
	switch x := any(a).(type) {
	case *Array[float64]:
		return Value{kind: KindNum, nums: x}
	case *Array[uint8]:
		return Value{kind: KindByte, bytes: x}
	case *Array[rune]:
		return Value{kind: KindChar, chars: x}
	case *Array[Func]:
		return Value{kind: KindFunc, funcs: x}
	default:
		panic(fmt.Sprintf("unsupported array type %T", a))
	}
}

// As returns v's array if its elements have type T.
func As[T Element](v Value) (*Array[T], bool) {
	a, ok := v.shaped().(*Array[T])
	return a, ok
}

// Num creates a number scalar.
func Num(x float64) Value {
	return FromArray(array.Scalar(x))
}

// Nums creates a list of numbers.
func Nums(xs ...float64) Value {
	return FromArray(array.FromSlice(xs))
}

// Byte creates a byte scalar.
func Byte(x uint8) Value {
	return FromArray(array.Scalar(x))
}

// Bytes creates a list of bytes.
func Bytes(xs ...uint8) Value {
	return FromArray(array.FromSlice(xs))
}

// Char creates a character scalar.
func Char(r rune) Value {
	return FromArray(array.Scalar(r))
}

// String creates a list of the characters of s.
func String(s string) Value {
	return FromArray(array.FromSlice([]rune(s)))
}

// Funcs creates a list of functions.
func Funcs(fs ...Func) Value {
	return FromArray(array.FromSlice(fs))
}

// Kind returns the element type.
func (v Value) Kind() Kind {
	return v.kind
}

// TypeName returns the user-facing name of the element type.
func (v Value) TypeName() string {
	return v.kind.String()
}

// Shape returns the shape. The caller must not modify it.
func (v Value) Shape() Shape {
	return v.shaped().Shape()
}

// Rank returns the number of axes.
func (v Value) Rank() int {
	return v.shaped().Rank()
}

// FlatLen returns the number of elements.
func (v Value) FlatLen() int {
	return v.shaped().FlatLen()
}

// Equal reports whether v and w have the same type, shape and elements.
func (v Value) Equal(w Value) bool {
	if v.kind != w.kind {
		return false
	}
	switch v.kind {
	case KindNum:
		return v.nums.Equal(w.nums)
	case KindByte:
		return v.bytes.Equal(w.bytes)
	case KindChar:
		return v.chars.Equal(w.chars)
	default:
		return v.funcs.Equal(w.funcs)
	}
}

// String implements fmt.Stringer.
func (v Value) String() string {
	if v.kind == KindChar {
		return fmt.Sprintf("%v%q", v.chars.Shape(), string(v.chars.Data()))
	}
	return v.shaped().String()
}

// shaped is the part of the array API that does not depend on the element
// type.
type shaped interface {
	Shape() Shape
	Rank() int
	FlatLen() int
	String() string
	Deshape()
	Reverse()
	Transpose()
	InverseTranspose()
	Deduplicate()
	Rise(env *Env) ([]int, error)
	Fall(env *Env) ([]int, error)
	Classify(env *Env) ([]int, error)
}

func (v Value) shaped() shaped {
	switch v.kind {
	case KindNum:
		return v.nums
	case KindByte:
		return v.bytes
	case KindChar:
		return v.chars
	default:
		return v.funcs
	}
}

// clone returns a deep copy of v that operations may modify in place.
func (v Value) clone() Value {
	switch v.kind {
	case KindNum:
		return FromArray(v.nums.Clone())
	case KindByte:
		return FromArray(v.bytes.Clone())
	case KindChar:
		return FromArray(v.chars.Clone())
	default:
		return FromArray(v.funcs.Clone())
	}
}
