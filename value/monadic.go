// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package value

import (
	"errors"
	"math"
	"strconv"

	"github.com/born-ml/arrays/internal/array"
	"github.com/born-ml/arrays/internal/pervade"
)

func unary[B float64 | uint8](op pervade.UnaryOp[B], v Value, env *Env) (Value, error) {
	switch v.kind {
	case KindNum:
		return FromArray(pervade.Map(v.nums, env, op.Num)), nil
	case KindByte:
		return FromArray(pervade.Map(v.bytes, env, op.Byte)), nil
	}
	return Value{}, op.Error(v.TypeName(), env)
}

// Not computes 1 - x.
func Not(v Value, env *Env) (Value, error) { return unary(pervade.Not, v, env) }

// Neg negates every element.
func Neg(v Value, env *Env) (Value, error) { return unary(pervade.Neg, v, env) }

// Abs takes the absolute value of every element.
func Abs(v Value, env *Env) (Value, error) { return unary(pervade.Abs, v, env) }

// Sign maps every element to -1, 0 or 1.
func Sign(v Value, env *Env) (Value, error) { return unary(pervade.Sign, v, env) }

// Sqrt takes the square root of every element.
func Sqrt(v Value, env *Env) (Value, error) { return unary(pervade.Sqrt, v, env) }

// Sin takes the sine of every element.
func Sin(v Value, env *Env) (Value, error) { return unary(pervade.Sin, v, env) }

// Cos takes the cosine of every element.
func Cos(v Value, env *Env) (Value, error) { return unary(pervade.Cos, v, env) }

// Tan takes the tangent of every element.
func Tan(v Value, env *Env) (Value, error) { return unary(pervade.Tan, v, env) }

// Asin takes the arcsine of every element.
func Asin(v Value, env *Env) (Value, error) { return unary(pervade.Asin, v, env) }

// Acos takes the arccosine of every element.
func Acos(v Value, env *Env) (Value, error) { return unary(pervade.Acos, v, env) }

// Floor rounds every element down.
func Floor(v Value, env *Env) (Value, error) { return unary(pervade.Floor, v, env) }

// Ceil rounds every element up.
func Ceil(v Value, env *Env) (Value, error) { return unary(pervade.Ceil, v, env) }

// Round rounds every element to the nearest integer, halves away from zero.
func Round(v Value, env *Env) (Value, error) { return unary(pervade.Round, v, env) }

// Deshape flattens v to a list of its elements.
func Deshape(v Value) Value {
	out := v.clone()
	out.shaped().Deshape()
	return out
}

// Reverse reverses the order of v's rows. Scalars are returned unchanged.
func Reverse(v Value) Value {
	out := v.clone()
	out.shaped().Reverse()
	return out
}

// Transpose moves the leading axis of v to the end.
func Transpose(v Value) Value {
	out := v.clone()
	out.shaped().Transpose()
	return out
}

// InverseTranspose moves the trailing axis of v to the front.
func InverseTranspose(v Value) Value {
	out := v.clone()
	out.shaped().InverseTranspose()
	return out
}

// Deduplicate keeps the first occurrence of each distinct row of v.
func Deduplicate(v Value) Value {
	out := v.clone()
	out.shaped().Deduplicate()
	return out
}

// Rise returns the indices that would sort v's rows ascending.
func Rise(v Value, env *Env) (Value, error) {
	return indices(v.shaped().Rise(env))
}

// Fall returns the indices that would sort v's rows descending.
func Fall(v Value, env *Env) (Value, error) {
	return indices(v.shaped().Fall(env))
}

// Classify numbers v's distinct rows in order of first appearance and
// returns the class of every row.
func Classify(v Value, env *Env) (Value, error) {
	return indices(v.shaped().Classify(env))
}

func indices(is []int, err error) (Value, error) {
	if err != nil {
		return Value{}, err
	}
	nums := make([]float64, len(is))
	for i, n := range is {
		nums[i] = float64(n)
	}
	return New(Shape{len(nums)}, nums)
}

// First returns the first row of v.
func First(v Value, env *Env) (Value, error) {
	switch v.kind {
	case KindNum:
		return wrap(v.nums.First(env))
	case KindByte:
		return wrap(v.bytes.First(env))
	case KindChar:
		return wrap(v.chars.First(env))
	default:
		return wrap(v.funcs.First(env))
	}
}

// Last returns the last row of v.
func Last(v Value, env *Env) (Value, error) {
	switch v.kind {
	case KindNum:
		return wrap(v.nums.Last(env))
	case KindByte:
		return wrap(v.bytes.Last(env))
	case KindChar:
		return wrap(v.chars.Last(env))
	default:
		return wrap(v.funcs.Last(env))
	}
}

func wrap[T Element](a *Array[T], err error) (Value, error) {
	if err != nil {
		return Value{}, err
	}
	return FromArray(a), nil
}

// Range enumerates the multi-indices of the shape given by v, a natural
// number or a list of naturals. Range(5) is [0 1 2 3 4]; Range([2 3]) is a
// [2 × 3 × 2] array of index pairs.
func Range(v Value, env *Env) (Value, error) {
	shape, err := naturals(v, env, "Range max should be a single natural number or a list of natural numbers")
	if err != nil {
		return Value{}, err
	}
	return wrap(array.Range(shape, env))
}

// naturals reads a number or byte scalar or list as natural numbers.
func naturals(v Value, env *Env, requirement string) (Shape, error) {
	if v.Rank() > 1 {
		return nil, env.Errorf(DomainError, "%s", requirement)
	}
	switch v.kind {
	case KindByte:
		nats := make(Shape, len(v.bytes.Data()))
		for i, b := range v.bytes.Data() {
			nats[i] = int(b)
		}
		return nats, nil
	case KindNum:
		nats := make(Shape, len(v.nums.Data()))
		for i, n := range v.nums.Data() {
			if n < 0 || n != math.Trunc(n) || n >= math.MaxInt {
				return nil, env.Errorf(DomainError, "%s", requirement)
			}
			nats[i] = int(n)
		}
		return nats, nil
	}
	return nil, env.Errorf(TypeMismatch, "%s", requirement)
}

// Bits expands every natural number of v into its binary digits along a
// new trailing axis, least significant bit first.
func Bits(v Value, env *Env) (Value, error) {
	switch v.kind {
	case KindNum:
		return wrap(array.Bits(v.nums, env))
	case KindByte:
		return wrap(array.Bits(widen(v, env).nums, env))
	}
	return Value{}, env.Errorf(TypeMismatch, "Argument to bits must be an array of natural numbers")
}

// InverseBits rebuilds natural numbers from the digit rows produced by
// Bits. Numbers are cast to bytes first, saturating at 0 and 255.
func InverseBits(v Value, env *Env) (Value, error) {
	switch v.kind {
	case KindByte:
		return wrap(array.InverseBits(v.bytes, env))
	case KindNum:
		return wrap(array.InverseBits(pervade.Map(v.nums, env, saturateByte), env))
	}
	return Value{}, env.Errorf(TypeMismatch, "Argument to inverse_bits must be an array of naturals")
}

// saturateByte truncates toward zero and clamps to the byte range. NaN
// becomes 0.
func saturateByte(x float64) uint8 {
	switch {
	case math.IsNaN(x) || x <= 0:
		return 0
	case x >= math.MaxUint8:
		return math.MaxUint8
	default:
		return uint8(x)
	}
}

// ParseNum parses a string into a number scalar.
func ParseNum(v Value, env *Env) (Value, error) {
	if v.kind != KindChar || v.Rank() != 1 {
		return Value{}, env.Errorf(TypeMismatch, "Parsed array must be a string")
	}
	n, err := strconv.ParseFloat(string(v.chars.Data()), 64)
	if err != nil {
		var numErr *strconv.NumError
		if errors.As(err, &numErr) {
			err = numErr.Err
		}
		return Value{}, env.Errorf(DomainError, "Cannot parse into number: %v", err)
	}
	return Num(n), nil
}

// Invert replaces every function of v by its inverse.
func Invert(v Value, env *Env) (Value, error) {
	if v.kind != KindFunc {
		return Value{}, env.Errorf(TypeMismatch, "Cannot invert %s", v.TypeName())
	}
	invs := make([]Func, len(v.funcs.Data()))
	for i, f := range v.funcs.Data() {
		inv, ok := f.Inverse()
		if !ok {
			return Value{}, env.Errorf(NoInverse, "No inverse found")
		}
		invs[i] = inv
	}
	return New(v.Shape().Clone(), invs)
}
