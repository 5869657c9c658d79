// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package value

import (
	"github.com/born-ml/arrays/internal/array"
	"github.com/born-ml/arrays/internal/pervade"
)

// Binary operations take their operands in stack order: a is the modifier
// and b the receiver, so Sub(a, b) computes b - a.

type kinds struct{ a, b Kind }

var (
	numNum   = kinds{KindNum, KindNum}
	numByte  = kinds{KindNum, KindByte}
	numChar  = kinds{KindNum, KindChar}
	byteNum  = kinds{KindByte, KindNum}
	byteByte = kinds{KindByte, KindByte}
	byteChar = kinds{KindByte, KindChar}
	charNum  = kinds{KindChar, KindNum}
	charByte = kinds{KindChar, KindByte}
	charChar = kinds{KindChar, KindChar}
	funcFunc = kinds{KindFunc, KindFunc}
)

func pair(a, b Value) kinds {
	return kinds{a.kind, b.kind}
}

func bin[A, B, C Element](a *Array[A], b *Array[B], env *Env, f func(A, B) C) (Value, error) {
	out, err := pervade.Bin(a, b, env, pervade.Infallible(f))
	if err != nil {
		return Value{}, err
	}
	return FromArray(out), nil
}

// arith dispatches the four number/byte pairs shared by every arithmetic
// kernel table.
type arith interface {
	NumNum(a, b float64) float64
	ByteByte(a, b uint8) float64
	ByteNum(a uint8, b float64) float64
	NumByte(a float64, b uint8) float64
	Error(a, b string, env *Env) error
}

func arithmetic(op arith, a, b Value, env *Env) (Value, error) {
	switch pair(a, b) {
	case numNum:
		return bin(a.nums, b.nums, env, op.NumNum)
	case byteByte:
		return bin(a.bytes, b.bytes, env, op.ByteByte)
	case byteNum:
		return bin(a.bytes, b.nums, env, op.ByteNum)
	case numByte:
		return bin(a.nums, b.bytes, env, op.NumByte)
	}
	return Value{}, op.Error(a.TypeName(), b.TypeName(), env)
}

// Add adds numbers, or moves characters by a number of code points.
func Add(a, b Value, env *Env) (Value, error) {
	op := pervade.Add
	switch pair(a, b) {
	case numChar:
		return bin(a.nums, b.chars, env, op.NumChar)
	case charNum:
		return bin(a.chars, b.nums, env, op.CharNum)
	case byteChar:
		return bin(a.bytes, b.chars, env, op.ByteChar)
	case charByte:
		return bin(a.chars, b.bytes, env, op.CharByte)
	}
	return arithmetic(op, a, b, env)
}

// Sub subtracts a from b. Subtracting a character from a character gives
// the distance between their code points.
func Sub(a, b Value, env *Env) (Value, error) {
	op := pervade.Sub
	switch pair(a, b) {
	case numChar:
		return bin(a.nums, b.chars, env, op.NumChar)
	case byteChar:
		return bin(a.bytes, b.chars, env, op.ByteChar)
	case charChar:
		return bin(a.chars, b.chars, env, op.CharChar)
	}
	return arithmetic(op, a, b, env)
}

// Mul multiplies a and b.
func Mul(a, b Value, env *Env) (Value, error) {
	return arithmetic(pervade.Mul, a, b, env)
}

// Div divides b by a.
func Div(a, b Value, env *Env) (Value, error) {
	return arithmetic(pervade.Div, a, b, env)
}

// Mod takes b modulo a. The result has the sign of a.
func Mod(a, b Value, env *Env) (Value, error) {
	return arithmetic(pervade.Mod, a, b, env)
}

// Pow raises b to the power a.
func Pow(a, b Value, env *Env) (Value, error) {
	return arithmetic(pervade.Pow, a, b, env)
}

// Log takes the logarithm of b in base a.
func Log(a, b Value, env *Env) (Value, error) {
	return arithmetic(pervade.Log, a, b, env)
}

// Atan2 computes the two-argument arctangent atan2(a, b). Bytes are
// treated as numbers.
func Atan2(a, b Value, env *Env) (Value, error) {
	a, b = widen(a, env), widen(b, env)
	if pair(a, b) == numNum {
		return bin(a.nums, b.nums, env, pervade.Atan2.NumNum)
	}
	return Value{}, pervade.Atan2.Error(a.TypeName(), b.TypeName(), env)
}

// widen converts a byte array to a number array.
func widen(v Value, env *Env) Value {
	if v.kind != KindByte {
		return v
	}
	return FromArray(pervade.Map(v.bytes, env, func(x uint8) float64 { return float64(x) }))
}

// Max keeps the larger of each pair of elements.
func Max(a, b Value, env *Env) (Value, error) {
	op := pervade.Max
	switch pair(a, b) {
	case numNum:
		return bin(a.nums, b.nums, env, op.NumNum)
	case byteByte:
		return bin(a.bytes, b.bytes, env, op.ByteByte)
	case charChar:
		return bin(a.chars, b.chars, env, op.CharChar)
	case numByte:
		return bin(a.nums, b.bytes, env, op.NumByte)
	case byteNum:
		return bin(a.bytes, b.nums, env, op.ByteNum)
	}
	return Value{}, op.Error(a.TypeName(), b.TypeName(), env)
}

// Min keeps the smaller of each pair of elements.
func Min(a, b Value, env *Env) (Value, error) {
	op := pervade.Min
	switch pair(a, b) {
	case numNum:
		return bin(a.nums, b.nums, env, op.NumNum)
	case byteByte:
		return bin(a.bytes, b.bytes, env, op.ByteByte)
	case charChar:
		return bin(a.chars, b.chars, env, op.CharChar)
	case numByte:
		return bin(a.nums, b.bytes, env, op.NumByte)
	case byteNum:
		return bin(a.bytes, b.nums, env, op.ByteNum)
	}
	return Value{}, op.Error(a.TypeName(), b.TypeName(), env)
}

// Eq tests whether b equals a. Comparisons give byte arrays of 0 and 1.
func Eq(a, b Value, env *Env) (Value, error) { return compare(pervade.Eq, a, b, env) }

// Ne tests whether b differs from a.
func Ne(a, b Value, env *Env) (Value, error) { return compare(pervade.Ne, a, b, env) }

// Lt tests whether b is less than a.
func Lt(a, b Value, env *Env) (Value, error) { return compare(pervade.Lt, a, b, env) }

// Le tests whether b is at most a.
func Le(a, b Value, env *Env) (Value, error) { return compare(pervade.Le, a, b, env) }

// Gt tests whether b is greater than a.
func Gt(a, b Value, env *Env) (Value, error) { return compare(pervade.Gt, a, b, env) }

// Ge tests whether b is at least a.
func Ge(a, b Value, env *Env) (Value, error) { return compare(pervade.Ge, a, b, env) }

// compare applies a comparison kernel. Elements of different types are
// ordered by type: numbers and bytes, then characters, then functions.
func compare(c pervade.Comparison, a, b Value, env *Env) (Value, error) {
	switch pair(a, b) {
	case numNum:
		return bin(a.nums, b.nums, env, c.NumNum)
	case byteNum:
		return bin(a.bytes, b.nums, env, c.ByteNum)
	case numByte:
		return bin(a.nums, b.bytes, env, c.NumByte)
	case byteByte:
		return bin(a.bytes, b.bytes, env, pervade.Same[uint8](c))
	case charChar:
		return bin(a.chars, b.chars, env, pervade.Same[rune](c))
	case funcFunc:
		return compareFuncs(c, a.funcs, b.funcs, env)
	}
	greater := typeRank(a.kind) > typeRank(b.kind)
	switch a.kind {
	case KindNum:
		return mixed(c, a.nums, b, env, greater)
	case KindByte:
		return mixed(c, a.bytes, b, env, greater)
	case KindChar:
		return mixed(c, a.chars, b, env, greater)
	default:
		return mixed(c, a.funcs, b, env, greater)
	}
}

func typeRank(k Kind) int {
	switch k {
	case KindNum, KindByte:
		return 0
	case KindChar:
		return 1
	default:
		return 2
	}
}

// mixed compares arrays whose element types never compare equal. Only the
// type order decides the result, but the shapes still pervade.
func mixed[A Element](c pervade.Comparison, a *Array[A], b Value, env *Env, greater bool) (Value, error) {
	switch b.kind {
	case KindNum:
		return bin(a, b.nums, env, always[A, float64](c, greater))
	case KindByte:
		return bin(a, b.bytes, env, always[A, uint8](c, greater))
	case KindChar:
		return bin(a, b.chars, env, always[A, rune](c, greater))
	default:
		return bin(a, b.funcs, env, always[A, Func](c, greater))
	}
}

func always[A, B Element](c pervade.Comparison, greater bool) func(A, B) uint8 {
	if greater {
		return pervade.AlwaysGreater[A, B](c)
	}
	return pervade.AlwaysLess[A, B](c)
}

// compareFuncs compares function arrays. Functions have no fill value, so
// their shapes must agree exactly.
func compareFuncs(c pervade.Comparison, a, b *Array[Func], env *Env) (Value, error) {
	same := pervade.Same[Func](c)
	shape, out, err := pervade.Generic(
		a.Shape(), pervade.Elems[Func](a.Data()),
		b.Shape(), pervade.Elems[Func](b.Data()),
		env,
		func(x, y Func, _ *array.Env) (uint8, error) { return same(x, y), nil },
	)
	if err != nil {
		return Value{}, err
	}
	return New(shape, out)
}
