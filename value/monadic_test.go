// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package value_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/arrays/value"
)

func matrix(t *testing.T) value.Value {
	t.Helper()
	return mustNew(t, value.Shape{2, 3}, []float64{1, 2, 3, 4, 5, 6})
}

func TestUnary(t *testing.T) {
	env := value.NewEnv()

	got, err := value.Neg(value.Bytes(1, 2), env)
	require.NoError(t, err)
	assert.True(t, value.Nums(-1, -2).Equal(got), "got %v", got)

	got, err = value.Abs(value.Bytes(3), env)
	require.NoError(t, err)
	assert.Equal(t, value.KindByte, got.Kind())

	got, err = value.Not(value.Bytes(0, 1), env)
	require.NoError(t, err)
	assert.True(t, value.Nums(1, 0).Equal(got), "got %v", got)

	got, err = value.Round(value.Nums(2.5, -0.4), env)
	require.NoError(t, err)
	assert.True(t, value.Nums(3, 0).Equal(got), "got %v", got)

	got, err = value.Sqrt(matrix(t), env)
	require.NoError(t, err)
	assert.Equal(t, value.Shape{2, 3}, got.Shape())

	_, err = value.Sqrt(value.String("a"), env)
	assert.EqualError(t, err, "Cannot take the square root of character")
	assert.ErrorIs(t, err, value.ErrTypeMismatch)

	_, err = value.Floor(value.Funcs(value.NewFunc(1, "f")), env)
	assert.EqualError(t, err, "Cannot get the floor of function")
}

func TestUnary_AllOps(t *testing.T) {
	ops := map[string]func(value.Value, *value.Env) (value.Value, error){
		"not": value.Not, "neg": value.Neg, "abs": value.Abs, "sign": value.Sign,
		"sqrt": value.Sqrt, "sin": value.Sin, "cos": value.Cos, "tan": value.Tan,
		"asin": value.Asin, "acos": value.Acos, "floor": value.Floor,
		"ceil": value.Ceil, "round": value.Round,
	}
	for name, op := range ops {
		t.Run(name, func(t *testing.T) {
			for _, v := range []value.Value{value.Nums(0, 1), value.Bytes(0, 1)} {
				got, err := op(v, nil)
				require.NoError(t, err)
				assert.Equal(t, value.Shape{2}, got.Shape())
			}
			_, err := op(value.String("x"), nil)
			assert.ErrorIs(t, err, value.ErrTypeMismatch)
		})
	}
}

func TestDeshape(t *testing.T) {
	m := matrix(t)
	got := value.Deshape(m)
	assert.Equal(t, value.Shape{6}, got.Shape())
	assert.Equal(t, value.Shape{2, 3}, m.Shape())

	assert.Equal(t, value.Shape{1}, value.Deshape(value.Num(4)).Shape())
}

func TestFirstLast(t *testing.T) {
	m := matrix(t)
	first, err := value.First(m, nil)
	require.NoError(t, err)
	assert.True(t, value.Nums(1, 2, 3).Equal(first))

	last, err := value.Last(m, nil)
	require.NoError(t, err)
	assert.True(t, value.Nums(4, 5, 6).Equal(last))

	c, err := value.Last(value.String("abc"), nil)
	require.NoError(t, err)
	assert.True(t, value.Char('c').Equal(c))

	_, err = value.First(value.Num(1), nil)
	assert.EqualError(t, err, "Cannot take first of a scalar")
	_, err = value.Last(value.Nums(), nil)
	assert.EqualError(t, err, "Cannot take last of an empty array")
}

func TestReverse(t *testing.T) {
	m := matrix(t)
	got := value.Reverse(m)
	want := mustNew(t, value.Shape{2, 3}, []float64{4, 5, 6, 1, 2, 3})
	assert.True(t, want.Equal(got), "got %v", got)
	assert.True(t, matrix(t).Equal(m), "input modified")

	assert.True(t, value.String("cba").Equal(value.Reverse(value.String("abc"))))
	assert.True(t, value.Num(7).Equal(value.Reverse(value.Num(7))))
}

func TestTranspose(t *testing.T) {
	m := matrix(t)
	got := value.Transpose(m)
	want := mustNew(t, value.Shape{3, 2}, []float64{1, 4, 2, 5, 3, 6})
	assert.True(t, want.Equal(got), "got %v", got)
	assert.True(t, m.Equal(value.InverseTranspose(got)))
}

func TestRange(t *testing.T) {
	got, err := value.Range(value.Nums(2, 3), nil)
	require.NoError(t, err)
	want := mustNew(t, value.Shape{2, 3, 2}, []float64{0, 0, 0, 1, 0, 2, 1, 0, 1, 1, 1, 2})
	assert.True(t, want.Equal(got), "got %v", got)

	got, err = value.Range(value.Num(5), nil)
	require.NoError(t, err)
	assert.True(t, value.Nums(0, 1, 2, 3, 4).Equal(got), "got %v", got)

	got, err = value.Range(value.Byte(3), nil)
	require.NoError(t, err)
	assert.True(t, value.Nums(0, 1, 2).Equal(got), "got %v", got)

	got, err = value.Range(value.Nums(), nil)
	require.NoError(t, err)
	assert.True(t, value.Num(0).Equal(got), "got %v", got)

	got, err = value.Range(value.Nums(2, 0), nil)
	require.NoError(t, err)
	assert.Equal(t, value.Shape{2, 0, 2}, got.Shape())
}

func TestRange_Errors(t *testing.T) {
	const msg = "Range max should be a single natural number or a list of natural numbers"
	for _, v := range []value.Value{
		value.Num(-1),
		value.Num(2.5),
		value.Num(math.NaN()),
		value.Num(math.Inf(1)),
		matrix(t),
	} {
		_, err := value.Range(v, nil)
		assert.EqualError(t, err, msg, "range of %v", v)
		assert.ErrorIs(t, err, value.ErrDomain)
	}

	var err error
	require.NotPanics(t, func() { _, err = value.Range(value.Nums(1<<30, 1<<30), nil) })
	assert.ErrorIs(t, err, value.ErrDomain)
	assert.Contains(t, err.Error(), "which is too large")

	_, err = value.Range(value.String("a"), nil)
	assert.EqualError(t, err, msg)
	assert.ErrorIs(t, err, value.ErrTypeMismatch)
}

func TestRiseFall(t *testing.T) {
	v := value.Nums(3, 1, 2, 1)
	rise, err := value.Rise(v, nil)
	require.NoError(t, err)
	assert.True(t, value.Nums(1, 3, 2, 0).Equal(rise), "got %v", rise)

	fall, err := value.Fall(v, nil)
	require.NoError(t, err)
	assert.True(t, value.Nums(0, 2, 1, 3).Equal(fall), "got %v", fall)

	rise, err = value.Rise(value.String("cab"), nil)
	require.NoError(t, err)
	assert.True(t, value.Nums(1, 2, 0).Equal(rise), "got %v", rise)

	_, err = value.Rise(value.Num(1), nil)
	assert.EqualError(t, err, "Cannot rise a scalar")
	_, err = value.Fall(value.Char('a'), nil)
	assert.EqualError(t, err, "Cannot fall a scalar")
}

func TestClassifyDeduplicate(t *testing.T) {
	v := value.Nums(1, 2, 1, 3, 2)
	assert.True(t, value.Nums(1, 2, 3).Equal(value.Deduplicate(v)))
	assert.True(t, value.Nums(1, 2, 1, 3, 2).Equal(v), "input modified")

	classes, err := value.Classify(value.String("abca"), nil)
	require.NoError(t, err)
	assert.True(t, value.Nums(0, 1, 2, 0).Equal(classes), "got %v", classes)

	rows := mustNew(t, value.Shape{3, 2}, []uint8{1, 0, 0, 1, 1, 0})
	want := mustNew(t, value.Shape{2, 2}, []uint8{1, 0, 0, 1})
	assert.True(t, want.Equal(value.Deduplicate(rows)))

	_, err = value.Classify(value.Num(1), nil)
	assert.EqualError(t, err, "Cannot classify a rank-0 array")
}

func TestBits(t *testing.T) {
	got, err := value.Bits(value.Nums(5), nil)
	require.NoError(t, err)
	want := mustNew(t, value.Shape{1, 3}, []uint8{1, 0, 1})
	assert.True(t, want.Equal(got), "got %v", got)

	back, err := value.InverseBits(got, nil)
	require.NoError(t, err)
	assert.True(t, value.Nums(5).Equal(back), "got %v", back)

	fromBytes, err := value.Bits(value.Bytes(5), nil)
	require.NoError(t, err)
	assert.True(t, want.Equal(fromBytes))

	n, err := value.InverseBits(value.Nums(1, 0, 1), nil)
	require.NoError(t, err)
	assert.True(t, value.Num(5).Equal(n), "got %v", n)

	_, err = value.Bits(value.Nums(1.5), nil)
	assert.EqualError(t, err, "Array must be a list of naturals")
	_, err = value.InverseBits(value.Nums(2), nil)
	assert.EqualError(t, err, "Array must be a list of booleans")
	_, err = value.Bits(value.String("a"), nil)
	assert.EqualError(t, err, "Argument to bits must be an array of natural numbers")
	_, err = value.InverseBits(value.String("a"), nil)
	assert.EqualError(t, err, "Argument to inverse_bits must be an array of naturals")
}

func TestInverseBits_SaturatesNumbers(t *testing.T) {
	// Negative numbers and NaN cast to 0, fractions truncate.
	n, err := value.InverseBits(value.Nums(-3, math.NaN(), 1.9), nil)
	require.NoError(t, err)
	assert.True(t, value.Num(4).Equal(n), "got %v", n)

	_, err = value.InverseBits(value.Nums(1000), nil)
	assert.ErrorIs(t, err, value.ErrDomain)
}

func TestParseNum(t *testing.T) {
	got, err := value.ParseNum(value.String("3.5"), nil)
	require.NoError(t, err)
	assert.True(t, value.Num(3.5).Equal(got))

	got, err = value.ParseNum(value.String("-1e3"), nil)
	require.NoError(t, err)
	assert.True(t, value.Num(-1000).Equal(got))

	_, err = value.ParseNum(value.String("abc"), nil)
	assert.EqualError(t, err, "Cannot parse into number: invalid syntax")

	_, err = value.ParseNum(value.Num(1), nil)
	assert.EqualError(t, err, "Parsed array must be a string")
}

func TestInvert(t *testing.T) {
	f, g := value.NewFunc(1, "f"), value.NewFunc(2, "g")
	f = f.WithInverse(g)

	got, err := value.Invert(value.Funcs(f, f), nil)
	require.NoError(t, err)
	assert.True(t, value.Funcs(g, g).Equal(got), "got %v", got)

	_, err = value.Invert(value.Funcs(f, g), nil)
	assert.EqualError(t, err, "No inverse found")
	assert.ErrorIs(t, err, value.ErrNoInverse)

	_, err = value.Invert(value.Num(1), nil)
	assert.EqualError(t, err, "Cannot invert number")
}
