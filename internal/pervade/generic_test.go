package pervade

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/arrays/internal/array"
	"github.com/born-ml/arrays/internal/parallel"
)

func parallelConfig() parallel.Config {
	return parallel.Config{Enabled: true, NumWorkers: 4, MinChunkSize: 8}
}

func concat(a, b string, _ *array.Env) (string, error) {
	return a + b, nil
}

func TestInputs(t *testing.T) {
	e := Elems[int]{1, 2, 3}
	assert.Equal(t, 3, e.Len())
	assert.Equal(t, 1, e.Only())
	assert.Equal(t, []int{1, 2, 3}, e.Slice())

	s := Some(4)
	assert.Equal(t, 1, s.Len())
	assert.Equal(t, 4, s.Only())
	assert.Equal(t, []int{4}, s.Slice())

	n := None[int]()
	assert.Equal(t, 0, n.Len())
	assert.Nil(t, n.Slice())
}

func TestGeneric_SameShape(t *testing.T) {
	shape, out, err := Generic(array.Shape{2}, Elems[string]{"a", "b"}, array.Shape{2}, Elems[string]{"x", "y"}, seqEnv(), concat)
	require.NoError(t, err)
	assert.Equal(t, array.Shape{2}, shape)
	assert.Equal(t, []string{"ax", "by"}, out)
}

func TestGeneric_ScalarBroadcast(t *testing.T) {
	shape, out, err := Generic(array.Shape{}, Some("a"), array.Shape{3}, Elems[string]{"1", "2", "3"}, seqEnv(), concat)
	require.NoError(t, err)
	assert.Equal(t, array.Shape{3}, shape)
	assert.Equal(t, []string{"a1", "a2", "a3"}, out)

	shape, out, err = Generic(array.Shape{2}, Elems[string]{"1", "2"}, array.Shape{}, Some("z"), seqEnv(), concat)
	require.NoError(t, err)
	assert.Equal(t, array.Shape{2}, shape)
	assert.Equal(t, []string{"1z", "2z"}, out)

	shape, out, err = Generic(array.Shape{}, Some("p"), array.Shape{}, Some("q"), seqEnv(), concat)
	require.NoError(t, err)
	assert.Equal(t, array.Shape{}, shape)
	assert.Equal(t, []string{"pq"}, out)
}

func TestGeneric_ChunkedRecursion(t *testing.T) {
	a := Elems[string]{"a", "b"}
	b := Elems[string]{"1", "2", "3", "4", "5", "6"}

	shape, out, err := Generic(array.Shape{2}, a, array.Shape{2, 3}, b, seqEnv(), concat)
	require.NoError(t, err)
	assert.Equal(t, array.Shape{2, 3}, shape)
	assert.Equal(t, []string{"a1", "a2", "a3", "b4", "b5", "b6"}, out)

	shape, out, err = Generic(array.Shape{2, 3}, b, array.Shape{2}, a, seqEnv(), concat)
	require.NoError(t, err)
	assert.Equal(t, array.Shape{2, 3}, shape)
	assert.Equal(t, []string{"1a", "2a", "3a", "4b", "5b", "6b"}, out)

	c := Elems[string]{"p", "q", "r", "s"}
	d := Elems[string]{"1", "2", "3", "4", "5", "6", "7", "8"}
	shape, out, err = Generic(array.Shape{2, 2}, c, array.Shape{2, 2, 2}, d, seqEnv(), concat)
	require.NoError(t, err)
	assert.Equal(t, array.Shape{2, 2, 2}, shape)
	assert.Equal(t, []string{"p1", "p2", "q3", "q4", "r5", "r6", "s7", "s8"}, out)
}

func TestGeneric_NoFillRepair(t *testing.T) {
	_, _, err := Generic(array.Shape{2}, Elems[string]{"a", "b"}, array.Shape{3}, Elems[string]{"1", "2", "3"}, seqEnv(), concat)
	require.Error(t, err)
	assert.EqualError(t, err, "Shapes [2] and [3] do not match")
	assert.ErrorIs(t, err, array.ErrShapeMismatch)
	assert.NotErrorIs(t, err, array.ErrFillShapeMismatch)

	_, _, err = Generic(array.Shape{2, 2}, Elems[string]{"a", "b", "c", "d"}, array.Shape{2, 3}, Elems[string]{"1", "2", "3", "4", "5", "6"}, seqEnv(), concat)
	assert.EqualError(t, err, "Shapes [2] and [3] do not match")
}

func TestGeneric_EmptyAxis(t *testing.T) {
	shape, out, err := Generic(array.Shape{2}, Elems[string]{"a", "b"}, array.Shape{2, 0}, Elems[string]{}, seqEnv(), concat)
	require.NoError(t, err)
	assert.Equal(t, array.Shape{2, 0}, shape)
	assert.Empty(t, out)
}

func TestGeneric_ErrorPropagates(t *testing.T) {
	f := func(a, b int, env *array.Env) (int, error) {
		if b == 0 {
			return 0, env.Errorf(array.DomainError, "division by zero")
		}
		return a / b, nil
	}
	_, _, err := Generic(array.Shape{3}, Elems[int]{4, 5, 6}, array.Shape{3}, Elems[int]{2, 0, 3}, seqEnv(), f)
	assert.EqualError(t, err, "division by zero")
	assert.ErrorIs(t, err, array.ErrDomain)
}
