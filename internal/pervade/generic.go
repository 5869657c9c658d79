package pervade

import "github.com/born-ml/arrays/internal/array"

// Input is an operand of the generic engine: a run of elements that is
// either a full sequence or a single optional scalar.
type Input[T any] interface {
	// Len returns the number of elements.
	Len() int
	// Only returns the first element. It is used when the operand is a
	// scalar being broadcast.
	Only() T
	// Slice returns the elements as a slice.
	Slice() []T
}

// Elems is an Input over a slice. Owned and borrowed slices are the same
// thing in Go.
type Elems[T any] []T

// Len implements Input.
func (e Elems[T]) Len() int { return len(e) }

// Only implements Input.
func (e Elems[T]) Only() T { return e[0] }

// Slice implements Input.
func (e Elems[T]) Slice() []T { return e }

// Optional is an Input holding zero or one element.
type Optional[T any] struct {
	value T
	ok    bool
}

// Some returns an Optional holding v.
func Some[T any](v T) Optional[T] {
	return Optional[T]{value: v, ok: true}
}

// None returns an empty Optional.
func None[T any]() Optional[T] {
	return Optional[T]{}
}

// Len implements Input.
func (o Optional[T]) Len() int {
	if o.ok {
		return 1
	}
	return 0
}

// Only implements Input. An empty Optional yields the zero value.
func (o Optional[T]) Only() T { return o.value }

// Slice implements Input.
func (o Optional[T]) Slice() []T {
	if !o.ok {
		return nil
	}
	return []T{o.value}
}

// Generic applies f element-wise over operands whose element type has no
// fill value. Scalars broadcast; otherwise leading axes must agree exactly
// at every level. Shape mismatches are hard errors here, never repaired.
//
// The output is allocated at the element-wise maximum shape and
// zero-initialised before f runs, so an early failure leaves no
// uninitialised slots behind.
func Generic[A, B, C any](aShape array.Shape, a Input[A], bShape array.Shape, b Input[B], env *array.Env, f func(A, B, *array.Env) (C, error)) (array.Shape, []C, error) {
	cShape := array.MaxShape(aShape, bShape)
	c := make([]C, cShape.NumElements())
	if err := genericInto(aShape, a, bShape, b, c, env, f); err != nil {
		return nil, nil, err
	}
	return cShape, c, nil
}

func genericInto[A, B, C any](aShape array.Shape, a Input[A], bShape array.Shape, b Input[B], c []C, env *array.Env, f func(A, B, *array.Env) (C, error)) error {
	if aShape.Equal(bShape) {
		as, bs := a.Slice(), b.Slice()
		for i := range min(len(as), len(bs), len(c)) {
			v, err := f(as[i], bs[i], env)
			if err != nil {
				return err
			}
			c[i] = v
		}
		return nil
	}

	switch {
	case len(aShape) == 0 && len(bShape) == 0:
		v, err := f(a.Only(), b.Only(), env)
		if err != nil {
			return err
		}
		c[0] = v
	case len(bShape) == 0:
		y := b.Only()
		for i, x := range a.Slice() {
			v, err := f(x, y, env)
			if err != nil {
				return err
			}
			c[i] = v
		}
	case len(aShape) == 0:
		x := a.Only()
		for i, y := range b.Slice() {
			v, err := f(x, y, env)
			if err != nil {
				return err
			}
			c[i] = v
		}
	default:
		cells := aShape[0]
		if cells != bShape[0] {
			return env.Errorf(array.ShapeMismatch, "Shapes %v and %v do not match", aShape, bShape)
		}
		if cells == 0 {
			return nil
		}
		as, bs := a.Slice(), b.Slice()
		aChunk, bChunk, cChunk := a.Len()/cells, b.Len()/cells, len(c)/cells
		for i := range cells {
			var ai Input[A] = Elems[A](as[i*aChunk : (i+1)*aChunk])
			if len(aShape) == 1 {
				ai = Some(as[i])
			}
			var bi Input[B] = Elems[B](bs[i*bChunk : (i+1)*bChunk])
			if len(bShape) == 1 {
				bi = Some(bs[i])
			}
			if err := genericInto(aShape[1:], ai, bShape[1:], bi, c[i*cChunk:(i+1)*cChunk], env, f); err != nil {
				return err
			}
		}
	}
	return nil
}
