package pervade

import (
	"cmp"

	"github.com/born-ml/arrays/internal/array"
	"github.com/born-ml/arrays/internal/parallel"
)

// Bin applies f element-wise across a and b.
//
// When the shapes of a and b disagree on their common prefix the operands
// are first reconciled using the context's fill values: the shorter
// operand gains rows, then the lower-rank operand gains a leading axis (or,
// at equal rank, both grow to the element-wise maximum shape). Operands
// that need repair are cloned; a and b are never modified.
//
// The result has the element-wise maximum of the reconciled shapes. A
// scalar operand is broadcast across every element of the other.
func Bin[A, B, C array.Element](a *array.Array[A], b *array.Array[B], env *array.Env, f Fn[A, B, C]) (*array.Array[C], error) {
	a, b, err := reconcile(a, b, env)
	if err != nil {
		return nil, err
	}

	shape := array.MaxShape(a.Shape(), b.Shape())
	out := make([]C, shape.NumElements())
	if err := pervade(array.ViewOf[A](a), array.ViewOf[B](b), out, env, f); err != nil {
		return nil, err
	}
	return array.New(shape, out)
}

// reconcile repairs mismatched shape prefixes with fill values.
func reconcile[A, B array.Element](a *array.Array[A], b *array.Array[B], env *array.Env) (*array.Array[A], *array.Array[B], error) {
	if a.Shape().PrefixesMatch(b.Shape()) {
		return a, b, nil
	}

	// Fill in missing rows.
	switch cmp.Compare(a.RowCount(), b.RowCount()) {
	case -1:
		if fill, ok := array.Fill[A](env); ok {
			target := a.Shape().Clone()
			target[0] = b.RowCount()
			a = filled(a, target, fill)
		}
	case 1:
		if fill, ok := array.Fill[B](env); ok {
			target := b.Shape().Clone()
			target[0] = a.RowCount()
			b = filled(b, target, fill)
		}
	}
	if a.Shape().PrefixesMatch(b.Shape()) {
		return a, b, nil
	}

	// Fill in missing axes.
	switch cmp.Compare(a.Rank(), b.Rank()) {
	case -1:
		if fill, ok := array.Fill[A](env); ok {
			target := append(array.Shape{b.RowCount()}, a.Shape()...)
			a = filled(a, target, fill)
		}
	case 1:
		if fill, ok := array.Fill[B](env); ok {
			target := append(array.Shape{a.RowCount()}, b.Shape()...)
			b = filled(b, target, fill)
		}
	default:
		target := array.MaxShape(a.Shape(), b.Shape())
		if !a.Shape().Equal(target) {
			if fill, ok := array.Fill[A](env); ok {
				a = filled(a, target, fill)
			}
		}
		if !b.Shape().Equal(target) {
			if fill, ok := array.Fill[B](env); ok {
				b = filled(b, target, fill)
			}
		}
	}
	if !a.Shape().PrefixesMatch(b.Shape()) {
		return nil, nil, env.Errorf(array.ShapeMismatch, "Shapes %v and %v do not match", a.Shape(), b.Shape()).Fill()
	}
	return a, b, nil
}

func filled[T array.Element](a *array.Array[T], target array.Shape, fill T) *array.Array[T] {
	c := a.Clone()
	c.FillToShape(target, fill)
	return c
}

// pervade fills out, splitting the work along the leading axis when it is
// large enough. Each row reads only its own rows of a and b (or a broadcast
// scalar) and writes only its own window of out.
func pervade[A, B, C array.Element](a array.View[A], b array.View[B], out []C, env *array.Env, f Fn[A, B, C]) error {
	cfg := env.ParallelConfig()
	if !cfg.Enabled || len(out) < cfg.MinChunkSize || (a.Rank() == 0 && b.Rank() == 0) {
		return pervadeInto(a, b, out, env, f)
	}

	rows := a.RowCount()
	if a.Rank() == 0 {
		rows = b.RowCount()
	}
	if rows == 0 {
		return nil
	}
	rowOut := len(out) / rows
	rowCfg := cfg
	rowCfg.MinChunkSize = max(1, cfg.MinChunkSize/max(rowOut, 1))

	return parallel.ForErr(rows, func(i int) error {
		return pervadeInto(rowOf(a, i), rowOf(b, i), out[i*rowOut:(i+1)*rowOut], env, f)
	}, rowCfg)
}

// rowOf returns row i of v, or v itself if it is a scalar being broadcast.
func rowOf[T array.Element](v array.View[T], i int) array.View[T] {
	if v.Rank() == 0 {
		return v
	}
	return v.Row(i)
}

// pervadeInto walks matching row structure of a and b, applying f at the
// leaves. len(out) must equal the element count of the maximum shape.
func pervadeInto[A, B, C array.Element](a array.View[A], b array.View[B], out []C, env *array.Env, f Fn[A, B, C]) error {
	ash, bsh := a.Shape(), b.Shape()
	ad, bd := a.Data(), b.Data()

	switch {
	case len(ash) == 0 && len(bsh) == 0:
		c, err := f.Call(ad[0], bd[0], env)
		if err != nil {
			return err
		}
		out[0] = c
	case ash.Equal(bsh):
		for i := range ad {
			c, err := f.Call(ad[i], bd[i], env)
			if err != nil {
				return err
			}
			out[i] = c
		}
	case len(ash) == 0:
		// Broadcasting a scalar across every row, recursively, visits the
		// elements of b in flat order.
		x := ad[0]
		for i := range bd {
			c, err := f.Call(x, bd[i], env)
			if err != nil {
				return err
			}
			out[i] = c
		}
	case len(bsh) == 0:
		y := bd[0]
		for i := range ad {
			c, err := f.Call(ad[i], y, env)
			if err != nil {
				return err
			}
			out[i] = c
		}
	default:
		rows := a.RowCount()
		if rows == 0 {
			return nil
		}
		rowOut := len(out) / rows
		for i := range rows {
			if err := pervadeInto(a.Row(i), b.Row(i), out[i*rowOut:(i+1)*rowOut], env, f); err != nil {
				return err
			}
		}
	}
	return nil
}
