package pervade

import (
	"math"

	"github.com/born-ml/arrays/internal/array"
	"github.com/born-ml/arrays/internal/parallel"
)

// UnaryOp is a monadic kernel table. Num applies to numbers and Byte to
// bytes; Byte results stay bytes when the operation cannot leave the
// naturals and widen to numbers otherwise.
type UnaryOp[B float64 | uint8] struct {
	verb string
	Num  func(a float64) float64
	Byte func(a uint8) B
}

// Error reports that the operation does not apply to an operand of type a.
func (op UnaryOp[B]) Error(a string, env *array.Env) error {
	return env.Errorf(array.TypeMismatch, "Cannot %s %s", op.verb, a)
}

func widen(f func(float64) float64) func(uint8) float64 {
	return func(a uint8) float64 { return f(float64(a)) }
}

func identity(a uint8) uint8 { return a }

func not(a float64) float64 { return 1 - a }

func neg(a float64) float64 { return -a }

func sign(a float64) float64 {
	switch {
	case math.IsNaN(a):
		return math.NaN()
	case a == 0:
		return 0
	default:
		return math.Copysign(1, a)
	}
}

// Unary kernels.
var (
	Not   = UnaryOp[float64]{"negate", not, widen(not)}
	Neg   = UnaryOp[float64]{"negate", neg, widen(neg)}
	Abs   = UnaryOp[uint8]{"take the absolute value of", math.Abs, identity}
	Sign  = UnaryOp[uint8]{"get the sign of", sign, func(a uint8) uint8 { return min(a, 1) }}
	Sqrt  = UnaryOp[float64]{"take the square root of", math.Sqrt, widen(math.Sqrt)}
	Sin   = UnaryOp[float64]{"get the sine of", math.Sin, widen(math.Sin)}
	Cos   = UnaryOp[float64]{"get the cosine of", math.Cos, widen(math.Cos)}
	Tan   = UnaryOp[float64]{"get the tangent of", math.Tan, widen(math.Tan)}
	Asin  = UnaryOp[float64]{"get the arcsine of", math.Asin, widen(math.Asin)}
	Acos  = UnaryOp[float64]{"get the arccosine of", math.Acos, widen(math.Acos)}
	Floor = UnaryOp[uint8]{"get the floor of", math.Floor, identity}
	Ceil  = UnaryOp[uint8]{"get the ceiling of", math.Ceil, identity}
	Round = UnaryOp[uint8]{"get the rounded value of", math.Round, identity}
)

// Map applies f to every element of a, keeping its shape.
func Map[A, C array.Element](a *array.Array[A], env *array.Env, f func(A) C) *array.Array[C] {
	in := a.Data()
	out := make([]C, len(in))
	parallel.ForRange(len(in), func(start, end int) {
		for i := start; i < end; i++ {
			out[i] = f(in[i])
		}
	}, env.ParallelConfig())
	return array.MustNew(a.Shape().Clone(), out)
}
