package pervade

import (
	"fmt"

	"github.com/born-ml/arrays/internal/array"
)

// Comparison is a comparison kernel table. It keeps a result when the
// ordering of the second operand against the first satisfies its predicate.
// Results are 1 for true and 0 for false. Comparisons use the total element
// order, so NaN compares equal to itself and greater than any number.
type Comparison struct {
	name string
	keep func(ord int) bool
}

// Comparison kernels.
var (
	Eq = Comparison{"eq", func(o int) bool { return o == 0 }}
	Ne = Comparison{"ne", func(o int) bool { return o != 0 }}
	Lt = Comparison{"lt", func(o int) bool { return o < 0 }}
	Le = Comparison{"le", func(o int) bool { return o <= 0 }}
	Gt = Comparison{"gt", func(o int) bool { return o > 0 }}
	Ge = Comparison{"ge", func(o int) bool { return o >= 0 }}
)

// Name returns the kernel's short name.
func (c Comparison) Name() string {
	return c.name
}

func (c Comparison) result(ord int) uint8 {
	if c.keep(ord) {
		return 1
	}
	return 0
}

// NumNum compares a number receiver against a number.
func (c Comparison) NumNum(a, b float64) uint8 { return c.result(array.CompareNum(b, a)) }

// ByteNum compares a number receiver against a byte.
func (c Comparison) ByteNum(a uint8, b float64) uint8 { return c.result(array.CompareNum(b, float64(a))) }

// NumByte compares a byte receiver against a number.
func (c Comparison) NumByte(a float64, b uint8) uint8 { return c.result(array.CompareNum(float64(b), a)) }

// AlwaysGreater is the result when the first operand always orders after
// the second, as a function does against any primitive.
func (c Comparison) AlwaysGreater() uint8 { return c.result(-1) }

// AlwaysLess is the result when the first operand always orders before
// the second.
func (c Comparison) AlwaysLess() uint8 { return c.result(1) }

// Error is never reached: the element order is total, so a comparison
// always has an answer.
func (c Comparison) Error(a, b string, _ *array.Env) error {
	panic(fmt.Sprintf("comparisons cannot fail, failed to %s %s and %s", c.name, a, b))
}

// Same returns the kernel comparing two operands of one element type.
func Same[T array.Element](c Comparison) func(a, b T) uint8 {
	return func(a, b T) uint8 {
		return c.result(array.Compare(b, a))
	}
}

// AlwaysGreater returns a kernel that ignores its operands and answers as
// if the first were greater.
func AlwaysGreater[A, B any](c Comparison) func(a A, b B) uint8 {
	r := c.AlwaysGreater()
	return func(A, B) uint8 { return r }
}

// AlwaysLess returns a kernel that ignores its operands and answers as if
// the first were smaller.
func AlwaysLess[A, B any](c Comparison) func(a A, b B) uint8 {
	r := c.AlwaysLess()
	return func(A, B) uint8 { return r }
}
