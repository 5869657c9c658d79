package pervade

import (
	"math"

	"github.com/born-ml/arrays/internal/array"
)

// maxNum and minNum ignore a NaN operand and return the other one; only
// two NaNs give NaN.
func maxNum(a, b float64) float64 {
	switch {
	case math.IsNaN(a):
		return b
	case math.IsNaN(b):
		return a
	}
	return math.Max(a, b)
}

func minNum(a, b float64) float64 {
	switch {
	case math.IsNaN(a):
		return b
	case math.IsNaN(b):
		return a
	}
	return math.Min(a, b)
}

// MaxOp is the maximum kernel table.
type MaxOp struct{}

// Max keeps the larger operand. Characters compare by code point.
var Max MaxOp

// NumNum applies Max to two numbers.
func (MaxOp) NumNum(a, b float64) float64 { return maxNum(a, b) }

// ByteByte applies Max to two bytes.
func (MaxOp) ByteByte(a, b uint8) uint8 { return max(a, b) }

// CharChar applies Max to two characters.
func (MaxOp) CharChar(a, b rune) rune { return max(a, b) }

// NumByte applies Max to a number and a byte.
func (MaxOp) NumByte(a float64, b uint8) float64 { return maxNum(a, float64(b)) }

// ByteNum applies Max to a byte and a number.
func (MaxOp) ByteNum(a uint8, b float64) float64 { return maxNum(float64(a), b) }

// Error reports an unsupported pair of operand types.
func (MaxOp) Error(a, b string, env *array.Env) error {
	return env.Errorf(array.TypeMismatch, "Cannot get the max of %s and %s", a, b)
}

// MinOp is the minimum kernel table.
type MinOp struct{}

// Min keeps the smaller operand. Characters compare by code point.
var Min MinOp

// NumNum applies Min to two numbers.
func (MinOp) NumNum(a, b float64) float64 { return minNum(a, b) }

// ByteByte applies Min to two bytes.
func (MinOp) ByteByte(a, b uint8) uint8 { return min(a, b) }

// CharChar applies Min to two characters.
func (MinOp) CharChar(a, b rune) rune { return min(a, b) }

// NumByte applies Min to a number and a byte.
func (MinOp) NumByte(a float64, b uint8) float64 { return minNum(a, float64(b)) }

// ByteNum applies Min to a byte and a number.
func (MinOp) ByteNum(a uint8, b float64) float64 { return minNum(float64(a), b) }

// Error reports an unsupported pair of operand types.
func (MinOp) Error(a, b string, env *array.Env) error {
	return env.Errorf(array.TypeMismatch, "Cannot get the min of %s and %s", a, b)
}
