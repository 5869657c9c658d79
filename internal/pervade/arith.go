package pervade

import (
	"math"
	"unicode/utf8"

	"github.com/born-ml/arrays/internal/array"
)

// Binary kernels receive their operands in stack order: the second argument
// is the receiver and the first the modifier, so Sub.NumNum(a, b) is b - a.

// toInt64 converts like a saturating cast: NaN becomes 0 and values out of
// range clamp to the nearest bound.
func toInt64(x float64) int64 {
	switch {
	case math.IsNaN(x):
		return 0
	case x >= math.MaxInt64:
		return math.MaxInt64
	case x <= math.MinInt64:
		return math.MinInt64
	default:
		return int64(x)
	}
}

// charFromCode turns a code point into a character. Codes that do not name
// a valid character give the null character.
func charFromCode(n int64) rune {
	r := rune(uint32(n))
	if !utf8.ValidRune(r) {
		return 0
	}
	return r
}

// AddOp is the addition kernel table.
type AddOp struct{}

// Add adds numbers, or offsets characters by a number of code points.
var Add AddOp

// NumNum applies Add to two numbers.
func (AddOp) NumNum(a, b float64) float64 { return b + a }

// ByteByte applies Add to two bytes.
func (AddOp) ByteByte(a, b uint8) float64 { return float64(a) + float64(b) }

// ByteNum applies Add to a byte and a number.
func (AddOp) ByteNum(a uint8, b float64) float64 { return b + float64(a) }

// NumByte applies Add to a number and a byte.
func (AddOp) NumByte(a float64, b uint8) float64 { return a + float64(b) }

// NumChar applies Add to a number and a character.
func (AddOp) NumChar(a float64, b rune) rune { return charFromCode(int64(b) + toInt64(a)) }

// CharNum applies Add to a character and a number.
func (AddOp) CharNum(a rune, b float64) rune { return charFromCode(toInt64(b) + int64(a)) }

// ByteChar applies Add to a byte and a character.
func (AddOp) ByteChar(a uint8, b rune) rune { return charFromCode(int64(b) + int64(a)) }

// CharByte applies Add to a character and a byte.
func (AddOp) CharByte(a rune, b uint8) rune { return charFromCode(int64(b) + int64(a)) }

// Error reports an unsupported pair of operand types.
func (AddOp) Error(a, b string, env *array.Env) error {
	return env.Errorf(array.TypeMismatch, "Cannot add %s and %s", a, b)
}

// SubOp is the subtraction kernel table.
type SubOp struct{}

// Sub subtracts the first operand from the second.
var Sub SubOp

// NumNum applies Sub to two numbers.
func (SubOp) NumNum(a, b float64) float64 { return b - a }

// ByteByte applies Sub to two bytes.
func (SubOp) ByteByte(a, b uint8) float64 { return float64(b) - float64(a) }

// ByteNum applies Sub to a byte and a number.
func (SubOp) ByteNum(a uint8, b float64) float64 { return b - float64(a) }

// NumByte applies Sub to a number and a byte.
func (SubOp) NumByte(a float64, b uint8) float64 { return float64(b) - a }

// NumChar applies Sub to a number and a character.
func (SubOp) NumChar(a float64, b rune) rune { return charFromCode(int64(b) - toInt64(a)) }

// CharChar applies Sub to two characters.
func (SubOp) CharChar(a, b rune) float64 { return float64(int64(b) - int64(a)) }

// ByteChar applies Sub to a byte and a character.
func (SubOp) ByteChar(a uint8, b rune) rune { return charFromCode(int64(b) - int64(a)) }

// Error reports an unsupported pair of operand types.
func (SubOp) Error(a, b string, env *array.Env) error {
	return env.Errorf(array.TypeMismatch, "Cannot subtract %s from %s", a, b)
}

// MulOp is the multiplication kernel table.
type MulOp struct{}

// Mul multiplies numbers.
var Mul MulOp

// NumNum applies Mul to two numbers.
func (MulOp) NumNum(a, b float64) float64 { return b * a }

// ByteByte applies Mul to two bytes.
func (MulOp) ByteByte(a, b uint8) float64 { return float64(b) * float64(a) }

// ByteNum applies Mul to a byte and a number.
func (MulOp) ByteNum(a uint8, b float64) float64 { return b * float64(a) }

// NumByte applies Mul to a number and a byte.
func (MulOp) NumByte(a float64, b uint8) float64 { return float64(b) * a }

// Error reports an unsupported pair of operand types.
func (MulOp) Error(a, b string, env *array.Env) error {
	return env.Errorf(array.TypeMismatch, "Cannot multiply %s and %s", a, b)
}

// DivOp is the division kernel table.
type DivOp struct{}

// Div divides the second operand by the first.
var Div DivOp

// NumNum applies Div to two numbers.
func (DivOp) NumNum(a, b float64) float64 { return b / a }

// ByteByte applies Div to two bytes.
func (DivOp) ByteByte(a, b uint8) float64 { return float64(b) / float64(a) }

// ByteNum applies Div to a byte and a number.
func (DivOp) ByteNum(a uint8, b float64) float64 { return b / float64(a) }

// NumByte applies Div to a number and a byte.
func (DivOp) NumByte(a float64, b uint8) float64 { return float64(b) / a }

// Error reports an unsupported pair of operand types.
func (DivOp) Error(a, b string, env *array.Env) error {
	return env.Errorf(array.TypeMismatch, "Cannot divide %s by %s", a, b)
}

// ModOp is the modulus kernel table.
type ModOp struct{}

// Mod takes the second operand modulo the first. The result has the sign
// of the divisor.
var Mod ModOp

func modulus(a, b float64) float64 {
	return math.Mod(math.Mod(b, a)+a, a)
}

// NumNum applies Mod to two numbers.
func (ModOp) NumNum(a, b float64) float64 { return modulus(a, b) }

// ByteByte applies Mod to two bytes.
func (ModOp) ByteByte(a, b uint8) float64 { return math.Mod(float64(b), float64(a)) }

// ByteNum applies Mod to a byte and a number.
func (ModOp) ByteNum(a uint8, b float64) float64 { return modulus(float64(a), b) }

// NumByte applies Mod to a number and a byte.
func (ModOp) NumByte(a float64, b uint8) float64 { return modulus(a, float64(b)) }

// Error reports an unsupported pair of operand types.
func (ModOp) Error(a, b string, env *array.Env) error {
	return env.Errorf(array.TypeMismatch, "Cannot take the modulus of %s by %s", a, b)
}

// PowOp is the exponentiation kernel table.
type PowOp struct{}

// Pow raises the second operand to the power of the first.
var Pow PowOp

// NumNum applies Pow to two numbers.
func (PowOp) NumNum(a, b float64) float64 { return math.Pow(b, a) }

// ByteByte applies Pow to two bytes.
func (PowOp) ByteByte(a, b uint8) float64 { return math.Pow(float64(b), float64(a)) }

// ByteNum applies Pow to a byte and a number.
func (PowOp) ByteNum(a uint8, b float64) float64 { return math.Pow(b, float64(a)) }

// NumByte applies Pow to a number and a byte.
func (PowOp) NumByte(a float64, b uint8) float64 { return math.Pow(float64(b), a) }

// Error reports an unsupported pair of operand types.
func (PowOp) Error(a, b string, env *array.Env) error {
	return env.Errorf(array.TypeMismatch, "Cannot get the power of %s to %s", a, b)
}

// LogOp is the logarithm kernel table.
type LogOp struct{}

// Log takes the logarithm of the second operand in base of the first.
var Log LogOp

func logBase(base, x float64) float64 {
	return math.Log(x) / math.Log(base)
}

// NumNum applies Log to two numbers.
func (LogOp) NumNum(a, b float64) float64 { return logBase(a, b) }

// ByteByte applies Log to two bytes.
func (LogOp) ByteByte(a, b uint8) float64 { return logBase(float64(a), float64(b)) }

// ByteNum applies Log to a byte and a number.
func (LogOp) ByteNum(a uint8, b float64) float64 { return logBase(float64(a), b) }

// NumByte applies Log to a number and a byte.
func (LogOp) NumByte(a float64, b uint8) float64 { return logBase(a, float64(b)) }

// Error reports an unsupported pair of operand types.
func (LogOp) Error(a, b string, env *array.Env) error {
	return env.Errorf(array.TypeMismatch, "Cannot get the log base %s of %s", b, a)
}

// Atan2Op is the two-argument arctangent kernel table.
type Atan2Op struct{}

// Atan2 computes atan2(a, b). Unlike the arithmetic kernels it is not
// reversed.
var Atan2 Atan2Op

// NumNum applies Atan2 to two numbers.
func (Atan2Op) NumNum(a, b float64) float64 { return math.Atan2(a, b) }

// Error reports an unsupported pair of operand types.
func (Atan2Op) Error(a, b string, env *array.Env) error {
	return env.Errorf(array.TypeMismatch, "Cannot get the atan2 of %s and %s", a, b)
}
