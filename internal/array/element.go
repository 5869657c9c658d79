package array

import (
	"cmp"
	"fmt"
	"math"
)

// Element is the closed set of types an Array may hold.
//
//   - float64: numbers
//   - uint8: bytes (naturals below 256, also booleans)
//   - rune: characters
//   - Func: opaque function values
type Element interface {
	float64 | uint8 | rune | Func
}

// Func is an opaque function value. The runtime that owns function bodies
// identifies each one by ID; this package only needs identity, ordering
// and an optional inverse.
type Func struct {
	ID      uint64
	Name    string
	inverse *Func
}

// NewFunc creates a function value without an inverse.
func NewFunc(id uint64, name string) Func {
	return Func{ID: id, Name: name}
}

// WithInverse returns a copy of f whose inverse is inv.
func (f Func) WithInverse(inv Func) Func {
	f.inverse = &inv
	return f
}

// Inverse returns the function's inverse, if one is known.
func (f Func) Inverse() (Func, bool) {
	if f.inverse == nil {
		return Func{}, false
	}
	return *f.inverse, true
}

// String implements fmt.Stringer.
func (f Func) String() string {
	if f.Name == "" {
		return fmt.Sprintf("func#%d", f.ID)
	}
	return f.Name
}

// CompareNum is the total order on numbers used everywhere arrays are
// compared: -0 equals 0, NaN equals NaN and sorts after every number.
func CompareNum(a, b float64) int {
	aNaN, bNaN := math.IsNaN(a), math.IsNaN(b)
	switch {
	case aNaN && bNaN:
		return 0
	case aNaN:
		return 1
	case bNaN:
		return -1
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// Compare returns -1, 0 or +1 according to the total element order.
func Compare[T Element](a, b T) int {
	switch x := any(a).(type) {
	case float64:
		return CompareNum(x, any(b).(float64))
	case uint8:
		return cmp.Compare(x, any(b).(uint8))
	case rune:
		return cmp.Compare(x, any(b).(rune))
	case Func:
		return cmp.Compare(x.ID, any(b).(Func).ID)
	default:
		panic("unsupported element type")
	}
}

// CompareRows compares two rows lexicographically; the first differing
// element decides. Rows of one array always have equal length.
func CompareRows[T Element](a, b []T) int {
	for i := range min(len(a), len(b)) {
		if c := Compare(a[i], b[i]); c != 0 {
			return c
		}
	}
	return cmp.Compare(len(a), len(b))
}

// TypeName returns the user-facing name of an element type.
func TypeName[T Element]() string {
	var zero T
	switch any(zero).(type) {
	case float64:
		return "number"
	case uint8:
		return "byte"
	case rune:
		return "character"
	case Func:
		return "function"
	default:
		return "unknown"
	}
}
