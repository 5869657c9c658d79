// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package value provides the public API of the array value engine.
//
// # Overview
//
// A Value is an n-dimensional array of one of four element types:
//   - numbers (float64)
//   - bytes (uint8, used for booleans and small naturals)
//   - characters (rune)
//   - functions (Func, opaque and ordered by identity)
//
// Every operation is pervasive or rank-polymorphic. Binary operations pair
// elements of two arrays, broadcasting scalars and repairing mismatched
// shapes with the fill values of an Env.
//
// # Basic Usage
//
//	import "github.com/born-ml/arrays/value"
//
//	func main() {
//	    env := value.NewEnv()
//
//	    x := value.Num(10)
//	    y := value.Nums(1, 2, 3)
//	    z, err := value.Add(x, y, env) // [11 12 13]
//
//	    // Operand order follows the stack: Sub(a, b) is b - a.
//	    d, err := value.Sub(x, y, env) // [-9 -8 -7]
//
//	    // Shape repair with a fill value.
//	    filled := value.WithFill(env, 0.0)
//	    s, err := value.Add(value.Nums(1, 2), value.Nums(1, 2, 3), filled) // [2 4 3]
//	}
//
// # Errors
//
// Failures are returned as *Error values. Use errors.Is with the sentinel
// errors (ErrShapeMismatch, ErrTypeMismatch, ErrDomain, ErrNoInverse) to
// classify them. ErrFillShapeMismatch additionally matches shape
// mismatches that a fill value could have repaired.
//
// # Concurrency
//
// Large operations fan out across goroutines according to Env.Parallel.
// Values are immutable from the caller's perspective: every operation
// returns a new Value and never modifies its operands, so Values may be
// shared between goroutines freely.
package value
