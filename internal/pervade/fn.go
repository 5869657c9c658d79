package pervade

import "github.com/born-ml/arrays/internal/array"

// Fn is a two-argument element kernel as seen by the pervasion engines.
// Infallible and fallible kernels share this contract so the engines never
// need to tell them apart.
type Fn[A, B, C any] interface {
	Call(a A, b B, env *array.Env) (C, error)
}

// InfallibleFn adapts a kernel that cannot fail.
type InfallibleFn[A, B, C any] func(a A, b B) C

// Call implements Fn. It never returns an error.
func (f InfallibleFn[A, B, C]) Call(a A, b B, _ *array.Env) (C, error) {
	return f(a, b), nil
}

// FallibleFn adapts a kernel that may fail given the runtime context.
type FallibleFn[A, B, C any] func(a A, b B, env *array.Env) (C, error)

// Call implements Fn.
func (f FallibleFn[A, B, C]) Call(a A, b B, env *array.Env) (C, error) {
	return f(a, b, env)
}

// Infallible wraps f as an Fn.
func Infallible[A, B, C any](f func(a A, b B) C) Fn[A, B, C] {
	return InfallibleFn[A, B, C](f)
}

// Fallible wraps f as an Fn.
func Fallible[A, B, C any](f func(a A, b B, env *array.Env) (C, error)) Fn[A, B, C] {
	return FallibleFn[A, B, C](f)
}
