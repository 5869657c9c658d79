package array

import "github.com/born-ml/arrays/internal/parallel"

type optional[T any] struct {
	value T
	ok    bool
}

// Env is the evaluation context consumed by array operations. It carries
// the per-type fill values used to repair shape mismatches and the
// parallelism settings. A nil *Env behaves like an Env with no fills that
// never fans out.
type Env struct {
	Parallel parallel.Config

	numFill  optional[float64]
	byteFill optional[uint8]
	charFill optional[rune]
}

// NewEnv returns an Env with no fill values and default parallelism.
func NewEnv() *Env {
	return &Env{Parallel: parallel.DefaultConfig()}
}

// ParallelConfig returns the parallelism settings, sequential for a nil Env.
func (env *Env) ParallelConfig() parallel.Config {
	if env == nil {
		return parallel.Sequential()
	}
	return env.Parallel
}

// WithFill returns a copy of env in which T's fill value is fill.
// Functions have no fill value; setting one is ignored.
func WithFill[T Element](env *Env, fill T) *Env {
	next := env.clone()
	switch v := any(fill).(type) {
	case float64:
		next.numFill = optional[float64]{v, true}
	case uint8:
		next.byteFill = optional[uint8]{v, true}
	case rune:
		next.charFill = optional[rune]{v, true}
	}
	return next
}

// WithoutFill returns a copy of env with T's fill value cleared.
func WithoutFill[T Element](env *Env) *Env {
	next := env.clone()
	var zero T
	switch any(zero).(type) {
	case float64:
		next.numFill = optional[float64]{}
	case uint8:
		next.byteFill = optional[uint8]{}
	case rune:
		next.charFill = optional[rune]{}
	}
	return next
}

// Fill returns T's fill value, if the context defines one.
func Fill[T Element](env *Env) (T, bool) {
	var zero T
	if env == nil {
		return zero, false
	}
	var (
		v  any
		ok bool
	)
	switch any(zero).(type) {
	case float64:
		v, ok = env.numFill.value, env.numFill.ok
	case uint8:
		v, ok = env.byteFill.value, env.byteFill.ok
	case rune:
		v, ok = env.charFill.value, env.charFill.ok
	}
	if !ok {
		return zero, false
	}
	return v.(T), true
}

func (env *Env) clone() *Env {
	if env == nil {
		return &Env{Parallel: parallel.Sequential()}
	}
	c := *env
	return &c
}
