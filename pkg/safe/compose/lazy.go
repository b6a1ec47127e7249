package compose

import (
	"context"

	"github.com/ib-77/safe/pkg/safe"
)

// Lazy is a finalized composition ready to be evaluated on demand.
//
// Eval does not cache: every call runs all steps again from the start, so
// callables with side effects or external state are observed once per call.
// A Lazy is read-only over its steps and may be evaluated from several
// goroutines when its callables allow it.
type Lazy[T any] struct {
	ctx   context.Context
	steps *sequence
}

// Eval runs the composition and returns its outcome, like Composition.Now.
func (l Lazy[T]) Eval() safe.Result[T] {
	return finalize[T](l.ctx, l.steps)
}

// Len returns the number of captured steps.
func (l Lazy[T]) Len() int {
	return l.steps.len()
}
