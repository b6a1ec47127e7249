package step

import (
	"context"

	"github.com/ib-77/safe/pkg/safe"
	"github.com/ib-77/safe/pkg/safe/attempt"
)

type thenStep[In, Out any] struct {
	name string
	call attempt.Call[In, Out]
}

// Then builds a transform step. A failed input passes through untouched and
// call is not invoked; otherwise the held value is handed to call through
// attempt.Attempt.
func Then[In, Out any](name string, call attempt.Call[In, Out]) Step {
	return thenStep[In, Out]{name: name, call: call}
}

func (s thenStep[In, Out]) Name() string { return s.name }

func (s thenStep[In, Out]) Kind() Kind { return KindThen }

func (s thenStep[In, Out]) Invoke(ctx context.Context, in safe.Result[any]) (safe.Result[any], Report) {
	if in.Failed() {
		return in, Report{}
	}

	out := attempt.Attempt(ctx, s.call, safe.Assert[In](in).GetOrElse(*new(In)))
	return safe.Erase(out), Report{Invoked: true}
}
