package step

import (
	"context"

	"github.com/ib-77/safe/pkg/safe"
	"github.com/ib-77/safe/pkg/safe/attempt"
)

type otherwiseStep struct {
	name string
	call attempt.Call[string, safe.Void]
}

// Otherwise builds a recovery step. It runs call with the failure message only
// when its input failed, discards whatever call does, and always returns its
// input unchanged.
func Otherwise(name string, call attempt.Call[string, safe.Void]) Step {
	return otherwiseStep{name: name, call: call}
}

func (s otherwiseStep) Name() string { return s.name }

func (s otherwiseStep) Kind() Kind { return KindOtherwise }

func (s otherwiseStep) Invoke(ctx context.Context, in safe.Result[any]) (safe.Result[any], Report) {
	if in.Succeeded() {
		return in, Report{}
	}

	swallowed := attempt.Attempt(ctx, s.call, in.ErrorOrElse(safe.MissingErrorMessage))
	return in, Report{
		Invoked:        true,
		Swallowed:      swallowed,
		RecoveryFailed: swallowed.Failed(),
	}
}
