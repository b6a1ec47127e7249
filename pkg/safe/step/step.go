package step

import (
	"context"

	"github.com/ib-77/safe/pkg/safe"
)

type Kind int

const (
	KindThen Kind = iota
	KindOtherwise
)

func (k Kind) String() string {
	switch k {
	case KindThen:
		return "then"
	case KindOtherwise:
		return "otherwise"
	default:
		return "unknown"
	}
}

// Step is one unit of work over the untyped Result channel.
type Step interface {
	Name() string
	Kind() Kind
	Invoke(ctx context.Context, in safe.Result[any]) (safe.Result[any], Report)
}

// Report describes what a step did with its input, for logging and metrics.
type Report struct {
	// Invoked is true when the step's callable ran
	Invoked bool
	// Swallowed is the failure of a recovery callable, discarded by the step
	Swallowed safe.Result[safe.Void]
	// RecoveryFailed is true when Swallowed holds a failure
	RecoveryFailed bool
}
