package attempt

import (
	"context"

	"github.com/ib-77/safe/pkg/safe"
)

// Call is the single callable shape every step is built from. Actions,
// consumers, suppliers and functions are adapted onto it below.
type Call[In, Out any] func(ctx context.Context, in In) (Out, error)

// Attempt is shorthand for Attempt(ctx, c, in).
func (c Call[In, Out]) Attempt(ctx context.Context, in In) safe.Result[Out] {
	return Attempt(ctx, c, in)
}

func Action[In any](fn func()) Call[In, safe.Void] {
	return func(context.Context, In) (safe.Void, error) {
		fn()
		return safe.Unit, nil
	}
}

func ActionTry[In any](fn func() error) Call[In, safe.Void] {
	return func(context.Context, In) (safe.Void, error) {
		return safe.Unit, fn()
	}
}

func Consumer[In any](fn func(In)) Call[In, safe.Void] {
	return func(_ context.Context, in In) (safe.Void, error) {
		fn(in)
		return safe.Unit, nil
	}
}

func ConsumerTry[In any](fn func(In) error) Call[In, safe.Void] {
	return func(_ context.Context, in In) (safe.Void, error) {
		return safe.Unit, fn(in)
	}
}

func Supplier[In, Out any](fn func() Out) Call[In, Out] {
	return func(context.Context, In) (Out, error) {
		return fn(), nil
	}
}

func SupplierTry[In, Out any](fn func() (Out, error)) Call[In, Out] {
	return func(context.Context, In) (Out, error) {
		return fn()
	}
}

func Function[In, Out any](fn func(In) Out) Call[In, Out] {
	return func(_ context.Context, in In) (Out, error) {
		return fn(in), nil
	}
}

func FunctionTry[In, Out any](fn func(In) (Out, error)) Call[In, Out] {
	return func(_ context.Context, in In) (Out, error) {
		return fn(in)
	}
}

// Bind fixes the argument of call to p. The upstream value is ignored.
func Bind[In, P, Out any](call Call[P, Out], p P) Call[In, Out] {
	if call == nil {
		return nil
	}
	return func(ctx context.Context, _ In) (Out, error) {
		return call(ctx, p)
	}
}
