package compose

import (
	"context"

	"github.com/ib-77/safe/pkg/safe"
	"github.com/ib-77/safe/pkg/safe/attempt"
	"github.com/ib-77/safe/pkg/safe/step"
)

// Composition is an in-progress pipeline whose steps produce a T. It is an
// immutable value: every append returns a new Composition and leaves the
// receiver usable, so one Composition can be extended in several directions.
type Composition[T any] struct {
	ctx   context.Context
	steps *sequence
}

// Start begins a composition with call as its first step. ctx is kept for
// every evaluation and handed to each callable.
func Start[T any](ctx context.Context, call attempt.Call[safe.Void, T]) Composition[T] {
	return begin[T](ctx, step.Then("start", call))
}

// That begins a composition with an action.
func That(ctx context.Context, action func()) Composition[safe.Void] {
	return begin[safe.Void](ctx, step.Then("that", attempt.Action[safe.Void](action)))
}

// ThatTry begins a composition with an action that may fail.
func ThatTry(ctx context.Context, action func() error) Composition[safe.Void] {
	return begin[safe.Void](ctx, step.Then("that-try", attempt.ActionTry[safe.Void](action)))
}

// ThatConsume begins a composition with consumer applied to p.
func ThatConsume[P any](ctx context.Context, consumer func(P), p P) Composition[safe.Void] {
	return begin[safe.Void](ctx, step.Then("that-consume",
		attempt.Bind[safe.Void](attempt.Consumer(consumer), p)))
}

// ThatConsumeTry begins a composition with a consumer that may fail, applied to p.
func ThatConsumeTry[P any](ctx context.Context, consumer func(P) error, p P) Composition[safe.Void] {
	return begin[safe.Void](ctx, step.Then("that-consume-try",
		attempt.Bind[safe.Void](attempt.ConsumerTry(consumer), p)))
}

// ThatSupply begins a composition with a supplier.
func ThatSupply[T any](ctx context.Context, supplier func() T) Composition[T] {
	return begin[T](ctx, step.Then("that-supply", attempt.Supplier[safe.Void](supplier)))
}

// ThatSupplyTry begins a composition with a supplier that may fail.
func ThatSupplyTry[T any](ctx context.Context, supplier func() (T, error)) Composition[T] {
	return begin[T](ctx, step.Then("that-supply-try", attempt.SupplierTry[safe.Void](supplier)))
}

// ThatMap begins a composition with function applied to p.
func ThatMap[P, T any](ctx context.Context, function func(P) T, p P) Composition[T] {
	return begin[T](ctx, step.Then("that-map",
		attempt.Bind[safe.Void](attempt.Function(function), p)))
}

// ThatMapTry begins a composition with a function that may fail, applied to p.
func ThatMapTry[P, T any](ctx context.Context, function func(P) (T, error), p P) Composition[T] {
	return begin[T](ctx, step.Then("that-map-try",
		attempt.Bind[safe.Void](attempt.FunctionTry(function), p)))
}

func begin[T any](ctx context.Context, seed step.Step) Composition[T] {
	if ctx == nil {
		ctx = context.Background()
	}
	return Composition[T]{ctx: ctx, steps: (*sequence)(nil).push(seed)}
}

func push[T, U any](c Composition[T], st step.Step) Composition[U] {
	return Composition[U]{ctx: c.ctx, steps: c.steps.push(st)}
}

// Then appends call, which receives the current value.
func Then[T, U any](c Composition[T], call attempt.Call[T, U]) Composition[U] {
	return push[T, U](c, step.Then("then", call))
}

// Map appends a function of the current value.
func Map[T, U any](c Composition[T], function func(T) U) Composition[U] {
	return push[T, U](c, step.Then("map", attempt.Function(function)))
}

// MapTry appends a function of the current value that may fail.
func MapTry[T, U any](c Composition[T], function func(T) (U, error)) Composition[U] {
	return push[T, U](c, step.Then("map-try", attempt.FunctionTry(function)))
}

// Supply appends a supplier; the current value is dropped.
func Supply[T, U any](c Composition[T], supplier func() U) Composition[U] {
	return push[T, U](c, step.Then("supply", attempt.Supplier[T](supplier)))
}

// SupplyTry appends a supplier that may fail; the current value is dropped.
func SupplyTry[T, U any](c Composition[T], supplier func() (U, error)) Composition[U] {
	return push[T, U](c, step.Then("supply-try", attempt.SupplierTry[T](supplier)))
}

// Run appends an action.
func (c Composition[T]) Run(action func()) Composition[safe.Void] {
	return push[T, safe.Void](c, step.Then("run", attempt.Action[T](action)))
}

// RunTry appends an action that may fail.
func (c Composition[T]) RunTry(action func() error) Composition[safe.Void] {
	return push[T, safe.Void](c, step.Then("run-try", attempt.ActionTry[T](action)))
}

// Consume appends a consumer of the current value.
func (c Composition[T]) Consume(consumer func(T)) Composition[safe.Void] {
	return push[T, safe.Void](c, step.Then("consume", attempt.Consumer(consumer)))
}

// ConsumeTry appends a consumer of the current value that may fail.
func (c Composition[T]) ConsumeTry(consumer func(T) error) Composition[safe.Void] {
	return push[T, safe.Void](c, step.Then("consume-try", attempt.ConsumerTry(consumer)))
}

// Otherwise appends an action that runs only if the composition has failed at
// this point. It cannot change the outcome.
func (c Composition[T]) Otherwise(action func()) Composition[T] {
	return push[T, T](c, step.Otherwise("otherwise", attempt.Action[string](action)))
}

// OtherwiseTry is Otherwise for an action that may fail. Its failure is
// swallowed.
func (c Composition[T]) OtherwiseTry(action func() error) Composition[T] {
	return push[T, T](c, step.Otherwise("otherwise-try", attempt.ActionTry[string](action)))
}

// OtherwiseConsume appends a consumer of the failure message that runs only
// if the composition has failed at this point.
func (c Composition[T]) OtherwiseConsume(consumer func(string)) Composition[T] {
	return push[T, T](c, step.Otherwise("otherwise-consume", attempt.Consumer(consumer)))
}

// OtherwiseConsumeTry is OtherwiseConsume for a consumer that may fail. Its
// failure is swallowed.
func (c Composition[T]) OtherwiseConsumeTry(consumer func(string) error) Composition[T] {
	return push[T, T](c, step.Otherwise("otherwise-consume-try", attempt.ConsumerTry(consumer)))
}

// Len returns the number of steps in this composition.
func (c Composition[T]) Len() int {
	return c.steps.len()
}

func (c Composition[T]) Context() context.Context {
	return c.ctx
}
