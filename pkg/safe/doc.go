// Package safe holds the value types shared by every stage of a composition:
// Result[T], the success/failure outcome threaded from step to step, and Void,
// the value of steps that produce nothing.
//
// A Result never panics when read:
//
//	res := safe.Success(42)
//	res.GetOrElse(0)      // 42
//	res.ErrorOrElse("ok") // "ok"
//
// Failures carry a human-readable message and, when one was captured, the
// structured error behind it (see Err). A failure whose message could not be
// recovered reports MissingErrorMessage wherever it is observed.
//
// Subpackages:
//   - attempt: invoke a callable and convert errors and panics into a Result
//   - step: the Then and Otherwise units of work
//   - compose: the fluent builder with Now and Later finalizers
//   - core: context-carried options and the metrics/tracing Observer
package safe
