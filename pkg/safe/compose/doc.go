// Package compose builds pipelines of fallible steps and runs them now or
// later.
//
// A composition starts from one of the That functions (or Start), grows with
// then-style appends, and ends with a finalizer:
//
//	res := compose.ThatSupplyTry(ctx, loadConfig).
//		OtherwiseConsume(func(msg string) { log.Print(msg) })
//	port := compose.MapTry(res, parsePort).Now()
//
// Appends that change the value type are functions (Map, MapTry, Supply,
// SupplyTry, Then); the rest are methods (Run, Consume, Otherwise...).
//
// Semantics:
//   - Steps run in the order they were appended.
//   - Once a step fails, every later then-style step is skipped and the first
//     failure message reaches the end unchanged.
//   - Otherwise steps fire only when the composition has failed at their
//     position. They observe the message and can neither clear the failure
//     nor change it; their own errors are swallowed.
//   - Panics and returned errors inside callables never escape: they become
//     failures (see package attempt).
//
// Compositions are immutable values. Appending to one never affects another
// composition built from the same prefix.
//
// Now evaluates immediately. Later returns a Lazy whose Eval re-runs every
// step on each call, without caching.
//
// The context given to That/Start is passed to every callable and carries the
// logger and Observer consulted while running (see package core).
package compose
