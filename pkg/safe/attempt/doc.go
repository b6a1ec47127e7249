// Package attempt is the boundary between user callables and the Result
// channel. Attempt calls a Call and converts whatever it does into a
// safe.Result: a value becomes a success, a returned error or a panic becomes a
// failure with a best-effort message.
//
// The shape adapters turn the usual call shapes into a Call:
//
//	attempt.Action[safe.Void](func() { ... })                 // no input, no output
//	attempt.ConsumerTry(func(s string) error { ... })         // input, may fail
//	attempt.Supplier[safe.Void](func() int { return 42 })     // output only
//	attempt.FunctionTry(strconv.Atoi)                         // input and output, may fail
//
// The unchecked shapes fail by panicking, the Try shapes by returning an error.
package attempt
