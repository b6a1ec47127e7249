// Package step contains the two units of work a composition is made of.
//
//   - Then: a transform. It short-circuits on a failed input and otherwise
//     runs its callable on the held value, producing the next Result.
//   - Otherwise: a recovery. It fires only on a failed input, for side effects
//     such as logging or cleanup, and can never change the Result it was given.
//
// Steps are stateless once built and may be shared between compositions.
package step
