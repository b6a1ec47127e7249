// Package core contains the plumbing a composition consults while it runs:
// options carried in the context (logger, observer) and the Observer that
// records metrics, spans and events for each run. It does not define pipeline
// semantics; those live in step and compose.
package core
