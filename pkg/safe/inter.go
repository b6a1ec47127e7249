package safe

import (
	"time"

	"github.com/google/uuid"
)

type ResultProvider interface {
	// Id identifies the Result; re-typed failures keep the id of their origin
	Id() uuid.UUID
	// CreatedAt time creation (UTC)
	CreatedAt() time.Time
}

// Outcome is the read side of a success/failure value
type Outcome[T any] interface {
	// Succeeded and Failed are exact complements
	Succeeded() bool
	Failed() bool
	// GetOrElse returns the held value on success, other otherwise
	GetOrElse(other T) T
	// ErrorOrElse returns the held message on failure, other otherwise
	ErrorOrElse(other string) string
}

// WithError extends Outcome with the structured failure payload
type WithError[T any] interface {
	Outcome[T]
	ResultProvider
	// Err returns the failure payload, nil on success
	Err() error
}

var (
	_ WithError[int]  = Result[int]{}
	_ WithError[Void] = Result[Void]{}
)
