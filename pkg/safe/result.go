package safe

import (
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

type Result[T any] struct {
	id        uuid.UUID
	createdAt time.Time
	value     T
	msg       string
	hasMsg    bool
	err       error
	isSuccess bool
}

func Success[T any](v T) Result[T] {
	return Result[T]{
		value:     v,
		isSuccess: true,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// Fail builds a failure carrying msg. An empty msg is still a present message.
func Fail[T any](msg string) Result[T] {
	return Result[T]{
		msg:       msg,
		hasMsg:    true,
		isSuccess: false,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// FailErr builds a failure from err. The message is err.Error() when that is
// non-empty; otherwise the failure has no recoverable message.
func FailErr[T any](err error) Result[T] {
	msg, ok := Message(err)
	if IsNil(err) {
		err = nil
	}
	return Result[T]{
		msg:       msg,
		hasMsg:    ok,
		err:       err,
		isSuccess: false,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

func FailWith[T any](msg string, err error) Result[T] {
	r := Fail[T](msg)
	if !IsNil(err) {
		r.err = err
	}
	return r
}

// Unrecoverable builds a failure that carries err as payload but no message.
// Observers substitute MissingErrorMessage for it.
func Unrecoverable[T any](err error) Result[T] {
	r := FailErr[T](nil)
	if !IsNil(err) {
		r.err = err
	}
	return r
}

// FailFrom re-types a failure without touching its identity, message or payload.
func FailFrom[In, Out any](from Result[In]) Result[Out] {
	return Result[Out]{
		id:        from.id,
		createdAt: from.createdAt,
		msg:       from.msg,
		hasMsg:    from.hasMsg,
		err:       from.err,
		isSuccess: false,
	}
}

// FailFromOr is FailFrom that also gives the failure msg when it carries no
// message of its own.
func FailFromOr[In, Out any](from Result[In], msg string) Result[Out] {
	r := FailFrom[In, Out](from)
	if !r.hasMsg {
		r.msg, r.hasMsg = msg, true
	}
	return r
}

// Erase moves r onto the untyped channel threaded between pipeline steps.
func Erase[T any](r Result[T]) Result[any] {
	if !r.isSuccess {
		return FailFrom[T, any](r)
	}
	return Result[any]{
		id:        r.id,
		createdAt: r.createdAt,
		value:     r.value,
		isSuccess: true,
	}
}

// Assert is the inverse of Erase. The value is asserted with comma-ok, so a
// nil value yields the zero T.
func Assert[T any](r Result[any]) Result[T] {
	if !r.isSuccess {
		return FailFrom[any, T](r)
	}
	v, _ := r.value.(T)
	return Result[T]{
		id:        r.id,
		createdAt: r.createdAt,
		value:     v,
		isSuccess: true,
	}
}

func (r Result[T]) Succeeded() bool {
	return r.isSuccess
}

func (r Result[T]) Failed() bool {
	return !r.isSuccess
}

func (r Result[T]) GetOrElse(other T) T {
	if r.isSuccess {
		return r.value
	}
	return other
}

func (r Result[T]) ErrorOrElse(other string) string {
	if !r.isSuccess && r.hasMsg {
		return r.msg
	}
	return other
}

// HasMessage reports whether a failure carries a recoverable message.
func (r Result[T]) HasMessage() bool {
	return !r.isSuccess && r.hasMsg
}

// Err returns the structured payload of a failure, or an error holding the
// observed message when no payload was captured. It is nil on success.
func (r Result[T]) Err() error {
	if r.isSuccess {
		return nil
	}
	if r.err != nil {
		return r.err
	}
	return errors.New(r.ErrorOrElse(MissingErrorMessage))
}

func (r Result[T]) Unwrap() (T, error) {
	return r.value, r.Err()
}

func (r Result[T]) CreatedAt() time.Time {
	return r.createdAt
}

func (r Result[T]) Id() uuid.UUID {
	return r.id
}

func (r Result[T]) LogValue() slog.Value {
	if r.isSuccess {
		return slog.GroupValue(
			slog.Bool("success", true),
			slog.Any("value", r.value),
			slog.String("id", r.id.String()),
		)
	}
	return slog.GroupValue(
		slog.Bool("success", false),
		slog.String("error", r.ErrorOrElse(MissingErrorMessage)),
		slog.String("id", r.id.String()),
	)
}

// Finally collapses r into a plain value. onFailure receives the observed
// message, with MissingErrorMessage standing in for an absent one.
func Finally[T, U any](r Result[T], onSuccess func(T) U, onFailure func(string) U) U {
	if r.isSuccess {
		return onSuccess(r.value)
	}
	return onFailure(r.ErrorOrElse(MissingErrorMessage))
}
