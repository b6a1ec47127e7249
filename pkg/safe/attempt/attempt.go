package attempt

import (
	"context"
	"errors"
	"fmt"

	perrors "github.com/jmgilman/go/errors"

	"github.com/ib-77/safe/pkg/safe"
)

var ErrNilCall = errors.New("attempt: nil call")

// Attempt invokes call with in and reports the outcome as a Result. A returned
// error becomes a failure holding that error; a panic is recovered into a
// failure whose payload is an EXECUTION_FAILED platform error.
func Attempt[In, Out any](ctx context.Context, call Call[In, Out], in In) (res safe.Result[Out]) {
	if call == nil {
		return safe.FailWith[Out](ErrNilCall.Error(), ErrNilCall)
	}

	defer func() {
		if r := recover(); r != nil {
			res = fromPanic[Out](r)
		}
	}()

	out, err := call(ctx, in)
	if !safe.IsNil(err) {
		return safe.FailErr[Out](err)
	}
	return safe.Success(out)
}

func fromPanic[Out any](r any) safe.Result[Out] {
	msg, ok := renderRecovered(r)

	var payload perrors.PlatformError
	if err, isErr := r.(error); isErr {
		payload = perrors.Wrap(err, perrors.CodeExecutionFailed, "callable panicked")
	} else {
		payload = perrors.WithContext(
			perrors.New(perrors.CodeExecutionFailed, "callable panicked"), "panic", r)
	}

	if !ok {
		return safe.Unrecoverable[Out](payload)
	}
	return safe.FailWith[Out](msg, payload)
}

// renderRecovered is Render for values whose Error or String may panic again.
// Such a value is rendered as its type.
func renderRecovered(r any) (msg string, ok bool) {
	defer func() {
		if recover() != nil {
			msg, ok = fmt.Sprintf("%T", r), true
		}
	}()
	return Render(r)
}

// Render produces the best-effort message for a panic value: an error's own
// message, a string as is, a Stringer's String, and otherwise the value's
// type and identity. ok is false when the rendering is empty.
func Render(r any) (msg string, ok bool) {
	switch v := r.(type) {
	case nil:
		return "", false
	case error:
		return safe.Message(v)
	case string:
		msg = v
	case fmt.Stringer:
		msg = v.String()
	default:
		msg = fmt.Sprintf("%T(%v)", v, v)
	}
	return msg, msg != ""
}
