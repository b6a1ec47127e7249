package safe

import (
	"context"
	"errors"
	"reflect"
)

func IsNil(i interface{}) bool {
	if i == nil {
		return true
	}
	v := reflect.ValueOf(i)
	switch v.Kind() {
	case reflect.Ptr, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return v.IsNil()
	}
	return false
}

// Message renders err as a failure message. ok is false when err is nil or
// renders to an empty string.
func Message(err error) (msg string, ok bool) {
	if IsNil(err) {
		return "", false
	}
	msg = err.Error()
	return msg, msg != ""
}

func IsCancellationError(err error) bool {
	return errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled)
}
