package try

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"runtime"
)

// Normalize converts an arbitrary failure value into an error. Values that
// already are errors pass through unchanged, preserving their identity and
// wrapping chain; anything else is stringified into a new generic error.
// Normalize is total: it never panics and never returns nil.
func Normalize(v any) error {
	if IsNil(v) {
		return errors.New("unknown error")
	}
	if err, ok := v.(error); ok {
		return err
	}
	return errors.New(fmt.Sprint(v))
}

// Message returns the human-readable message of Normalize(v).
func Message(v any) string {
	return Normalize(v).Error()
}

// PanicError wraps a value recovered from a panicking operation together
// with the goroutine stack trace captured at the point of recovery.
type PanicError struct {
	// Value is the original value passed to panic().
	Value any

	// Stack is the goroutine stack trace at the point of panic.
	Stack string
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("panic: %v\n\n%s", e.Value, e.Stack)
}

// Unwrap returns the panic value when it was itself an error, nil otherwise.
func (e *PanicError) Unwrap() error {
	if err, ok := e.Value.(error); ok {
		return err
	}
	return nil
}

// NewPanicError captures the current stack and wraps the recovered value.
func NewPanicError(v any) *PanicError {
	// 8 KiB is enough for most stack traces. runtime.Stack truncates
	// gracefully if the buffer is too small.
	buf := make([]byte, 8192)
	n := runtime.Stack(buf, false)
	return &PanicError{
		Value: v,
		Stack: string(buf[:n]),
	}
}

func IsNil(i interface{}) bool {
	if i == nil || (reflect.ValueOf(i).Kind() == reflect.Ptr && reflect.ValueOf(i).IsNil()) {
		return true
	}
	return false
}

// Errs flattens an error into its joined parts, if any.
func Errs(err error) []error {
	if IsNil(err) {
		return []error{}
	}

	e, ok := err.(interface{ Unwrap() []error })
	if ok {
		return e.Unwrap()
	}

	return []error{err}
}

func IsCancellation(err error) bool {
	return errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled)
}
