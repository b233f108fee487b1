package errors

import "github.com/pkg/errors"

// StackTracer is implemented by errors that carry a pkg/errors stack trace.
type StackTracer interface {
	StackTrace() errors.StackTrace
}

// ErrorTracer decorates an error with the stack trace of the point where it
// crossed a layer boundary, so the logger can report where a failed fetch or
// write originated.
type ErrorTracer struct {
	Message string
	Err     error
}

// TracerFromError wraps err, attaching a stack trace unless it already
// carries one.
func TracerFromError(err error) *ErrorTracer {
	wrapped := err
	if _, ok := err.(StackTracer); !ok {
		wrapped = errors.WithStack(err)
	}
	return &ErrorTracer{
		Message: err.Error(),
		Err:     wrapped,
	}
}

func (e *ErrorTracer) Error() string {
	return e.Message
}

func (e *ErrorTracer) Unwrap() error {
	return e.Err
}

// StackTrace returns the stack trace of the underlying error.
func (e *ErrorTracer) StackTrace() errors.StackTrace {
	if tracer, ok := e.Err.(StackTracer); ok {
		return tracer.StackTrace()
	}
	return nil
}
