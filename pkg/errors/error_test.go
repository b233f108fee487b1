package errors

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTracerFromError(t *testing.T) {
	t.Run("plain error gains a stack trace", func(t *testing.T) {
		tracer := TracerFromError(stderrors.New("boom"))

		assert.Equal(t, "boom", tracer.Error())
		assert.NotNil(t, tracer.StackTrace())
	})

	t.Run("already traced error is not wrapped again", func(t *testing.T) {
		inner := TracerFromError(stderrors.New("boom"))
		outer := TracerFromError(inner)

		assert.Same(t, inner, outer.Unwrap())
		assert.NotNil(t, outer.StackTrace())
	})

	t.Run("error details survive the wrap", func(t *testing.T) {
		details := NewErrorDetails("quota exceeded", FinmindAPIStatusError, "status")
		tracer := TracerFromError(details)

		assert.True(t, CodeEquals(tracer, FinmindAPIStatusError))

		var unwrapped *ErrorDetails
		require.ErrorAs(t, tracer, &unwrapped)
		assert.Equal(t, "quota exceeded", unwrapped.Message)
	})
}

func TestCodeEquals(t *testing.T) {
	details := NewErrorDetails("no route", FinmindTransportError, "")

	assert.True(t, CodeEquals(details, FinmindTransportError))
	assert.False(t, CodeEquals(details, FinmindDecodeError))
	assert.False(t, CodeEquals(stderrors.New("boom"), FinmindTransportError))
	assert.False(t, CodeEquals(nil, FinmindTransportError))
}
