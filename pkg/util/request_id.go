package util

import (
	"context"

	"github.com/google/uuid"
)

type key string

const requestIDKey = key("request-id")

// NewRequestID generates a fresh request id for one run of the pipeline.
func NewRequestID() string {
	return uuid.NewString()
}

// ContextWithRequestID returns a context carrying the given request id.
func ContextWithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// GetRequestID returns the request id stored in the context, or an empty
// string when none was set.
func GetRequestID(ctx context.Context) string {
	id, ok := ctx.Value(requestIDKey).(string)
	if !ok {
		return ""
	}
	return id
}
