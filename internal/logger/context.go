package logger

import (
	"context"

	"github.com/google/uuid"
)

type (
	requestIDKey struct{}
	loggerKey    struct{}
)

// WithRequestID stores the request id on ctx, generating one when empty
func WithRequestID(ctx context.Context, requestID string) context.Context {
	if requestID == "" {
		requestID = uuid.NewString()
	}
	return context.WithValue(ctx, requestIDKey{}, requestID)
}

// RequestIDFromContext returns the request id, or "" outside a request
func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}

// WithLogger stores l on ctx
func WithLogger(ctx context.Context, l Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, l)
}

// FromContext returns the logger stored on ctx, or Default()
func FromContext(ctx context.Context) Logger {
	if l, ok := ctx.Value(loggerKey{}).(Logger); ok {
		return l
	}
	return Default()
}

// Ctx is FromContext(ctx) tagged with the request id
func Ctx(ctx context.Context) Logger {
	return FromContext(ctx).WithContext(ctx)
}
