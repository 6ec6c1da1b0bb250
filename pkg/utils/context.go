package utils

import (
	"context"
)

type contextKey string

const (
	RequestIDKey contextKey = "request_id"
)

// SetRequestIDContext attaches the request id to the context.
func SetRequestIDContext(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, RequestIDKey, requestID)
}

// GetRequestIDFromContext returns the request id attached by the
// middleware, if any.
func GetRequestIDFromContext(ctx context.Context) (string, bool) {
	requestIDVal := ctx.Value(RequestIDKey)
	if requestIDVal == nil {
		return "", false
	}

	requestID, ok := requestIDVal.(string)
	return requestID, ok
}
