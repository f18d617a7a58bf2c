package requestid

import (
	"context"
	"log/slog"
)

type contextKey struct{}

// requestContext is the per-request state attached by Middleware.
type requestContext struct {
	id  string
	log *slog.Logger
}

// WithContext returns a copy of ctx carrying the request id and the logger
// bound to it.
func WithContext(ctx context.Context, requestID string, log *slog.Logger) context.Context {
	return context.WithValue(ctx, contextKey{}, requestContext{id: requestID, log: log})
}

func fromContext(ctx context.Context) (requestContext, bool) {
	if ctx == nil {
		return requestContext{}, false
	}
	rc, ok := ctx.Value(contextKey{}).(requestContext)
	return rc, ok
}

// FromContext returns the request id, or an empty string outside a request.
func FromContext(ctx context.Context) string {
	rc, _ := fromContext(ctx)
	return rc.id
}

// LoggerFromContext returns the logger bound to the request id, or nil.
func LoggerFromContext(ctx context.Context) *slog.Logger {
	rc, _ := fromContext(ctx)
	return rc.log
}

// Logger returns the request's logger, falling back to fallback when ctx
// does not belong to an intercepted request.
func Logger(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if log := LoggerFromContext(ctx); log != nil {
		return log
	}
	return fallback
}
