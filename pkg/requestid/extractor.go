package requestid

import (
	"context"
	"log/slog"

	"github.com/dmitrymomot/servekit/pkg/logger"
)

// LoggerExtractor returns a ContextExtractor for the logger, so that loggers
// which are not request-bound still tag records logged with a request context.
func LoggerExtractor() logger.ContextExtractor {
	return func(ctx context.Context) (slog.Attr, bool) {
		if requestID := FromContext(ctx); requestID != "" {
			return logger.RequestID(requestID), true
		}
		return slog.Attr{}, false
	}
}
