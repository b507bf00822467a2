package requestid

import (
	"context"
	"log/slog"

	"github.com/dmitrymomot/flashbag/pkg/logger"
)

// LoggerExtractor adds the request ID to log records written with a request
// context.
func LoggerExtractor() logger.ContextExtractor {
	return func(ctx context.Context) (slog.Attr, bool) {
		if id := FromContext(ctx); id != "" {
			return logger.RequestID(id), true
		}
		return slog.Attr{}, false
	}
}
