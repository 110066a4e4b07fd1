package middlewares

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/snake-arena/internal/protocol"
	"go.uber.org/zap"
)

var requestIDKey = contextKey{"request_id"}

// LoggingMiddleware returns a middleware that logs every request and its reply status.
// It also generates a unique request ID for each request.
// Arguments are not logged since they carry passwords and tokens.
func LoggingMiddleware(log *zap.SugaredLogger) protocol.Middleware {
	return func(next protocol.HandlerFunc) protocol.HandlerFunc {
		return func(ctx context.Context, args []string) string {
			reqID := uuid.New().String()
			start := time.Now()

			req, _ := protocol.RequestFromContext(ctx)
			ctx = context.WithValue(ctx, requestIDKey, reqID)

			reply := next(ctx, args)

			log.Infow("request",
				"request_id", reqID,
				"command", req.Command,
				"args", len(args),
				"status", protocol.Status(reply),
				"duration", time.Since(start),
			)

			return reply
		}
	}
}

// GetRequestIDFromContext returns the id assigned by LoggingMiddleware, or "".
func GetRequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}
