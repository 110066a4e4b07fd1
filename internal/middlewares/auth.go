package middlewares

//go:generate mockgen -source=auth.go -destination=mock_auth_test.go -package=middlewares

import (
	"context"
	"errors"

	"github.com/sbilibin2017/snake-arena/internal/jwt"
	"github.com/sbilibin2017/snake-arena/internal/logger"
	"github.com/sbilibin2017/snake-arena/internal/protocol"
)

// TokenVerifier defines the minimal interface needed by the middleware
type TokenVerifier interface {
	GetUserID(ctx context.Context, tokenString string) (int64, error)
}

// AuthMiddleware returns a middleware that takes the session token from the
// first argument, verifies it and hands the remaining arguments to next with
// the user id stored in the context.
func AuthMiddleware(verifier TokenVerifier) protocol.Middleware {
	return func(next protocol.HandlerFunc) protocol.HandlerFunc {
		return func(ctx context.Context, args []string) string {
			if len(args) == 0 {
				return protocol.Error(protocol.MsgInvalidArguments)
			}

			userID, err := verifier.GetUserID(ctx, args[0])
			if err != nil {
				logger.Log.Infow("authorization failed", "err", err)
				if errors.Is(err, jwt.ErrTokenExpired) {
					return protocol.Error(protocol.MsgTokenExpired)
				}
				return protocol.Error(protocol.MsgInvalidToken)
			}

			return next(setUserIDToContext(ctx, userID), args[1:])
		}
	}
}

// contextKey is an unexported type for keys in context
type contextKey struct{ name string }

var userIDKey = contextKey{"user_id"}

func setUserIDToContext(ctx context.Context, userID int64) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

// GetUserIDFromContext returns the authenticated user id. ok is false outside AuthMiddleware.
func GetUserIDFromContext(ctx context.Context) (userID int64, ok bool) {
	userID, ok = ctx.Value(userIDKey).(int64)
	return userID, ok
}
