package handlers

import (
	"context"
	"errors"

	"github.com/sbilibin2017/snake-arena/internal/jwt"
	"github.com/sbilibin2017/snake-arena/internal/logger"
	"github.com/sbilibin2017/snake-arena/internal/middlewares"
	"github.com/sbilibin2017/snake-arena/internal/protocol"
	"github.com/sbilibin2017/snake-arena/internal/services"
)

// errorReply maps a service error onto the fixed reply vocabulary.
// Anything unrecognised is logged and reported as an internal error.
func errorReply(ctx context.Context, err error) string {
	switch {
	case errors.Is(err, services.ErrInvalidCredentials):
		return protocol.Error(protocol.MsgInvalidCredentials)
	case errors.Is(err, services.ErrUserAlreadyExists):
		return protocol.Error(protocol.MsgUserExists)
	case errors.Is(err, services.ErrInvalidScore):
		return protocol.Error(protocol.MsgInvalidScore)
	case errors.Is(err, services.ErrPasswordTooLong):
		return protocol.Error(protocol.MsgInvalidArguments)
	case errors.Is(err, services.ErrProfileNotFound):
		return protocol.Error(protocol.MsgProfileNotFound)
	case errors.Is(err, jwt.ErrTokenExpired):
		return protocol.Error(protocol.MsgTokenExpired)
	case errors.Is(err, jwt.ErrTokenInvalid):
		return protocol.Error(protocol.MsgInvalidToken)
	default:
		logger.Log.Errorw("internal server error",
			"request_id", middlewares.GetRequestIDFromContext(ctx),
			"err", err,
		)
		return protocol.Error(protocol.MsgInternalError)
	}
}

func invalidArguments() string {
	return protocol.Error(protocol.MsgInvalidArguments)
}

// userID reads the id put in ctx by the auth middleware.
func userID(ctx context.Context) (int64, bool) {
	id, ok := middlewares.GetUserIDFromContext(ctx)
	if !ok {
		logger.Log.Errorw("handler reached without authentication",
			"request_id", middlewares.GetRequestIDFromContext(ctx),
		)
	}
	return id, ok
}
