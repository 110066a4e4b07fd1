package handlers

//go:generate mockgen -source=login.go -destination=mock_login_test.go -package=handlers

import (
	"context"

	"github.com/sbilibin2017/snake-arena/internal/protocol"
)

// Loginer defines the interface that the login service must implement.
type Loginer interface {
	Login(ctx context.Context, username, password string) (string, error)
}

// NewLoginHandler handles LOGIN|username|password and replies with a session token.
func NewLoginHandler(svc Loginer) protocol.HandlerFunc {
	return func(ctx context.Context, args []string) string {
		if len(args) != 2 {
			return invalidArguments()
		}

		token, err := svc.Login(ctx, args[0], args[1])
		if err != nil {
			return errorReply(ctx, err)
		}

		return protocol.Success(token)
	}
}
