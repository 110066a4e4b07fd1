package handlers

//go:generate mockgen -source=signup.go -destination=mock_signup_test.go -package=handlers

import (
	"context"

	"github.com/sbilibin2017/snake-arena/internal/protocol"
)

// Registerer defines the interface that the registration service must implement.
type Registerer interface {
	Register(ctx context.Context, username, password, email string) error
}

// NewSignupHandler handles SIGNUP|username|password|email.
func NewSignupHandler(svc Registerer) protocol.HandlerFunc {
	return func(ctx context.Context, args []string) string {
		if len(args) != 3 {
			return invalidArguments()
		}

		if err := svc.Register(ctx, args[0], args[1], args[2]); err != nil {
			return errorReply(ctx, err)
		}

		return protocol.Success("User registered")
	}
}
