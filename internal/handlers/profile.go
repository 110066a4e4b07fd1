package handlers

//go:generate mockgen -source=profile.go -destination=mock_profile_test.go -package=handlers

import (
	"context"
	"strconv"

	"github.com/sbilibin2017/snake-arena/internal/models"
	"github.com/sbilibin2017/snake-arena/internal/protocol"
)

const ProfilePrefix = "PROFILE"

// ProfileUpdater defines the interface for editing the caller's profile.
type ProfileUpdater interface {
	Update(ctx context.Context, userID int64, username, email string) error
}

// ProfileGetter defines the interface for reading the caller's profile.
type ProfileGetter interface {
	Get(ctx context.Context, userID int64) (*models.Profile, error)
}

// NewUpdateProfileHandler handles UPDATE_PROFILE|token|new_username|new_email.
func NewUpdateProfileHandler(svc ProfileUpdater) protocol.HandlerFunc {
	return func(ctx context.Context, args []string) string {
		if len(args) != 2 {
			return invalidArguments()
		}
		uid, ok := userID(ctx)
		if !ok {
			return protocol.Error(protocol.MsgInternalError)
		}

		if err := svc.Update(ctx, uid, args[0], args[1]); err != nil {
			return errorReply(ctx, err)
		}

		return protocol.Success("Profile updated")
	}
}

// NewGetProfileHandler handles GET_PROFILE|token.
func NewGetProfileHandler(svc ProfileGetter) protocol.HandlerFunc {
	return func(ctx context.Context, args []string) string {
		if len(args) != 0 {
			return invalidArguments()
		}
		uid, ok := userID(ctx)
		if !ok {
			return protocol.Error(protocol.MsgInternalError)
		}

		p, err := svc.Get(ctx, uid)
		if err != nil {
			return errorReply(ctx, err)
		}

		return protocol.Encode(ProfilePrefix,
			p.Username,
			p.Email,
			strconv.FormatInt(p.TotalGames, 10),
			strconv.FormatInt(p.Highest, 10),
		)
	}
}
