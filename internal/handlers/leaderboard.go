package handlers

//go:generate mockgen -source=leaderboard.go -destination=mock_leaderboard_test.go -package=handlers

import (
	"context"
	"strconv"

	"github.com/sbilibin2017/snake-arena/internal/models"
	"github.com/sbilibin2017/snake-arena/internal/protocol"
)

// Reply prefixes of the leaderboard commands.
const (
	GlobalLeaderboardPrefix = "GLOBAL_LEADERBOARD"
	LocalLeaderboardPrefix  = "LOCAL_LEADERBOARD"
)

// GlobalLeaderboarder defines the interface for reading the global leaderboard.
type GlobalLeaderboarder interface {
	GlobalLeaderboard(ctx context.Context) ([]models.LeaderboardEntry, error)
}

// LocalLeaderboarder defines the interface for reading a user's own best scores.
type LocalLeaderboarder interface {
	LocalLeaderboard(ctx context.Context, userID int64) ([]int64, error)
}

// NewGlobalLeaderboardHandler handles GLOBAL_LEADERBOARD. Any arguments are ignored.
func NewGlobalLeaderboardHandler(svc GlobalLeaderboarder) protocol.HandlerFunc {
	return func(ctx context.Context, args []string) string {
		entries, err := svc.GlobalLeaderboard(ctx)
		if err != nil {
			return errorReply(ctx, err)
		}

		fields := make([]string, 0, len(entries))
		for _, e := range entries {
			fields = append(fields, e.Username+":"+strconv.FormatInt(e.Score, 10))
		}

		return encodeList(GlobalLeaderboardPrefix, fields)
	}
}

// NewLocalLeaderboardHandler handles LOCAL_LEADERBOARD|token.
func NewLocalLeaderboardHandler(svc LocalLeaderboarder) protocol.HandlerFunc {
	return func(ctx context.Context, args []string) string {
		if len(args) != 0 {
			return invalidArguments()
		}
		uid, ok := userID(ctx)
		if !ok {
			return protocol.Error(protocol.MsgInternalError)
		}

		scores, err := svc.LocalLeaderboard(ctx, uid)
		if err != nil {
			return errorReply(ctx, err)
		}

		fields := make([]string, 0, len(scores))
		for _, s := range scores {
			fields = append(fields, strconv.FormatInt(s, 10))
		}

		return encodeList(LocalLeaderboardPrefix, fields)
	}
}

// encodeList keeps the separator after the prefix even for an empty list.
func encodeList(prefix string, fields []string) string {
	if len(fields) == 0 {
		return protocol.Encode(prefix, "")
	}
	return protocol.Encode(prefix, fields...)
}
