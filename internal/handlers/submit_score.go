package handlers

//go:generate mockgen -source=submit_score.go -destination=mock_submit_score_test.go -package=handlers

import (
	"context"

	"github.com/sbilibin2017/snake-arena/internal/protocol"
)

// ScoreSubmitter defines the interface that the score service must implement.
type ScoreSubmitter interface {
	Submit(ctx context.Context, userID int64, score string) error
}

// NewSubmitScoreHandler handles SUBMIT_SCORE|token|score. The token is consumed by the auth middleware.
func NewSubmitScoreHandler(svc ScoreSubmitter) protocol.HandlerFunc {
	return func(ctx context.Context, args []string) string {
		if len(args) != 1 {
			return invalidArguments()
		}
		uid, ok := userID(ctx)
		if !ok {
			return protocol.Error(protocol.MsgInternalError)
		}

		if err := svc.Submit(ctx, uid, args[0]); err != nil {
			return errorReply(ctx, err)
		}

		return protocol.Success("Score submitted")
	}
}
