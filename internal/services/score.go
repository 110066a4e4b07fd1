package services

//go:generate mockgen -source=score.go -destination=mock_score_test.go -package=services

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/snake-arena/internal/logger"
	"github.com/sbilibin2017/snake-arena/internal/models"
)

// LeaderboardSize caps both leaderboards.
const LeaderboardSize = 10

var ErrInvalidScore = errors.New("invalid score")

// ScoreWriter appends score rows.
type ScoreWriter interface {
	Save(ctx context.Context, userID, score int64) error
}

// ScoreReader serves leaderboards and aggregates.
type ScoreReader interface {
	GlobalTop(ctx context.Context, limit int) ([]models.LeaderboardEntry, error)
	LocalTop(ctx context.Context, userID int64, limit int) ([]int64, error)
	Stats(ctx context.Context, userID int64) (*models.Stats, error)
}

// ScorePublisher announces stored scores to the outside world.
type ScorePublisher interface {
	Publish(ctx context.Context, event models.ScoreEvent) error
}

// ScoreService records scores and answers leaderboard queries.
type ScoreService struct {
	reader    ScoreReader
	writer    ScoreWriter
	publisher ScorePublisher
	now       func() time.Time
}

// NewScoreService creates a new ScoreService. publisher may be nil.
func NewScoreService(reader ScoreReader, writer ScoreWriter, publisher ScorePublisher) *ScoreService {
	return &ScoreService{
		reader:    reader,
		writer:    writer,
		publisher: publisher,
		now:       time.Now,
	}
}

// ParseScore accepts a base-10 non-negative integer.
func ParseScore(raw string) (int64, error) {
	score, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || score < 0 {
		return 0, ErrInvalidScore
	}
	return score, nil
}

// Submit validates and stores a score for the user, then publishes a ScoreEvent.
// A failed publish is logged and does not fail the submission.
func (svc *ScoreService) Submit(ctx context.Context, userID int64, raw string) error {
	score, err := ParseScore(raw)
	if err != nil {
		logger.Log.Infow("score rejected", "user_id", userID, "score", raw)
		return err
	}

	if err := svc.writer.Save(ctx, userID, score); err != nil {
		logger.Log.Errorw("failed to save score", "user_id", userID, "err", err)
		return err
	}

	if svc.publisher == nil {
		return nil
	}

	event := models.ScoreEvent{
		EventID:   uuid.New(),
		UserID:    userID,
		Score:     score,
		Timestamp: svc.now().Unix(),
	}
	if err := svc.publisher.Publish(ctx, event); err != nil {
		logger.Log.Warnw("failed to publish score event", "event_id", event.EventID, "err", err)
	}

	return nil
}

// GlobalLeaderboard returns each user's best score, best first.
func (svc *ScoreService) GlobalLeaderboard(ctx context.Context) ([]models.LeaderboardEntry, error) {
	entries, err := svc.reader.GlobalTop(ctx, LeaderboardSize)
	if err != nil {
		logger.Log.Errorw("failed to load global leaderboard", "err", err)
		return nil, err
	}
	return entries, nil
}

// LocalLeaderboard returns the user's own best scores, best first.
func (svc *ScoreService) LocalLeaderboard(ctx context.Context, userID int64) ([]int64, error) {
	scores, err := svc.reader.LocalTop(ctx, userID, LeaderboardSize)
	if err != nil {
		logger.Log.Errorw("failed to load local leaderboard", "user_id", userID, "err", err)
		return nil, err
	}
	return scores, nil
}

// Stats returns the user's score aggregates.
func (svc *ScoreService) Stats(ctx context.Context, userID int64) (*models.Stats, error) {
	stats, err := svc.reader.Stats(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to load stats", "user_id", userID, "err", err)
		return nil, err
	}
	return stats, nil
}
