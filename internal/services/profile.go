package services

import (
	"context"
	"errors"

	"github.com/sbilibin2017/snake-arena/internal/logger"
	"github.com/sbilibin2017/snake-arena/internal/models"
	"github.com/sbilibin2017/snake-arena/internal/repositories"
)

var ErrProfileNotFound = errors.New("profile not found")

// ProfileService reads and edits the caller's own profile.
type ProfileService struct {
	users  UserReader
	writer UserWriter
	scores ScoreReader
}

func NewProfileService(users UserReader, writer UserWriter, scores ScoreReader) *ProfileService {
	return &ProfileService{
		users:  users,
		writer: writer,
		scores: scores,
	}
}

// Update overwrites username and email of the user.
func (svc *ProfileService) Update(ctx context.Context, userID int64, username, email string) error {
	if err := svc.writer.Update(ctx, userID, username, email); err != nil {
		if errors.Is(err, repositories.ErrUniqueViolation) {
			logger.Log.Infow("profile update collides", "user_id", userID, "username", username, "email", email)
			return ErrUserAlreadyExists
		}
		logger.Log.Errorw("failed to update profile", "user_id", userID, "err", err)
		return err
	}
	return nil
}

// Get returns the user's profile with game count and best score.
func (svc *ProfileService) Get(ctx context.Context, userID int64) (*models.Profile, error) {
	user, err := svc.users.GetByID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to get user", "user_id", userID, "err", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrProfileNotFound
	}

	stats, err := svc.scores.Stats(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to load stats", "user_id", userID, "err", err)
		return nil, err
	}

	return &models.Profile{
		Username:   user.Username,
		Email:      user.Email,
		TotalGames: stats.TotalGames,
		Highest:    stats.Highest,
	}, nil
}
