package repositories

import (
	"context"

	"github.com/sbilibin2017/snake-arena/internal/executor"
	"github.com/sbilibin2017/snake-arena/internal/models"
)

// ScoreWriteRepository appends score rows.
type ScoreWriteRepository struct {
	exec Executor
}

func NewScoreWriteRepository(exec Executor) *ScoreWriteRepository {
	return &ScoreWriteRepository{exec: exec}
}

func (r *ScoreWriteRepository) Save(ctx context.Context, userID, score int64) error {
	const query = `
		INSERT INTO scores (user_id, score)
		VALUES (?, ?)
	`
	args := []any{userID, score}

	res, err := r.exec.Execute(ctx, executor.FetchNone, nil, query, args...)

	logQuery(query, args, rowsAffected(res), err)

	return err
}

// ScoreReadRepository serves leaderboards and per-user aggregates.
type ScoreReadRepository struct {
	exec Executor
}

func NewScoreReadRepository(exec Executor) *ScoreReadRepository {
	return &ScoreReadRepository{exec: exec}
}

// GlobalTop returns the best score of every user that has one, best first.
func (r *ScoreReadRepository) GlobalTop(ctx context.Context, limit int) ([]models.LeaderboardEntry, error) {
	const query = `
		SELECT u.username AS username, MAX(s.score) AS score
		FROM scores s
		JOIN users u ON u.id = s.user_id
		GROUP BY s.user_id, u.username
		ORDER BY score DESC
		LIMIT ?
	`

	var entries []models.LeaderboardEntry
	_, err := r.exec.Execute(ctx, executor.FetchAll, &entries, query, limit)

	logQuery(query, []any{limit}, len(entries), err)

	if err != nil {
		return nil, err
	}
	return entries, nil
}

// LocalTop returns the user's own best scores, best first.
func (r *ScoreReadRepository) LocalTop(ctx context.Context, userID int64, limit int) ([]int64, error) {
	const query = `
		SELECT score
		FROM scores
		WHERE user_id = ?
		ORDER BY score DESC
		LIMIT ?
	`
	args := []any{userID, limit}

	var scores []int64
	_, err := r.exec.Execute(ctx, executor.FetchAll, &scores, query, args...)

	logQuery(query, args, len(scores), err)

	if err != nil {
		return nil, err
	}
	return scores, nil
}

// Stats returns highest score, game count and mean score of the user.
func (r *ScoreReadRepository) Stats(ctx context.Context, userID int64) (*models.Stats, error) {
	const query = `
		SELECT
			COALESCE(MAX(score), 0) AS highest,
			COUNT(*) AS total_games,
			CAST(COALESCE(AVG(score), 0) AS DOUBLE PRECISION) AS average
		FROM scores
		WHERE user_id = ?
	`

	var stats models.Stats
	_, err := r.exec.Execute(ctx, executor.FetchOne, &stats, query, userID)

	logQuery(query, []any{userID}, stats, err)

	if err != nil {
		return nil, err
	}
	return &stats, nil
}
