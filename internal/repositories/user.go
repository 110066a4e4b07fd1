package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/sbilibin2017/snake-arena/internal/executor"
	"github.com/sbilibin2017/snake-arena/internal/models"
)

type UserReadRepository struct {
	exec Executor
}

func NewUserReadRepository(exec Executor) *UserReadRepository {
	return &UserReadRepository{exec: exec}
}

// GetByUsername returns the user with the given username, or nil if there is none.
func (r *UserReadRepository) GetByUsername(ctx context.Context, username string) (*models.UserDB, error) {
	const query = `
		SELECT id, username, password_hash, email
		FROM users
		WHERE username = ?
	`
	return r.getOne(ctx, query, username)
}

// GetByID returns the user with the given id, or nil if there is none.
func (r *UserReadRepository) GetByID(ctx context.Context, userID int64) (*models.UserDB, error) {
	const query = `
		SELECT id, username, password_hash, email
		FROM users
		WHERE id = ?
	`
	return r.getOne(ctx, query, userID)
}

func (r *UserReadRepository) getOne(ctx context.Context, query string, arg any) (*models.UserDB, error) {
	var user models.UserDB
	_, err := r.exec.Execute(ctx, executor.FetchOne, &user, query, arg)

	logQuery(query, []any{arg}, user.UserID, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &user, nil
}

type UserWriteRepository struct {
	exec Executor
}

func NewUserWriteRepository(exec Executor) *UserWriteRepository {
	return &UserWriteRepository{exec: exec}
}

// Save inserts a new user. A taken username or email yields ErrUniqueViolation.
func (r *UserWriteRepository) Save(ctx context.Context, username string, passwordHash []byte, email string) error {
	const query = `
		INSERT INTO users (username, password_hash, email)
		VALUES (?, ?, ?)
	`

	res, err := r.exec.Execute(ctx, executor.FetchNone, nil, query, username, passwordHash, email)

	// The hash stays out of the log.
	logQuery(query, []any{username, email}, rowsAffected(res), err)

	return mapWriteError(err)
}

// Update overwrites username and email of the user.
func (r *UserWriteRepository) Update(ctx context.Context, userID int64, username, email string) error {
	const query = `
		UPDATE users
		SET username = ?, email = ?
		WHERE id = ?
	`
	args := []any{username, email, userID}

	res, err := r.exec.Execute(ctx, executor.FetchNone, nil, query, args...)

	logQuery(query, args, rowsAffected(res), err)

	return mapWriteError(err)
}

func mapWriteError(err error) error {
	if err != nil && executor.IsUniqueViolation(err) {
		return fmt.Errorf("%w: %v", ErrUniqueViolation, err)
	}
	return err
}

func rowsAffected(res sql.Result) int64 {
	if res == nil {
		return 0
	}
	n, _ := res.RowsAffected()
	return n
}
