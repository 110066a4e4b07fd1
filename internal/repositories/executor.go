package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/sbilibin2017/snake-arena/internal/executor"
	"github.com/sbilibin2017/snake-arena/internal/logger"
)

// ErrUniqueViolation is returned when a write collides with an existing username or email.
var ErrUniqueViolation = errors.New("unique constraint violated")

// Executor runs a single statement against storage.
// *executor.Executor is the production implementation.
type Executor interface {
	Execute(ctx context.Context, mode executor.FetchMode, dest any, query string, args ...any) (sql.Result, error)
}

// logQuery logs the statement on one line together with its args, result and error.
func logQuery(query string, args []any, result any, err error) {
	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", result,
		"error", err,
	)
}
