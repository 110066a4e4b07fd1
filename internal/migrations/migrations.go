// Package migrations holds the embedded schema for every supported driver.
package migrations

import (
	"context"
	"database/sql"
	"embed"
	"fmt"

	"github.com/pressly/goose/v3"
	"github.com/sbilibin2017/snake-arena/internal/logger"
)

//go:embed sqlite/*.sql postgres/*.sql
var Migrations embed.FS

// Driver names as registered with database/sql.
const (
	driverSQLite = "sqlite"
	driverPgx    = "pgx"
)

type gooseLogger struct{}

func (gooseLogger) Printf(format string, v ...interface{}) { logger.Log.Infof(format, v...) }
func (gooseLogger) Fatalf(format string, v ...interface{}) { logger.Log.Fatalf(format, v...) }

// Up applies every pending migration for driver to db.
func Up(ctx context.Context, db *sql.DB, driver string) error {
	var dialect, dir string
	switch driver {
	case driverSQLite:
		dialect, dir = "sqlite3", "sqlite"
	case driverPgx:
		dialect, dir = "postgres", "postgres"
	default:
		return fmt.Errorf("no migrations for driver %q", driver)
	}

	goose.SetBaseFS(Migrations)
	goose.SetLogger(gooseLogger{})

	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	if err := goose.UpContext(ctx, db, dir); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	return nil
}
