// Package storage opens the durable comment store and applies the embedded
// schema migrations. The store location is a single setting: a plain path
// means a local SQLite file, a postgres:// DSN selects PostgreSQL.
package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/FacuGhub/telegram-bot/internal/bot/comments"
	"github.com/FacuGhub/telegram-bot/internal/bot/migrations"
	"github.com/pressly/goose/v3"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"
)

// Open connects to the store described by dsn, runs migrations and returns
// the database handle together with the matching repository implementation.
// The caller owns the handle and must close it on shutdown.
func Open(ctx context.Context, dsn string) (*sql.DB, comments.Repository, error) {
	if isPostgres(dsn) {
		return openPostgres(ctx, dsn)
	}
	return openSQLite(ctx, dsn)
}

func isPostgres(dsn string) bool {
	return strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://")
}

func openSQLite(ctx context.Context, path string) (*sql.DB, comments.Repository, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil && !errors.Is(err, os.ErrExist) {
			return nil, nil, fmt.Errorf("create store dir: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, nil, fmt.Errorf("open sqlite: %w", err)
	}
	if err := runMigrations(ctx, db, "sqlite3", "sqlite"); err != nil {
		_ = db.Close()
		return nil, nil, err
	}
	return db, comments.NewSQLiteRepository(db), nil
}

func openPostgres(ctx context.Context, dsn string) (*sql.DB, comments.Repository, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, nil, fmt.Errorf("open postgres: %w", err)
	}
	if err := runMigrations(ctx, db, "pgx", "postgres"); err != nil {
		_ = db.Close()
		return nil, nil, err
	}
	return db, comments.NewPostgresRepository(db), nil
}

// runMigrations sets up goose with the embedded migrations for the given
// dialect and applies them. Safe to run on every start.
func runMigrations(ctx context.Context, db *sql.DB, dialect, dir string) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("set goose dialect: %w", err)
	}
	if err := goose.UpContext(ctx, db, dir); err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}
	return nil
}
