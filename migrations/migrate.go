// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package migrations embeds the SQL schema of the portal and applies it
// with goose. The same migration files run on PostgreSQL and SQLite.
package migrations

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/pressly/goose/v3"
)

//go:embed *.sql
var embedMigrations embed.FS

// Logger receives goose progress output.
type Logger interface {
	Printf(format string, v ...any)
	Fatalf(format string, v ...any)
}

// Migrate applies all pending migrations to db. dialect is the goose dialect
// name matching the driver ("pgx", "postgres" or "sqlite3").
func Migrate(ctx context.Context, db *sql.DB, dialect string, log Logger) error {
	if db == nil {
		return errors.New("migration error: db is nil")
	}

	goose.SetBaseFS(embedMigrations)
	if log != nil {
		goose.SetLogger(log)
	}

	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err := goose.UpContext(ctx, db, "."); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}
