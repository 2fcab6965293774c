// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package migrations

import (
	"context"
	"database/sql"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrate_DBError(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	err = Migrate(context.Background(), db, "pgx", nil)
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "migration error"), err.Error())
}

func TestMigrate_NilDB(t *testing.T) {
	var db *sql.DB

	err := Migrate(context.Background(), db, "pgx", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "db is nil")
}

func TestMigrate_UnknownDialect(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	err = Migrate(context.Background(), db, "oracle", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "setting dialect")
}

func TestMigrate_SQLite(t *testing.T) {
	db, err := sql.Open("sqlite3", "file::memory:?_foreign_keys=on")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	defer db.Close()

	ctx := context.Background()
	require.NoError(t, Migrate(ctx, db, "sqlite3", nil))

	// running twice is a no-op
	require.NoError(t, Migrate(ctx, db, "sqlite3", nil))

	var days int
	require.NoError(t, db.QueryRowContext(ctx, "SELECT COUNT(*) FROM meal_plan").Scan(&days))
	assert.Equal(t, 5, days)

	require.NoError(t, db.QueryRowContext(ctx, "SELECT COUNT(*) FROM duty_schedule").Scan(&days))
	assert.Equal(t, 7, days)

	var emergency string
	require.NoError(t, db.QueryRowContext(ctx, "SELECT emergency_phone FROM portal_contact WHERE id = 1").Scan(&emergency))
	assert.Equal(t, "+41 44 987 65 43", emergency)

	for _, table := range []string{"users", "credentials", "sessions", "record_views", "record_votes",
		"bulletin_posts", "tickets", "ticket_comments", "ticket_assignees", "reminders",
		"food_items", "meal_payments", "wishlist_items", "portal_contact", "duty_schedule"} {
		_, err := db.ExecContext(ctx, "SELECT 1 FROM "+table+" LIMIT 1")
		assert.NoError(t, err, table)
	}
}
