// Package migrations holds the versioned schema for the moodtrack database,
// embedded as goose SQL migrations. Every statement is written with
// IF NOT EXISTS / IF EXISTS guards, so re-running Up against an existing
// schema neither fails nor duplicates objects.
package migrations

import (
	"context"
	"database/sql"
	"embed"

	"github.com/pressly/goose/v3"
)

//go:embed *.sql
var Migrations embed.FS

// Up applies all pending migrations. Goose runs each migration inside a
// transaction, so a failing migration leaves no partial schema behind.
func Up(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(Migrations)
	return goose.UpContext(ctx, db, ".")
}

// Down rolls the schema all the way back, dropping indexes and tables in
// dependency order (children before parents).
func Down(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(Migrations)
	return goose.DownToContext(ctx, db, ".", 0)
}
