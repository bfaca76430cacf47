// Package testsupport wires an in-memory SQLite database through the real
// goose migrations for package tests.
package testsupport

import (
	"testing"

	"school-cms/config"
	"school-cms/migrations"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
)

// NewTestDB opens an in-memory database, applies the migrations and
// installs it as the shared handle. The single-connection limit keeps the
// in-memory database alive for the whole test.
func NewTestDB(t *testing.T) *sqlx.DB {
	t.Helper()

	db, err := sqlx.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("open sqlite db: %v", err)
	}
	db.SetMaxOpenConns(1)

	if err := migrations.Up(db.DB); err != nil {
		t.Fatalf("run migrations: %v", err)
	}

	config.DB = db
	t.Cleanup(func() {
		_ = db.Close()
	})
	return db
}
