// Package testutil provides shared test fixtures.
package testutil

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/minimart-systems/minimart/internal/platform/db"
)

// NewDB opens a throwaway SQLite store in a temp directory with the full
// schema applied. The file is removed with the test's temp dir.
func NewDB(t *testing.T) *sql.DB {
	t.Helper()

	sdb, err := db.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	t.Cleanup(func() { sdb.Close() })

	if err := db.Migrate(context.Background(), sdb); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	return sdb
}

// Exec runs a statement, failing the test on error. Useful for fixture rows.
func Exec(t *testing.T, sdb *sql.DB, query string, args ...any) {
	t.Helper()
	if _, err := sdb.ExecContext(context.Background(), query, args...); err != nil {
		t.Fatalf("exec %q: %v", query, err)
	}
}
