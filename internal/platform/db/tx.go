package db

import (
	"context"
	"database/sql"
	"fmt"
)

// WithTx executes fn inside a transaction. The transaction is rolled back
// unless fn succeeds and the commit goes through, so a derived write is
// never visible without its triggering insert.
func WithTx(ctx context.Context, sdb *sql.DB, fn func(*sql.Tx) error) error {
	tx, err := sdb.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("platform/db: begin tx: %w", err)
	}

	defer func() {
		_ = tx.Rollback()
	}()

	if err := fn(tx); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("platform/db: commit tx: %w", err)
	}

	return nil
}
