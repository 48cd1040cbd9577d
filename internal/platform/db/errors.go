package db

import (
	"database/sql"
	"errors"
	"fmt"

	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"

	"github.com/minimart-systems/minimart/internal/platform/httpx"
)

func sqliteCode(err error) int {
	var serr *sqlite.Error
	if errors.As(err, &serr) {
		return serr.Code()
	}
	return 0
}

// IsUniqueViolation reports whether err is a primary-key or unique
// constraint failure.
func IsUniqueViolation(err error) bool {
	code := sqliteCode(err)
	return code == sqlite3.SQLITE_CONSTRAINT_UNIQUE || code == sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY
}

// IsForeignKeyViolation reports whether err is a foreign-key constraint
// failure (missing target on insert, or dependents left behind on delete).
func IsForeignKeyViolation(err error) bool {
	return sqliteCode(err) == sqlite3.SQLITE_CONSTRAINT_FOREIGNKEY
}

// RequireRowMatched turns a zero-rows-affected write into ErrNotFound, for
// updates and deletes addressed by primary key.
func RequireRowMatched(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return httpx.ErrNotFound
	}
	return nil
}

// Translate converts driver errors into the domain sentinels understood by
// httpx.RespondError. Unrecognized errors pass through unchanged.
func Translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, sql.ErrNoRows):
		return httpx.ErrNotFound
	case IsUniqueViolation(err):
		return fmt.Errorf("%w: %s", httpx.ErrDuplicate, err)
	case IsForeignKeyViolation(err):
		return fmt.Errorf("%w: %s", httpx.ErrIntegrity, err)
	default:
		return err
	}
}
