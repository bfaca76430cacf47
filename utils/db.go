package utils

import (
	"github.com/mattn/go-sqlite3"
)

// IsUniqueViolation reports whether err is a primary-key or unique
// constraint failure. Duplicate-id creates surface as 409 Conflict, which
// the incremental seeding client relies on to tell "already migrated" from
// a real failure.
func IsUniqueViolation(err error) bool {
	if sqliteErr, ok := err.(sqlite3.Error); ok {
		return sqliteErr.ExtendedCode == sqlite3.ErrConstraintPrimaryKey ||
			sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique
	}
	return false
}
