package sqlite

import (
	"database/sql"
	"errors"

	sqlite3 "modernc.org/sqlite"
)

// sqlite primary result codes
const (
	codeConstraint           = 19
	codeConstraintForeignKey = 787 // SQLITE_CONSTRAINT_FOREIGNKEY
)

// IsNoRowsError checks if error is a "no rows" error
func IsNoRowsError(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}

// IsConstraintError checks if error is any constraint violation
func IsConstraintError(err error) bool {
	var se *sqlite3.Error
	if errors.As(err, &se) {
		return se.Code()&0xff == codeConstraint
	}
	return false
}

// IsForeignKeyError checks if error is a foreign key violation
func IsForeignKeyError(err error) bool {
	var se *sqlite3.Error
	if errors.As(err, &se) {
		return se.Code() == codeConstraintForeignKey
	}
	return false
}
