package apperror

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
	"gorm.io/gorm"
)

// StorageCode classifies an error reported by the storage engine.
type StorageCode int

// Storage error classes.
const (
	StorageUnknown StorageCode = iota
	StorageUniqueViolation
	StorageForeignKeyViolation
	StorageNotNullViolation
	StorageCheckViolation
	StorageUndefinedTable
	StorageUndefinedColumn
	StorageSerializationFailure
	StorageDeadlock
)

// String returns the stable name of the class.
func (c StorageCode) String() string {
	switch c {
	case StorageUniqueViolation:
		return "UNIQUE_VIOLATION"
	case StorageForeignKeyViolation:
		return "FOREIGN_KEY_VIOLATION"
	case StorageNotNullViolation:
		return "NOT_NULL_VIOLATION"
	case StorageCheckViolation:
		return "CHECK_VIOLATION"
	case StorageUndefinedTable:
		return "UNDEFINED_TABLE"
	case StorageUndefinedColumn:
		return "UNDEFINED_COLUMN"
	case StorageSerializationFailure:
		return "SERIALIZATION_FAILURE"
	case StorageDeadlock:
		return "DEADLOCK"
	default:
		return "UNKNOWN"
	}
}

// PostgreSQL SQLSTATE values.
const (
	pgUniqueViolation      = "23505"
	pgForeignKeyViolation  = "23503"
	pgNotNullViolation     = "23502"
	pgCheckViolation       = "23514"
	pgUndefinedTable       = "42P01"
	pgUndefinedColumn      = "42703"
	pgSerializationFailure = "40001"
	pgDeadlockDetected     = "40P01"
)

var pgCodes = map[string]StorageCode{
	pgUniqueViolation:      StorageUniqueViolation,
	pgForeignKeyViolation:  StorageForeignKeyViolation,
	pgNotNullViolation:     StorageNotNullViolation,
	pgCheckViolation:       StorageCheckViolation,
	pgUndefinedTable:       StorageUndefinedTable,
	pgUndefinedColumn:      StorageUndefinedColumn,
	pgSerializationFailure: StorageSerializationFailure,
	pgDeadlockDetected:     StorageDeadlock,
}

// StorageCodeOf inspects err for an engine-reported error code.
// Message text is consulted only for SQLite schema errors, which carry the
// generic SQLITE_ERROR code.
func StorageCodeOf(err error) StorageCode {
	if err == nil {
		return StorageUnknown
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgCodes[pgErr.Code]
	}

	var liteErr sqlite3.Error
	if errors.As(err, &liteErr) {
		return sqliteCode(liteErr)
	}

	switch {
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return StorageUniqueViolation
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return StorageForeignKeyViolation
	}

	return StorageUnknown
}

func sqliteCode(err sqlite3.Error) StorageCode {
	switch err.ExtendedCode {
	case sqlite3.ErrConstraintUnique, sqlite3.ErrConstraintPrimaryKey:
		return StorageUniqueViolation
	case sqlite3.ErrConstraintForeignKey:
		return StorageForeignKeyViolation
	case sqlite3.ErrConstraintNotNull:
		return StorageNotNullViolation
	case sqlite3.ErrConstraintCheck:
		return StorageCheckViolation
	}

	switch err.Code {
	case sqlite3.ErrBusy, sqlite3.ErrLocked:
		return StorageSerializationFailure
	case sqlite3.ErrError:
		msg := err.Error()
		switch {
		case strings.HasPrefix(msg, "no such table"):
			return StorageUndefinedTable
		case strings.HasPrefix(msg, "no such column"):
			return StorageUndefinedColumn
		}
	}

	return StorageUnknown
}

// IsUniqueViolation reports whether err is a unique-constraint violation.
func IsUniqueViolation(err error) bool {
	return StorageCodeOf(err) == StorageUniqueViolation
}

// PersistenceError wraps a failed write. It is the generic "update failed"
// layer the classifier peels off before inspecting engine codes.
type PersistenceError struct {
	Op  string
	Err error
}

// Persist wraps err as a PersistenceError for op. A nil err stays nil.
func Persist(op string, err error) error {
	if err == nil {
		return nil
	}
	return &PersistenceError{Op: op, Err: err}
}

// Error implements the error interface.
func (e *PersistenceError) Error() string {
	return e.Op + " failed: " + e.Err.Error()
}

// Unwrap returns the engine error.
func (e *PersistenceError) Unwrap() error {
	return e.Err
}
