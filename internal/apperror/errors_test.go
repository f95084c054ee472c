package apperror

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestError_IsMatchesByCode(t *testing.T) {
	err := fmt.Errorf("wrap: %w", InvalidArgument("name", "is required"))

	assert.ErrorIs(t, err, ErrInvalidArgument)
	assert.NotErrorIs(t, err, ErrUnauthenticated)
}

func TestError_WithDoesNotMutateReceiver(t *testing.T) {
	base := New(CodeLeagueFull, "full")
	derived := base.With("capacity", 2)

	assert.Nil(t, base.Fields)
	assert.Equal(t, 2, derived.Fields["capacity"])

	again := derived.With("league_id", 1)
	assert.Len(t, derived.Fields, 1)
	assert.Len(t, again.Fields, 2)
}

func TestError_Wrap(t *testing.T) {
	cause := errors.New("entropy source closed")
	err := New(CodeTokenGenerationFailed, "could not generate token").Wrap(cause)

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "could not generate token: entropy source closed", err.Error())
}

func TestStorageCodeOf(t *testing.T) {
	assert.Equal(t, StorageUnknown, StorageCodeOf(nil))
	assert.Equal(t, StorageUniqueViolation, StorageCodeOf(fmt.Errorf("x: %w", &pgconn.PgError{Code: "23505"})))
	assert.Equal(t, StorageUndefinedTable, StorageCodeOf(&pgconn.PgError{Code: "42P01"}))
	assert.Equal(t, StorageUnknown, StorageCodeOf(errors.New("duplicate key value violates unique constraint")))
	assert.True(t, IsUniqueViolation(Persist("insert", &pgconn.PgError{Code: "23505"})))
}

func TestStorageCode_String(t *testing.T) {
	assert.Equal(t, "UNIQUE_VIOLATION", StorageUniqueViolation.String())
	assert.Equal(t, "UNKNOWN", StorageCode(99).String())
}

func TestPersist(t *testing.T) {
	assert.Nil(t, Persist("op", nil))

	err := Persist("insert invite", errors.New("boom"))
	assert.EqualError(t, err, "insert invite failed: boom")
}
