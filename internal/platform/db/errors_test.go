package db

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/biztime/biztime/internal/shared"
)

func TestClassify(t *testing.T) {
	msgs := Messages{
		NotFound:  "Company code not found!",
		Conflict:  "company already exists",
		Integrity: "company or industry does not exist",
	}

	tests := []struct {
		name    string
		err     error
		kind    error
		message string
	}{
		{"no rows", pgx.ErrNoRows, shared.ErrNotFound, "Company code not found!"},
		{"wrapped no rows", fmt.Errorf("scan: %w", pgx.ErrNoRows), shared.ErrNotFound, "Company code not found!"},
		{"unique", &pgconn.PgError{Code: CodeUniqueViolation}, shared.ErrConflict, "company already exists"},
		{"foreign key", &pgconn.PgError{Code: CodeForeignKeyViolation}, shared.ErrReferentialIntegrity, "company or industry does not exist"},
		{"not null", &pgconn.PgError{Code: CodeNotNullViolation, ColumnName: "company_code"}, shared.ErrValidation, "Company Code is required"},
		{"too long", &pgconn.PgError{Code: CodeStringTooLong}, shared.ErrValidation, "Field value is invalid"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.err, msgs)
			require.Error(t, got)
			assert.ErrorIs(t, got, tt.kind)
			assert.Equal(t, tt.message, got.Error())
			assert.ErrorIs(t, got, tt.err)
		})
	}
}

func TestClassifyDefaults(t *testing.T) {
	got := Classify(pgx.ErrNoRows, Messages{})
	assert.Equal(t, "record not found", got.Error())

	got = Classify(&pgconn.PgError{Code: CodeUniqueViolation}, Messages{})
	assert.Equal(t, "record already exists", got.Error())
}

func TestClassifyLeavesUnknownErrorsUnclassified(t *testing.T) {
	cause := errors.New("connection reset by peer")
	got := Classify(cause, Messages{})

	require.Error(t, got)
	assert.ErrorIs(t, got, cause)
	for _, kind := range []error{shared.ErrNotFound, shared.ErrConflict, shared.ErrReferentialIntegrity, shared.ErrValidation} {
		assert.NotErrorIs(t, got, kind)
	}

	syntax := Classify(&pgconn.PgError{Code: "42601"}, Messages{})
	assert.NotErrorIs(t, syntax, shared.ErrValidation)
}

func TestClassifyKeepsClassifiedErrors(t *testing.T) {
	original := shared.NewError(shared.ErrNotFound, "industry not found", nil)
	assert.Same(t, original, Classify(original, Messages{NotFound: "other"}))
	assert.NoError(t, Classify(nil, Messages{}))
}

func TestClassifyNamedConstraint(t *testing.T) {
	msgs := Messages{
		Conflict:    "a company with this code already exists",
		Constraints: map[string]string{"companies_name_key": "a company with this name already exists"},
	}

	byName := Classify(&pgconn.PgError{Code: CodeUniqueViolation, ConstraintName: "companies_name_key"}, msgs)
	assert.ErrorIs(t, byName, shared.ErrConflict)
	assert.Equal(t, "a company with this name already exists", byName.Error())

	byKey := Classify(&pgconn.PgError{Code: CodeUniqueViolation, ConstraintName: "companies_pkey"}, msgs)
	assert.Equal(t, "a company with this code already exists", byKey.Error())
}

func TestClassifyDoesNotRepeatPrefix(t *testing.T) {
	cause := errors.New("too many connections")
	once := Classify(cause, Messages{})
	assert.Equal(t, "platform/db: too many connections", once.Error())

	twice := Classify(once, Messages{})
	assert.Equal(t, "platform/db: too many connections", twice.Error())
	assert.ErrorIs(t, twice, cause)
}
