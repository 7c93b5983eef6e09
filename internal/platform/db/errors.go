package db

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/biztime/biztime/internal/shared"
)

// SQLSTATE codes classified by Classify.
const (
	CodeUniqueViolation     = "23505"
	CodeForeignKeyViolation = "23503"
	CodeNotNullViolation    = "23502"
	CodeCheckViolation      = "23514"
	CodeStringTooLong       = "22001"
)

// Messages holds the client-facing text used for each classified kind.
// Empty fields fall back to generic wording. Constraints overrides the text
// for violations of a named constraint.
type Messages struct {
	NotFound    string
	Conflict    string
	Integrity   string
	Constraints map[string]string
}

// Classify converts a driver error into a classified shared.Error. Errors it
// cannot classify are returned wrapped, unclassified, as data access failures.
func Classify(err error, msgs Messages) error {
	if err == nil {
		return nil
	}

	var classified *shared.Error
	if errors.As(err, &classified) {
		return err
	}

	if errors.Is(err, pgx.ErrNoRows) {
		return shared.NewError(shared.ErrNotFound, orDefault(msgs.NotFound, "record not found"), err)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case CodeUniqueViolation:
			return shared.NewError(shared.ErrConflict, msgs.forConstraint(pgErr, msgs.Conflict, "record already exists"), err)
		case CodeForeignKeyViolation:
			return shared.NewError(shared.ErrReferentialIntegrity, msgs.forConstraint(pgErr, msgs.Integrity, "referenced record does not exist"), err)
		case CodeNotNullViolation:
			return shared.NewError(shared.ErrValidation, fmt.Sprintf("%s is required", humanize(pgErr.ColumnName)), err)
		case CodeCheckViolation, CodeStringTooLong:
			return shared.NewError(shared.ErrValidation, fmt.Sprintf("%s value is invalid", humanize(pgErr.ColumnName)), err)
		}
	}

	if strings.HasPrefix(err.Error(), errPrefix) {
		return err
	}
	return fmt.Errorf("%s%w", errPrefix, err)
}

const errPrefix = "platform/db: "

func (m Messages) forConstraint(pgErr *pgconn.PgError, msg, fallback string) string {
	if text, ok := m.Constraints[pgErr.ConstraintName]; ok && pgErr.ConstraintName != "" {
		return text
	}
	return orDefault(msg, fallback)
}

func humanize(column string) string {
	if column == "" {
		return "Field"
	}
	return cases.Title(language.English).String(strings.ReplaceAll(column, "_", " "))
}

func orDefault(msg, fallback string) string {
	if msg == "" {
		return fallback
	}
	return msg
}
