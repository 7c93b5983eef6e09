package shared

import "errors"

var (
	// ErrNotFound indicates a lookup by primary key matched no rows.
	ErrNotFound = errors.New("not found")
	// ErrConflict indicates a uniqueness violation on create.
	ErrConflict = errors.New("conflict")
	// ErrReferentialIntegrity indicates a row references, or is referenced by, a missing row.
	ErrReferentialIntegrity = errors.New("referential integrity violation")
	// ErrValidation indicates the request input was rejected before or by the store.
	ErrValidation = errors.New("validation failed")
)

// Error is a classified failure carrying a client-safe message.
type Error struct {
	kind    error
	message string
	cause   error
}

// NewError classifies cause under kind. message is the text shown to clients.
func NewError(kind error, message string, cause error) *Error {
	return &Error{kind: kind, message: message, cause: cause}
}

func (e *Error) Error() string {
	return e.message
}

// Is reports whether target is the error's kind.
func (e *Error) Is(target error) bool {
	return target == e.kind
}

func (e *Error) Unwrap() error {
	return e.cause
}

// Kind returns the classification sentinel.
func (e *Error) Kind() error {
	return e.kind
}

// UserSafeMessage returns the message of a classified error, or a generic text otherwise.
func UserSafeMessage(err error) string {
	var classified *Error
	if errors.As(err, &classified) {
		return classified.message
	}
	return "internal server error"
}
