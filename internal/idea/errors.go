package idea

import "errors"

// Kind classifies failures of the idea store so callers can tell a bad
// request from a missing record from a storage outage.
type Kind int

const (
	KindValidation Kind = iota + 1
	KindNotFound
	KindPersistence
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindNotFound:
		return "not_found"
	case KindPersistence:
		return "persistence"
	}
	return "unknown"
}

// Error is returned by every store operation. Message is safe to show to
// clients; the underlying cause is only reachable through Unwrap.
type Error struct {
	Kind    Kind
	Message string
	cause   error
}

func (e *Error) Error() string { return e.Message }

func (e *Error) Unwrap() error { return e.cause }

func NewValidationError(msg string) *Error {
	return &Error{Kind: KindValidation, Message: msg}
}

func NewNotFoundError(msg string) *Error {
	return &Error{Kind: KindNotFound, Message: msg}
}

// NewPersistenceError hides cause behind msg.
func NewPersistenceError(msg string, cause error) *Error {
	return &Error{Kind: KindPersistence, Message: msg, cause: cause}
}

func kindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}

func IsValidation(err error) bool  { return kindOf(err) == KindValidation }
func IsNotFound(err error) bool    { return kindOf(err) == KindNotFound }
func IsPersistence(err error) bool { return kindOf(err) == KindPersistence }
