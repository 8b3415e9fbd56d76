package invoicing

import (
	"errors"
	"fmt"
)

// Kind classifies a tool failure.
type Kind string

const (
	// KindNotFound: a referenced record does not exist.
	KindNotFound Kind = "not_found"
	// KindValidation: the arguments cannot be acted upon.
	KindValidation Kind = "validation"
	// KindUnconfigured: the process lacks configuration the operation needs.
	KindUnconfigured Kind = "unconfigured"
	// KindBlocked: the document is in a state that forbids the operation.
	KindBlocked Kind = "blocked"
	// KindRemoteFailure: the invoicing API failed or could not be reached.
	KindRemoteFailure Kind = "remote_failure"
	// KindInternal: anything else.
	KindInternal Kind = "internal"
)

// Error is a classified tool failure.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error for error unwrapping.
func (e *Error) Unwrap() error {
	return e.Err
}

// IsBusiness reports whether the failure is one the caller is expected to
// branch on, as opposed to an unexpected failure.
func (e *Error) IsBusiness() bool {
	switch e.Kind {
	case KindNotFound, KindValidation, KindUnconfigured, KindBlocked:
		return true
	}
	return false
}

func newError(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// NewValidationError creates a validation failure.
func NewValidationError(format string, args ...any) *Error {
	return newError(KindValidation, format, args...)
}

// KindOf returns the kind of err: the kind of the outermost *Error in its
// chain, KindRemoteFailure for API errors, KindInternal otherwise.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	if isRemote(err) {
		return KindRemoteFailure
	}
	return KindInternal
}
