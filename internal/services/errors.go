package services

import (
	"errors"
	"fmt"
)

type ErrorKind string

const (
	KindInputRejected ErrorKind = "input_rejected"
	KindStorage       ErrorKind = "storage_failure"
	KindBackend       ErrorKind = "backend_call_failed"
	KindNotParseable  ErrorKind = "response_not_parseable"
	KindSchema        ErrorKind = "schema_violation"
	KindConfiguration ErrorKind = "configuration_error"
	kindUnclassified  ErrorKind = ""
)

// Error is the single error type surfaced by the CV pipeline. Err carries the
// underlying cause so transport-specific errors never leak as their own type.
type Error struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is an *Error of the same kind, so callers can use
// errors.Is(err, &Error{Kind: KindSchema}).
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

func newError(kind ErrorKind, err error, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...), Err: err}
}

// KindOf returns the kind of the first *Error in err's chain.
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return kindUnclassified
}
