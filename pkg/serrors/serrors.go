// Package serrors implements semantic errors: a sentinel kind that callers
// match with errors.Is, an optional wrapped cause and a human-readable message.
package serrors

import (
	"errors"
	"fmt"
)

// Kind is a semantic error category. Only NewKind creates Kinds.
type Kind interface {
	error
	isKind()
}

type kind string

func (k kind) Error() string { return string(k) }
func (k kind) isKind()       {}

// NewKind creates a new semantic error kind with the provided name. Kinds are
// comparable and can be matched with errors.Is/As through the Error wrapper.
func NewKind(name string) Kind { return kind(name) }

// ErrNotFound indicates the requested entity does not exist. Packages declare
// their own kinds with NewKind for anything more specific.
var ErrNotFound = NewKind("NOT_FOUND")

// Error carries a Kind, an optional cause and an optional message.
//
// errors.Is and errors.As match both the kind and anything in the cause
// chain. Error() prints "<msg>: <cause>", falling back to whichever of the
// two is set, and finally to the kind name.
type Error struct {
	kind  Kind
	cause error
	msg   string
}

// With returns an Error of kind k with a formatted message and no cause.
func With(k Kind, format string, args ...any) *Error {
	return &Error{kind: k, msg: fmt.Sprintf(format, args...)}
}

// Wrap returns an Error of kind k wrapping cause with a formatted message.
func Wrap(k Kind, cause error, format string, args ...any) *Error {
	return &Error{kind: k, cause: cause, msg: fmt.Sprintf(format, args...)}
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}

	switch {
	case e.msg != "" && e.cause != nil:
		return e.msg + ": " + e.cause.Error()
	case e.msg != "":
		return e.msg
	case e.cause != nil:
		return e.cause.Error()
	case e.kind != nil:
		return e.kind.Error()
	default:
		return "unknown error"
	}
}

// Unwrap exposes the cause to errors.Is/As.
func (e *Error) Unwrap() error { return e.cause }

// Is reports whether target is the kind of e. The cause chain is walked by
// errors.Is through Unwrap.
func (e *Error) Is(target error) bool {
	return e != nil && e.kind != nil && errors.Is(e.kind, target)
}

// As lets errors.As extract the Kind of e.
func (e *Error) As(target any) bool {
	return e != nil && e.kind != nil && errors.As(e.kind, target)
}

// Kind returns the kind of e.
func (e *Error) Kind() Kind { return e.kind }

// Message returns the message of e without the cause.
func (e *Error) Message() string { return e.msg }
