package result

import (
	"fmt"
)

// Kind identifies the category of a failure. The set is closed: transport
// layers map these to status codes and rely on no other values existing.
type Kind int

const (
	// KindUnknown covers failures that no other kind describes. It always
	// carries the underlying cause.
	KindUnknown Kind = iota

	// KindNotFound means the requested row does not exist.
	KindNotFound

	// KindAlreadyExists means a write violated a unique constraint.
	KindAlreadyExists

	// KindBadRequest means the caller supplied invalid input, including
	// writes that reference a missing row.
	KindBadRequest

	// KindConflict means the operation clashes with existing state, such as
	// deleting a row that is still referenced.
	KindConflict
)

// String returns the kind's name for logs and error messages.
func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not_found"
	case KindAlreadyExists:
		return "already_exists"
	case KindBadRequest:
		return "bad_request"
	case KindConflict:
		return "conflict"
	default:
		return "unknown"
	}
}

// Error is the immutable failure payload carried by a Result. Construct it
// through the kind-specific constructors; once built it never changes.
type Error struct {
	kind    Kind
	message string
	key     any
	cause   error
}

// NotFound reports that the row identified by key does not exist.
func NotFound(key any) *Error {
	return &Error{
		kind:    KindNotFound,
		message: fmt.Sprintf("record not found: %v", key),
		key:     key,
	}
}

// AlreadyExists reports a unique-constraint violation with a caller-facing message.
func AlreadyExists(message string) *Error {
	return &Error{kind: KindAlreadyExists, message: message}
}

// BadRequest reports invalid caller input with a caller-facing message.
func BadRequest(message string) *Error {
	return &Error{kind: KindBadRequest, message: message}
}

// Conflict reports a clash with existing state with a caller-facing message.
func Conflict(message string) *Error {
	return &Error{kind: KindConflict, message: message}
}

// Unknown wraps an unexpected cause. A nil cause is permitted and yields a
// generic message.
func Unknown(cause error) *Error {
	msg := "unknown error"
	if cause != nil {
		msg = cause.Error()
	}
	return &Error{kind: KindUnknown, message: msg, cause: cause}
}

// Unknownf builds an Unknown failure from a formatted message.
func Unknownf(format string, args ...any) *Error {
	return &Error{kind: KindUnknown, message: fmt.Sprintf(format, args...)}
}

// Kind returns the failure category.
func (e *Error) Kind() Kind { return e.kind }

// Message returns the caller-facing description.
func (e *Error) Message() string { return e.message }

// Key returns the lookup key for KindNotFound failures, nil otherwise.
func (e *Error) Key() any { return e.key }

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.kind, e.message)
}

// Unwrap exposes the underlying cause, if any, for errors.Is/errors.As.
func (e *Error) Unwrap() error { return e.cause }
