// Package serrors defines the semantic error kinds shared by services and the
// HTTP layer. A kind knows its public type label, HTTP status and the message
// shown when an error carries none.
package serrors

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind is a semantic error category. Kinds are sentinels: compare them with
// errors.Is through the Error wrapper.
type Kind interface {
	error
	// Status is the HTTP status a request failing with this kind answers.
	Status() int
	// DefaultMessage is the public message used when an error has none.
	DefaultMessage() string
}

type kind struct {
	label   string
	status  int
	message string
}

func (k kind) Error() string          { return k.label }
func (k kind) Status() int            { return k.status }
func (k kind) DefaultMessage() string { return k.message }

// NewKind creates a kind with its type label, HTTP status and default message.
func NewKind(label string, status int, message string) Kind {
	return kind{label: label, status: status, message: message}
}

var (
	ErrNotFound     = NewKind("NOT_FOUND", http.StatusNotFound, "resource not found")
	ErrUnauthorized = NewKind("UNAUTHORIZED", http.StatusUnauthorized, "authentication required")
	ErrForbidden    = NewKind("FORBIDDEN", http.StatusForbidden, "access denied")
	ErrBadRequest   = NewKind("BAD_REQUEST", http.StatusBadRequest, "bad request")
	ErrConflict     = NewKind("CONFLICT", http.StatusConflict, "resource conflict")
	ErrInternal     = NewKind("INTERNAL", http.StatusInternalServerError, "internal error")
	ErrTimeout      = NewKind("TIMEOUT", http.StatusGatewayTimeout, "request timed out")
	// ErrUnavailable marks a dependency (database, CI platform) that cannot be reached.
	ErrUnavailable = NewKind("UNAVAILABLE", http.StatusServiceUnavailable, "service unavailable")
	// ErrRateLimited marks a throttled caller, or a CI platform that throttled us.
	ErrRateLimited = NewKind("RATE_LIMITED", http.StatusTooManyRequests, "rate limit exceeded")
)

// Kinds lists the built-in kinds, ErrInternal last.
func Kinds() []Kind {
	return []Kind{
		ErrNotFound, ErrUnauthorized, ErrForbidden, ErrBadRequest, ErrConflict,
		ErrTimeout, ErrUnavailable, ErrRateLimited, ErrInternal,
	}
}

// Error pairs a kind with an optional public message and an optional cause.
// errors.Is and errors.As match both the kind and the cause chain.
type Error struct {
	kind Kind
	err  error
	msg  string
}

// With creates an error of kind k with a formatted message.
func With(k Kind, msgFmt string, args ...any) *Error {
	return &Error{kind: k, msg: fmt.Sprintf(msgFmt, args...)}
}

// Wrap is With that also keeps err as the cause.
func Wrap(k Kind, err error, msgFmt string, args ...any) *Error {
	return &Error{kind: k, err: err, msg: fmt.Sprintf(msgFmt, args...)}
}

// KindOnly creates an error carrying nothing but k.
func KindOnly(k Kind) *Error { return &Error{kind: k} }

func (e *Error) Error() string {
	switch {
	case e == nil:
		return "<nil>"
	case e.msg != "" && e.err != nil:
		return e.msg + ": " + e.err.Error()
	case e.msg != "":
		return e.msg
	case e.err != nil:
		return e.err.Error()
	case e.kind != nil:
		return e.kind.Error()
	default:
		return "unknown error"
	}
}

func (e *Error) Unwrap() error { return e.err }

func (e *Error) Is(target error) bool {
	if e == nil || target == nil {
		return e == nil && target == nil
	}

	return (e.kind != nil && errors.Is(e.kind, target)) || (e.err != nil && errors.Is(e.err, target))
}

func (e *Error) As(target any) bool {
	if e == nil || target == nil {
		return false
	}

	return (e.kind != nil && errors.As(e.kind, target)) || (e.err != nil && errors.As(e.err, target))
}

// Kind returns the kind of e, or nil.
func (e *Error) Kind() Kind { return e.kind }

// Message returns the public message of e.
func (e *Error) Message() string { return e.msg }

// Cause returns the wrapped cause, or nil.
func (e *Error) Cause() error { return e.err }
