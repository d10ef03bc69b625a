package service

import (
	"errors"
	"fmt"
)

// ErrorKind classifies service failures for transport mapping.
type ErrorKind string

const (
	KindInvalidFormat    ErrorKind = "INVALID_FORMAT"
	KindNotFound         ErrorKind = "NOT_FOUND"
	KindConflict         ErrorKind = "CONFLICT"
	KindStoreUnavailable ErrorKind = "STORE_UNAVAILABLE"
)

// Error is a structured service error carrying a kind and an optional cause.
type Error struct {
	Kind    ErrorKind
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Kind, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

func invalidFormat(format string, args ...any) *Error {
	return &Error{Kind: KindInvalidFormat, Message: fmt.Sprintf(format, args...)}
}

func notFound(format string, args ...any) *Error {
	return &Error{Kind: KindNotFound, Message: fmt.Sprintf(format, args...)}
}

func conflict(format string, args ...any) *Error {
	return &Error{Kind: KindConflict, Message: fmt.Sprintf(format, args...)}
}

func storeUnavailable(msg string, cause error) *Error {
	return &Error{Kind: KindStoreUnavailable, Message: msg, Cause: cause}
}

// KindOf extracts the kind from err, defaulting to KindStoreUnavailable for
// anything that is not a service error.
func KindOf(err error) ErrorKind {
	var se *Error
	if errors.As(err, &se) {
		return se.Kind
	}
	return KindStoreUnavailable
}

func IsInvalidFormat(err error) bool { return KindOf(err) == KindInvalidFormat }
func IsNotFound(err error) bool      { return KindOf(err) == KindNotFound }
func IsConflict(err error) bool      { return KindOf(err) == KindConflict }
