package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies an error so handlers can map it to an HTTP status
// without string-matching on messages.
type Kind int

const (
	// KindValidation covers malformed or missing request input.
	KindValidation Kind = iota
	// KindInvalidReference covers writes that point at a missing foreign row.
	KindInvalidReference
	// KindNotFound covers operations that target a missing row.
	KindNotFound
	// KindAuthFailure covers rejected login attempts.
	KindAuthFailure
	// KindStore covers any database or driver failure.
	KindStore
)

// Error carries a kind, a caller-facing message, and an optional cause.
type Error struct {
	Kind    Kind
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

// HTTPStatus returns the status code the kind maps to.
func (e *Error) HTTPStatus() int {
	switch e.Kind {
	case KindValidation, KindInvalidReference:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	case KindAuthFailure:
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

func Validation(message string) *Error {
	return &Error{Kind: KindValidation, Message: message}
}

func InvalidReference(message string) *Error {
	return &Error{Kind: KindInvalidReference, Message: message}
}

func NotFound(message string) *Error {
	return &Error{Kind: KindNotFound, Message: message}
}

func AuthFailure(message string) *Error {
	return &Error{Kind: KindAuthFailure, Message: message}
}

// Store wraps an unexpected database error. The cause's text is surfaced
// to the caller unredacted.
func Store(err error) *Error {
	return &Error{Kind: KindStore, Message: fmt.Sprintf("Server Error: %v", err), Err: err}
}

// As extracts an *Error from err, if it is one.
func As(err error) (*Error, bool) {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}
