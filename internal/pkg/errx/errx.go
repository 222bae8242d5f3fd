// Package errx carries an error Kind and a caller-safe message alongside
// the underlying error so transports can map failures without string matching.
package errx

import (
	"errors"
	"fmt"
)

// SystemErrorMessage is returned to callers for errors without a Kind.
const SystemErrorMessage = "internal server error"

// Kind classifies an error for the transport layer.
type Kind string

const (
	KindInternal     Kind = "internal"
	KindValidation   Kind = "validation"
	KindNotFound     Kind = "not_found"
	KindExternal     Kind = "external"
	KindPersistence  Kind = "persistence"
	KindUnauthorized Kind = "unauthorized"
	KindConflict     Kind = "conflict"
)

// Error wraps an underlying error with a Kind and a safe message.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return fmt.Sprintf("%s: %v", e.Message, e.Err)
}

// Unwrap exposes the underlying error for errors.Is / errors.As support.
func (e *Error) Unwrap() error {
	return e.Err
}

// New creates a sentinel-style error whose message is also its public message.
func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Wrap attaches kind and message to err. A nil err yields nil.
func Wrap(kind Kind, message string, err error) error {
	if err == nil {
		return nil
	}
	return &Error{Kind: kind, Message: message, Err: err}
}

// KindOf returns the Kind of the first *Error in err's chain,
// or KindInternal when there is none.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

// PublicMessage returns the caller-facing message for err.
func PublicMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return SystemErrorMessage
}
