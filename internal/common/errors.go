// Package common defines the error kinds shared by repositories, services and
// HTTP handlers. Callers should match kinds with errors.Is.
package common

import (
	"errors"
	"fmt"
)

var (
	// Request data is missing or malformed.
	ErrValidation = errors.New("validation error")

	// A unique value (e-mail) is already taken.
	ErrConflict = errors.New("conflict")

	// Bad credentials, bad current password or bad token.
	ErrUnauthorized = errors.New("unauthorized")

	// Missing row, or a row not owned by the caller.
	ErrNotFound = errors.New("not found")

	// Anything unexpected from the store or the token codec.
	ErrInternal = errors.New("internal error")
)

// Token lifecycle errors.
var (
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")
)

// Error pairs an error kind with a message that is safe to show to clients.
type Error struct {
	Kind    error
	Message string
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Message == "" {
		return e.Kind.Error()
	}
	return fmt.Sprintf("%s: %s", e.Kind.Error(), e.Message)
}

func (e *Error) Unwrap() error { return e.Kind }

// Validation returns an ErrValidation with a client message.
func Validation(msg string) error {
	return &Error{Kind: ErrValidation, Message: msg}
}

// Conflict returns an ErrConflict with a client message.
func Conflict(msg string) error {
	return &Error{Kind: ErrConflict, Message: msg}
}

// Unauthorized returns an ErrUnauthorized with a client message.
func Unauthorized(msg string) error {
	return &Error{Kind: ErrUnauthorized, Message: msg}
}

// NotFound returns an ErrNotFound with a client message.
func NotFound(msg string) error {
	return &Error{Kind: ErrNotFound, Message: msg}
}

// PublicMessage extracts the client message of err, or "" when err carries none.
func PublicMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return ""
}
