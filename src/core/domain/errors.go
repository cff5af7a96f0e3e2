// Package domain contains domain entities, value objects, and domain-specific errors.
// It has no infrastructure concerns (database, HTTP, file system).
package domain

import (
	"errors"
	"fmt"
)

// Domain error types for consistent error handling across the application.
// Each base error is a classification tag consumed by the HTTP boundary to
// pick a response status code.

var (
	// ErrNotFound is returned when a requested resource does not exist.
	ErrNotFound = errors.New("resource not found")

	// ErrInvalidInput is returned when payload validation fails.
	ErrInvalidInput = errors.New("invalid input")

	// ErrConflict is returned when the store rejects a write due to a
	// constraint violation (e.g. a duplicate tenant domain).
	ErrConflict = errors.New("conflict")

	// ErrUnauthorized is returned when the external auth service rejects
	// the supplied credentials.
	ErrUnauthorized = errors.New("unauthorized")
)

// DomainError wraps a base error with additional context.
type DomainError struct {
	// Base is the underlying classification (e.g., ErrInvalidInput)
	Base error

	// Message provides human-readable context. For validation errors this
	// is the space-joined list of every violated rule.
	Message string
}

// Error implements the error interface.
func (e *DomainError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%s: %s", e.Base.Error(), e.Message)
	}
	return e.Base.Error()
}

// Unwrap returns the base error for errors.Is/As support.
func (e *DomainError) Unwrap() error {
	return e.Base
}

// NewValidationError creates a validation error carrying the joined rule
// violations.
func NewValidationError(message string) *DomainError {
	return &DomainError{
		Base:    ErrInvalidInput,
		Message: message,
	}
}

// NewConflictError creates a conflict error with context.
func NewConflictError(message string) *DomainError {
	return &DomainError{
		Base:    ErrConflict,
		Message: message,
	}
}

// NewNotFoundError creates a not found error with context.
func NewNotFoundError(resource string) *DomainError {
	return &DomainError{
		Base:    ErrNotFound,
		Message: resource,
	}
}

// NewUnauthorizedError creates an unauthorized error with context.
func NewUnauthorizedError(message string) *DomainError {
	return &DomainError{
		Base:    ErrUnauthorized,
		Message: message,
	}
}

// IsNotFound checks if an error is a not found error.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsValidationError checks if an error is a validation error.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}

// IsConflict checks if an error is a conflict error.
func IsConflict(err error) bool {
	return errors.Is(err, ErrConflict)
}

// IsUnauthorized checks if an error is unauthorized.
func IsUnauthorized(err error) bool {
	return errors.Is(err, ErrUnauthorized)
}
