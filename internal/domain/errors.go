package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors used across all layers.
var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
	ErrValidation    = errors.New("validation error")
	ErrUnauthorized  = errors.New("unauthorized")
	ErrRuleViolation = errors.New("business rule violation")
	ErrConflict      = errors.New("conflict")
)

// FieldError describes a validation error for a specific field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError contains a list of field-level validation errors.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 1 {
		return fmt.Sprintf("validation: %s: %s", e.Errors[0].Field, e.Errors[0].Message)
	}
	return fmt.Sprintf("validation: %d errors", len(e.Errors))
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// NewValidationError creates a ValidationError for a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Errors: []FieldError{{Field: field, Message: message}},
	}
}

// NewValidationErrors creates a ValidationError from multiple field errors.
func NewValidationErrors(errs []FieldError) *ValidationError {
	return &ValidationError{Errors: errs}
}

// NotFoundError is returned when a referenced record is missing or is not
// visible to the caller. Message is safe to show to clients.
type NotFoundError struct {
	Entity  string
	Message string
}

func (e *NotFoundError) Error() string { return e.Message }

func (e *NotFoundError) Unwrap() error { return ErrNotFound }

// NewDoesNotExist builds the "<Entity> does not exist." error.
func NewDoesNotExist(entity string) *NotFoundError {
	return &NotFoundError{Entity: entity, Message: entity + " does not exist."}
}

// NewNotOwned builds the "<Entity> does not belong to the current user." error.
func NewNotOwned(entity string) *NotFoundError {
	return &NotFoundError{Entity: entity, Message: entity + " does not belong to the current user."}
}

// RuleViolationError is a rejected request that is well-formed but breaks
// a business rule. Message is safe to show to clients.
type RuleViolationError struct {
	Message string
}

func (e *RuleViolationError) Error() string { return e.Message }

func (e *RuleViolationError) Unwrap() error { return ErrRuleViolation }

// NewRuleViolation creates a RuleViolationError.
func NewRuleViolation(message string) *RuleViolationError {
	return &RuleViolationError{Message: message}
}
