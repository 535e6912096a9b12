// Package common defines shared constants and error kinds used across the
// SocialScribe server layers. Callers should use errors.Is / errors.As to
// match these values.
package common

import (
	"errors"
	"strings"
)

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Request-shape errors.
	ErrorValidation = errors.New("validation error")
	ErrorInvalidID  = errors.New("invalid id format")

	// Service-level errors.
	ErrorGeneration = errors.New("generation failed")
	ErrorInternal   = errors.New("internal error")
)

// ValidationError carries the human-readable messages of every rule a request
// broke. It matches ErrorValidation with errors.Is.
type ValidationError struct {
	Message string
	Errors  []string
}

// NewValidationError builds a ValidationError with the default message.
func NewValidationError(errs ...string) *ValidationError {
	return &ValidationError{Message: "Validation failed", Errors: errs}
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 0 {
		return e.Message
	}
	return e.Message + ": " + strings.Join(e.Errors, "; ")
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrorValidation
}

// GenerationError wraps any failure of the text generation backend, including
// exhaustion of every candidate model.
type GenerationError struct {
	Err error
}

func (e *GenerationError) Error() string {
	return "AI generation failed: " + e.Err.Error()
}

func (e *GenerationError) Unwrap() error {
	return e.Err
}

func (e *GenerationError) Is(target error) bool {
	return target == ErrorGeneration
}
