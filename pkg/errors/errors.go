package errors

import (
	"fmt"
)

// ValidationError represents input validation errors
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
}

// NewValidationError creates a new validation error
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Message: message,
	}
}

// PolicyError represents a failure to load or apply the decision policy
type PolicyError struct {
	Path    string
	Message string
	Cause   error
}

func (e *PolicyError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("policy error (%s): %s", e.Path, e.Message)
	}
	return fmt.Sprintf("policy error: %s", e.Message)
}

func (e *PolicyError) Unwrap() error {
	return e.Cause
}

// NewPolicyError creates a new policy error
func NewPolicyError(path, message string, cause error) *PolicyError {
	return &PolicyError{
		Path:    path,
		Message: message,
		Cause:   cause,
	}
}
