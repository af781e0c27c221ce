package common

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

// FieldError represents a single validation failure
type FieldError struct {
	Field   string
	Message string
}

func (e FieldError) Error() string {
	return fmt.Sprintf("validation failed for field '%s': %s", e.Field, e.Message)
}

// Validator provides validation utilities
type Validator struct {
	errors []FieldError
}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	return &Validator{
		errors: make([]FieldError, 0),
	}
}

// Field validates a field and collects errors
func (v *Validator) Field(fieldName string, value string, rules ...ValidationRule) *Validator {
	for _, rule := range rules {
		if err := rule(fieldName, value); err != nil {
			v.errors = append(v.errors, *err)
		}
	}
	return v
}

// HasErrors returns true if there are validation errors
func (v *Validator) HasErrors() bool {
	return len(v.errors) > 0
}

// Errors returns all validation errors
func (v *Validator) Errors() []FieldError {
	return v.errors
}

// Error returns a combined error, or nil when every rule passed.
func (v *Validator) Error() error {
	if !v.HasErrors() {
		return nil
	}
	return errors.New(v.ErrorMessage())
}

// ErrorMessage returns a combined error message as string
func (v *Validator) ErrorMessage() string {
	if !v.HasErrors() {
		return ""
	}

	messages := make([]string, 0, len(v.errors))
	for _, err := range v.errors {
		messages = append(messages, err.Error())
	}
	return strings.Join(messages, "; ")
}

// ValidationRule represents a single validation rule
type ValidationRule func(fieldName string, value string) *FieldError

// Required rejects empty and whitespace-only values.
func Required(fieldName string, value string) *FieldError {
	if strings.TrimSpace(value) == "" {
		return &FieldError{Field: fieldName, Message: "is required"}
	}
	return nil
}

// MaxLength limits the value to max characters (runes, not bytes).
func MaxLength(max int) ValidationRule {
	return func(fieldName string, value string) *FieldError {
		if utf8.RuneCountInString(value) > max {
			return &FieldError{
				Field:   fieldName,
				Message: fmt.Sprintf("must be at most %d characters", max),
			}
		}
		return nil
	}
}

// ValidateAndReturnError turns collected failures into a ValidationError whose
// public message is userMessage.
func ValidateAndReturnError(validator *Validator, userMessage string) error {
	if validator.HasErrors() {
		return NewValidationError(userMessage, validator.Error())
	}
	return nil
}
