package manifest

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNotFound indicates a component name is absent from the manifest.
var ErrNotFound = errors.New("component not found")

// FieldError represents a validation failure for a specific field.
type FieldError struct {
	Field   string // Field path (e.g., "components[2].files[0]")
	Message string // Human-readable error message
}

func (e *FieldError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: %s", e.Field, e.Message)
	}
	return e.Message
}

// ValidationErrors collects every validation failure found while loading
// a manifest.
type ValidationErrors struct {
	Errors []*FieldError
}

func (e *ValidationErrors) Error() string {
	if len(e.Errors) == 0 {
		return "manifest validation failed"
	}
	if len(e.Errors) == 1 {
		return "invalid manifest: " + e.Errors[0].Error()
	}
	var b strings.Builder
	fmt.Fprintf(&b, "invalid manifest: %d validation errors:", len(e.Errors))
	for _, err := range e.Errors {
		fmt.Fprintf(&b, "\n  - %s", err.Error())
	}
	return b.String()
}

// Unwrap returns the underlying errors for errors.Is/As compatibility.
func (e *ValidationErrors) Unwrap() []error {
	errs := make([]error, len(e.Errors))
	for i, err := range e.Errors {
		errs[i] = err
	}
	return errs
}

// Add appends a validation error.
func (e *ValidationErrors) Add(field, message string) {
	e.Errors = append(e.Errors, &FieldError{Field: field, Message: message})
}

// Addf appends a validation error with a formatted message.
func (e *ValidationErrors) Addf(field, format string, args ...any) {
	e.Add(field, fmt.Sprintf(format, args...))
}

// Len returns the number of collected errors.
func (e *ValidationErrors) Len() int {
	return len(e.Errors)
}

// ErrOrNil returns e when it holds at least one error and nil otherwise.
func (e *ValidationErrors) ErrOrNil() error {
	if e == nil || len(e.Errors) == 0 {
		return nil
	}
	return e
}

func componentField(i int, field string) string {
	if field == "" {
		return fmt.Sprintf("components[%d]", i)
	}
	return fmt.Sprintf("components[%d].%s", i, field)
}
