package errors

import (
	"cmp"
	"fmt"
	"sort"
	"strings"
)

// ValidationError collects field-level problems with a request and converts
// itself to an INVALID_ARGUMENT Error.
type ValidationError struct {
	// Fields maps field names to their validation error messages
	Fields map[string][]string `json:"fields"`
}

// Error lists fields in name order so the message is stable across calls
func (v *ValidationError) Error() string {
	if len(v.Fields) == 0 {
		return "validation failed"
	}

	names := make([]string, 0, len(v.Fields))
	for field := range v.Fields {
		names = append(names, field)
	}
	sort.Strings(names)

	parts := make([]string, len(names))
	for i, field := range names {
		parts[i] = fmt.Sprintf("%s: %s", field, strings.Join(v.Fields[field], ", "))
	}
	return fmt.Sprintf("validation failed: %s", strings.Join(parts, "; "))
}

// newValidationError creates an empty validation error
func newValidationError() *ValidationError {
	return &ValidationError{
		Fields: make(map[string][]string),
	}
}

// addFieldError adds an error for a specific field
func (v *ValidationError) addFieldError(field, message string) {
	v.Fields[field] = append(v.Fields[field], message)
}

// hasErrors returns true if there are any validation errors
func (v *ValidationError) hasErrors() bool {
	return len(v.Fields) > 0
}

// toError converts the validation error to our standard error type
func (v *ValidationError) toError() *Error {
	if !v.hasErrors() {
		return nil
	}

	return InvalidArgument(v.Error()).WithMeta("validation_errors", v.Fields)
}

// ValidationBuilder accumulates field errors. Build returns nil when nothing
// was recorded.
type ValidationBuilder struct {
	err *ValidationError
}

// NewValidationBuilder creates a new validation builder
func NewValidationBuilder() *ValidationBuilder {
	return &ValidationBuilder{
		err: newValidationError(),
	}
}

// Field adds a validation error for a field
func (vb *ValidationBuilder) Field(field, message string) *ValidationBuilder {
	vb.err.addFieldError(field, message)
	return vb
}

// Fieldf adds a formatted validation error for a field
func (vb *ValidationBuilder) Fieldf(field, format string, args ...interface{}) *ValidationBuilder {
	return vb.Field(field, fmt.Sprintf(format, args...))
}

// RequiredField adds a required field error
func (vb *ValidationBuilder) RequiredField(field string) *ValidationBuilder {
	return vb.Field(field, "is required")
}

// InvalidField adds an invalid field error
func (vb *ValidationBuilder) InvalidField(field, reason string) *ValidationBuilder {
	return vb.Fieldf(field, "is invalid: %s", reason)
}

// Build returns the error if there are validation errors, nil otherwise
func (vb *ValidationBuilder) Build() error {
	if vb.err.hasErrors() {
		return vb.err.toError()
	}
	return nil
}

// ValidateRequired records a blank string
func ValidateRequired(field, value string, vb *ValidationBuilder) {
	if strings.TrimSpace(value) == "" {
		vb.RequiredField(field)
	}
}

// ValidateRange records a value outside [minValue, maxValue]
func ValidateRange[T cmp.Ordered](field string, value, minValue, maxValue T, vb *ValidationBuilder) {
	if value < minValue || value > maxValue {
		vb.Fieldf(field, "must be between %v and %v", minValue, maxValue)
	}
}

// ValidateNonNegative records a value below zero
func ValidateNonNegative[T ~int | ~int32 | ~int64](field string, value T, vb *ValidationBuilder) {
	if value < 0 {
		vb.Field(field, "must not be negative")
	}
}

// ValidateEnum records a value missing from allowed
func ValidateEnum[T ~string](field string, value T, allowed []T, vb *ValidationBuilder) {
	names := make([]string, len(allowed))
	for i, a := range allowed {
		if value == a {
			return
		}
		names[i] = string(a)
	}
	vb.Fieldf(field, "must be one of: %s", strings.Join(names, ", "))
}
