package config

import (
	"fmt"
)

// Validator provides a fluent interface for validating configuration values.
// It collects all validation errors rather than failing on the first one.
type Validator struct {
	errors []error
	name   string // config section name for error messages
}

// NewValidator creates a new config validator with the given section name.
func NewValidator(name string) *Validator {
	return &Validator{
		name:   name,
		errors: make([]error, 0),
	}
}

// Required validates that a string field is not empty.
func (v *Validator) Required(field, value string) *Validator {
	if value == "" {
		v.errors = append(v.errors, fmt.Errorf("%s.%s: required field is empty", v.name, field))
	}
	return v
}

// Positive validates that an int field is positive (> 0).
func (v *Validator) Positive(field string, value int) *Validator {
	if value <= 0 {
		v.errors = append(v.errors, fmt.Errorf("%s.%s: value %d must be positive", v.name, field, value))
	}
	return v
}

// NonNegative validates that an int field is non-negative (>= 0).
func (v *Validator) NonNegative(field string, value int) *Validator {
	if value < 0 {
		v.errors = append(v.errors, fmt.Errorf("%s.%s: value %d must be non-negative", v.name, field, value))
	}
	return v
}

// RangeInt validates that an int field is within the specified range.
func (v *Validator) RangeInt(field string, value, min, max int) *Validator {
	if value < min || value > max {
		v.errors = append(v.errors, fmt.Errorf("%s.%s: value %d is outside range [%d, %d]", v.name, field, value, min, max))
	}
	return v
}

// OneOf validates that a string field is one of the allowed values.
func (v *Validator) OneOf(field, value string, allowed []string) *Validator {
	for _, a := range allowed {
		if value == a {
			return v
		}
	}
	v.errors = append(v.errors, fmt.Errorf("%s.%s: value %q must be one of %v", v.name, field, value, allowed))
	return v
}

// Custom applies a custom validation function.
func (v *Validator) Custom(field string, fn func() error) *Validator {
	if err := fn(); err != nil {
		v.errors = append(v.errors, fmt.Errorf("%s.%s: %w", v.name, field, err))
	}
	return v
}

// When conditionally applies validations if the condition is true.
func (v *Validator) When(condition bool, validations func(*Validator)) *Validator {
	if condition {
		validations(v)
	}
	return v
}

// HasErrors returns true if any validation errors occurred.
func (v *Validator) HasErrors() bool {
	return len(v.errors) > 0
}

// Errors returns all validation errors.
func (v *Validator) Errors() []error {
	return v.errors
}

// Validate returns a combined error if any validations failed.
func (v *Validator) Validate() error {
	if len(v.errors) == 0 {
		return nil
	}
	if len(v.errors) == 1 {
		return v.errors[0]
	}
	return fmt.Errorf("%s validation failed with %d errors: %v", v.name, len(v.errors), v.errors[0])
}

// DefaultOr returns the value if it's non-zero, otherwise returns the default.
func DefaultOr[T comparable](value, defaultValue T) T {
	var zero T
	if value == zero {
		return defaultValue
	}
	return value
}

// DefaultOrInt returns the value if it's positive, otherwise returns the default.
func DefaultOrInt(value, defaultValue int) int {
	if value <= 0 {
		return defaultValue
	}
	return value
}
