package rf

import (
	"errors"
	"fmt"
)

var (
	// ErrDomain marks any input that falls outside the mathematically
	// valid range of a calculator. Wrap with errors.Is to classify.
	ErrDomain = errors.New("input outside valid domain")

	// ErrMissingField marks a registry evaluation request that omits a
	// required input field.
	ErrMissingField = errors.New("missing required input field")
)

// DomainError reports an input outside a calculator's valid range. It names
// the operation, the offending field and the violated constraint so callers
// can surface a precise message without parsing the error string.
type DomainError struct {
	Op         string
	Field      string
	Constraint string
	Value      float64
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("%s: %s must be %s (got %g)", e.Op, e.Field, e.Constraint, e.Value)
}

func (e *DomainError) Unwrap() error { return ErrDomain }

// domainErr is the guard shorthand used at the top of every calculator.
func domainErr(op, field, constraint string, value float64) error {
	return &DomainError{Op: op, Field: field, Constraint: constraint, Value: value}
}

// ConfigError reports a required input field that was absent from a
// registry evaluation request.
type ConfigError struct {
	Calculator string
	Field      string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("%s: missing required input field %q", e.Calculator, e.Field)
}

func (e *ConfigError) Unwrap() error { return ErrMissingField }
