// Package apperr defines the domain error taxonomy. Every error a service
// returns is one of these (or wraps one), so controllers can map it to an HTTP
// status with errors.As/Is instead of string matching.
package apperr

import (
	"errors"
	"fmt"
)

// ErrNotFound marks a missing referenced entity. Wrap it with context:
// fmt.Errorf("test %d: %w", id, apperr.ErrNotFound).
var ErrNotFound = errors.New("not found")

func NotFoundf(format string, args ...any) error {
	return fmt.Errorf(format+": %w", append(args, ErrNotFound)...)
}

// ValidationError covers malformed or missing input, including answer maps
// that reference a question outside the submitted test.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

func Validationf(format string, args ...any) error {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}

// DuplicateNameError is returned when a unique-name constraint would be
// violated (category names, usernames).
type DuplicateNameError struct {
	Name string
}

func (e *DuplicateNameError) Error() string {
	return fmt.Sprintf("name %q already exists", e.Name)
}

// ConfigurationError marks an entity that exists but is not usable as set up,
// e.g. a test with zero questions.
type ConfigurationError struct {
	Msg string
}

func (e *ConfigurationError) Error() string { return e.Msg }

// BatchItemError pins a validation failure to its index in a bulk request.
type BatchItemError struct {
	Index  int    `json:"index"`
	Reason string `json:"reason"`
}

// BatchValidationError rejects an entire bulk insert. No partial success: if
// any item is invalid the whole batch is refused and Items names the culprits.
type BatchValidationError struct {
	Items []BatchItemError
}

func (e *BatchValidationError) Error() string {
	return fmt.Sprintf("batch rejected: %d invalid item(s)", len(e.Items))
}
