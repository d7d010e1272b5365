package dataset

import (
	"errors"
	"fmt"
)

// Error kinds. Match with errors.Is.
var (
	ErrUnreadable = errors.New("dataset file unreadable")
	ErrMalformed  = errors.New("malformed dataset row")
)

// DatasetError provides structured error information for dataset loading.
type DatasetError struct {
	Op    string // Operation that failed (e.g., "ReadAirports")
	File  string // File path or stream name
	Line  int    // 1-based line number, 0 when not line specific
	Field string // Column name (for parse failures)
	Kind  error  // ErrUnreadable or ErrMalformed
	Cause error  // Underlying error
}

// Error implements the error interface.
func (e *DatasetError) Error() string {
	location := e.File
	if e.Line > 0 {
		location = fmt.Sprintf("%s:%d", e.File, e.Line)
	}
	if e.Field != "" {
		return fmt.Sprintf("%s %s (field %s): %v: %v", e.Op, location, e.Field, e.Kind, e.Cause)
	}
	return fmt.Sprintf("%s %s: %v: %v", e.Op, location, e.Kind, e.Cause)
}

// Unwrap exposes both the kind and the cause, so errors.Is matches either
// ErrMalformed/ErrUnreadable or the underlying OS error.
func (e *DatasetError) Unwrap() []error {
	return []error{e.Kind, e.Cause}
}

// ErrorBuilder provides a fluent interface for building DatasetErrors.
type ErrorBuilder struct {
	err DatasetError
}

// NewError creates a new error builder with the given operation.
func NewError(op string) *ErrorBuilder {
	return &ErrorBuilder{err: DatasetError{Op: op}}
}

// File sets the file the error refers to.
func (b *ErrorBuilder) File(path string) *ErrorBuilder {
	b.err.File = path
	return b
}

// Line sets the 1-based line number.
func (b *ErrorBuilder) Line(n int) *ErrorBuilder {
	b.err.Line = n
	return b
}

// Field sets the column name.
func (b *ErrorBuilder) Field(name string) *ErrorBuilder {
	b.err.Field = name
	return b
}

// Malformed builds a parse error.
func (b *ErrorBuilder) Malformed(cause error) error {
	b.err.Kind = ErrMalformed
	b.err.Cause = cause
	e := b.err
	return &e
}

// Unreadable builds an IO error.
func (b *ErrorBuilder) Unreadable(cause error) error {
	b.err.Kind = ErrUnreadable
	b.err.Cause = cause
	e := b.err
	return &e
}

// IsMalformed reports whether err is a dataset parse error.
func IsMalformed(err error) bool {
	return errors.Is(err, ErrMalformed)
}

// IsUnreadable reports whether err is a dataset IO error.
func IsUnreadable(err error) bool {
	return errors.Is(err, ErrUnreadable)
}
