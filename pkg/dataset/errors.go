package dataset

import (
	"errors"
	"fmt"
)

// Sentinel errors for the pipeline failure taxonomy. Each stage fails fast
// with exactly one of these as the cause; no partial result is returned.
var (
	ErrFileAccess = errors.New("file access failed")
	ErrDataFormat = errors.New("malformed data")
	ErrSchema     = errors.New("schema mismatch")
	ErrValidation = errors.New("invalid record")
)

// PipelineError provides structured error information for pipeline stages.
type PipelineError struct {
	Stage   string // Stage that failed ("load", "validate", "build", "assemble")
	Op      string // Operation that failed (e.g., "OpenFile", "ParseScore")
	Path    string // Input path (if applicable)
	Column  string // Column name (for per-column failures)
	Line    int    // 1-based line number (if applicable)
	Cause   error  // Underlying error
	Context string // Additional context
}

// Error implements the error interface.
func (e *PipelineError) Error() string {
	switch {
	case e.Line != 0 && e.Column != "":
		return fmt.Sprintf("%s: %s %s line %d (column %s): %v", e.Stage, e.Op, e.Path, e.Line, e.Column, e.Cause)
	case e.Line != 0:
		return fmt.Sprintf("%s: %s %s line %d: %v", e.Stage, e.Op, e.Path, e.Line, e.Cause)
	case e.Column != "":
		return fmt.Sprintf("%s: %s (column %s): %v", e.Stage, e.Op, e.Column, e.Cause)
	case e.Path != "":
		return fmt.Sprintf("%s: %s %s: %v", e.Stage, e.Op, e.Path, e.Cause)
	case e.Context != "":
		return fmt.Sprintf("%s: %s (%s): %v", e.Stage, e.Op, e.Context, e.Cause)
	default:
		return fmt.Sprintf("%s: %s: %v", e.Stage, e.Op, e.Cause)
	}
}

// Unwrap returns the underlying cause for error chain support.
func (e *PipelineError) Unwrap() error {
	return e.Cause
}

// Is reports whether the target error matches this error or its cause.
func (e *PipelineError) Is(target error) bool {
	if target == nil {
		return false
	}
	return errors.Is(e.Cause, target)
}

// ErrorBuilder provides a fluent interface for building PipelineErrors.
type ErrorBuilder struct {
	err PipelineError
}

// NewError creates a new error builder for the given stage and operation.
func NewError(stage, op string) *ErrorBuilder {
	return &ErrorBuilder{err: PipelineError{Stage: stage, Op: op}}
}

// Path sets the input path.
func (b *ErrorBuilder) Path(path string) *ErrorBuilder {
	b.err.Path = path
	return b
}

// Column sets the column name.
func (b *ErrorBuilder) Column(name string) *ErrorBuilder {
	b.err.Column = name
	return b
}

// Line sets the 1-based line number.
func (b *ErrorBuilder) Line(n int) *ErrorBuilder {
	b.err.Line = n
	return b
}

// Context sets additional context information.
func (b *ErrorBuilder) Context(ctx string) *ErrorBuilder {
	b.err.Context = ctx
	return b
}

// Cause sets the underlying error cause.
func (b *ErrorBuilder) Cause(err error) *ErrorBuilder {
	b.err.Cause = err
	return b
}

// Err returns the error as an error interface.
func (b *ErrorBuilder) Err() error {
	return &b.err
}

// FileAccessError creates a load-stage file access error.
func FileAccessError(op, path string, cause error) error {
	return NewError("load", op).Path(path).Cause(fmt.Errorf("%w: %v", ErrFileAccess, cause)).Err()
}

// DataFormatError creates a load-stage structural format error.
func DataFormatError(op, path string, line int, cause error) error {
	return NewError("load", op).Path(path).Line(line).Cause(fmt.Errorf("%w: %v", ErrDataFormat, cause)).Err()
}
