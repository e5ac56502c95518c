package internal

import "strings"

// OpError records a recoverable failure of a single filesystem or parse
// operation. The pipeline reports it and moves on to the next unit of work.
type OpError struct {
	// Op describes what was attempted, e.g. "read namespace file"
	Op string
	// Path is the file or directory involved
	Path string
	// Err is the underlying cause
	Err error
}

// NewOpError wraps err with operation and path context. Returns nil for a nil error.
func NewOpError(op, path string, err error) *OpError {
	if err == nil {
		return nil
	}
	return &OpError{Op: op, Path: path, Err: err}
}

// Error implements the error interface.
func (e *OpError) Error() string {
	var msg strings.Builder

	msg.WriteString("failed to ")
	msg.WriteString(e.Op)

	if e.Path != "" {
		msg.WriteString(": ")
		msg.WriteString(e.Path)
	}

	if e.Err != nil {
		msg.WriteString(": ")
		msg.WriteString(e.Err.Error())
	}

	return msg.String()
}

// Unwrap returns the underlying cause for use with errors.Is/As.
func (e *OpError) Unwrap() error {
	return e.Err
}
