package packager

import (
	"errors"
	"fmt"
)

// ErrSetup marks fatal errors that abort a run before any item is processed.
var ErrSetup = errors.New("packaging setup failed")

// SetupError describes why a run could not start.
type SetupError struct {
	Op   string // e.g. "create destination"
	Path string
	Err  error
}

func (e *SetupError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

// Unwrap exposes both ErrSetup and the underlying cause.
func (e *SetupError) Unwrap() []error {
	return []error{ErrSetup, e.Err}
}

// sourceError wraps a failure to open or read a source file, so that a
// missing source is never confused with a missing path on the write side.
type sourceError struct {
	Path string
	Err  error
}

func (e *sourceError) Error() string {
	return fmt.Sprintf("reading %s: %v", e.Path, e.Err)
}

func (e *sourceError) Unwrap() error { return e.Err }
