package models

import "fmt"

// FileAccessError reports a path that could not be opened or read.
type FileAccessError struct {
	Path string
	Err  error
}

func (e *FileAccessError) Error() string {
	return fmt.Sprintf("cannot read %s: %v", e.Path, e.Err)
}

func (e *FileAccessError) Unwrap() error { return e.Err }

// ParseError reports malformed CSV content. Line is 1-based; Column is 1-based
// or 0 when the problem concerns the whole row.
type ParseError struct {
	Path   string
	Line   int
	Column int
	Err    error
}

func (e *ParseError) Error() string {
	switch {
	case e.Line == 0:
		return fmt.Sprintf("parse %s: %v", e.Path, e.Err)
	case e.Column == 0:
		return fmt.Sprintf("parse %s:%d: %v", e.Path, e.Line, e.Err)
	}
	return fmt.Sprintf("parse %s:%d:%d: %v", e.Path, e.Line, e.Column, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// ShapeMismatchError reports x and y sequences of different lengths.
type ShapeMismatchError struct {
	XLen int
	YLen int
}

func (e *ShapeMismatchError) Error() string {
	return fmt.Sprintf("shape mismatch: %d x values, %d y values", e.XLen, e.YLen)
}
