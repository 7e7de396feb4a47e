package metadata

import (
	"encoding/xml"
	"errors"
	"fmt"
)

// ErrMissingRequiredElement indicates a field descriptor lacks fullName or
// type. The field is skipped, not fatal.
var ErrMissingRequiredElement = errors.New("descriptor missing required element")

// DescriptorError represents a structured parse error with file context.
type DescriptorError struct {
	Path    string // Path to the descriptor with the error
	Line    int    // Line number (0 if unknown)
	Message string // Primary error message
}

// Error implements the error interface.
func (e *DescriptorError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("descriptor error in %s (line %d): %s", e.Path, e.Line, e.Message)
	}
	return fmt.Sprintf("descriptor error in %s: %s", e.Path, e.Message)
}

// isMissingRequired reports whether err is a missing-required-element skip.
func isMissingRequired(err error) bool {
	return errors.Is(err, ErrMissingRequiredElement)
}

// wrapXMLError converts xml package errors to DescriptorError with line numbers.
func wrapXMLError(err error, path string) error {
	var syntaxErr *xml.SyntaxError
	if errors.As(err, &syntaxErr) {
		return &DescriptorError{
			Path:    path,
			Line:    syntaxErr.Line,
			Message: syntaxErr.Msg,
		}
	}
	return &DescriptorError{
		Path:    path,
		Message: err.Error(),
	}
}
