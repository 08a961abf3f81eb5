// Package docstamp provides custom error types for better error handling and reporting.
package docstamp

import "fmt"

// DocumentError represents an error during document operations
type DocumentError struct {
	Operation string
	Path      string
	Cause     error
}

func (e *DocumentError) Error() string {
	if e.Path != "" && e.Cause != nil {
		return fmt.Sprintf("document error during %s of '%s': %v", e.Operation, e.Path, e.Cause)
	} else if e.Path != "" {
		return fmt.Sprintf("document error during %s of '%s'", e.Operation, e.Path)
	} else if e.Cause != nil {
		return fmt.Sprintf("document error during %s: %v", e.Operation, e.Cause)
	}
	return fmt.Sprintf("document error during %s", e.Operation)
}

func (e *DocumentError) Unwrap() error {
	return e.Cause
}

// NewDocumentError creates a new document error
func NewDocumentError(operation, path string, cause error) error {
	return &DocumentError{
		Operation: operation,
		Path:      path,
		Cause:     cause,
	}
}

// PlaceholderError represents a placeholder that could not be stamped
type PlaceholderError struct {
	Name    string
	Message string
}

func (e *PlaceholderError) Error() string {
	return fmt.Sprintf("placeholder error for '%s': %s", e.Name, e.Message)
}

// NewPlaceholderError creates a new placeholder error
func NewPlaceholderError(name, message string) error {
	return &PlaceholderError{
		Name:    name,
		Message: message,
	}
}
