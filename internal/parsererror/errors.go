// Package parsererror defines error types shared by the parsing packages.
package parsererror

import "fmt"

// ValidationError represents a validation failure
type ValidationError struct {
	FilePath string
	Reason   string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed for %s: %s", e.FilePath, e.Reason)
}

// FileNotFoundError constructs a ValidationError for a missing input file.
func FileNotFoundError(filePath string) *ValidationError {
	return &ValidationError{FilePath: filePath, Reason: "file not found"}
}
