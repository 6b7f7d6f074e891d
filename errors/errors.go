// Package errors defines the syntax errors reported while reading JsonML
// input.
package errors

import "fmt"

// ParseError represents a single error that occurred during parsing.
// It includes the position of the error.
type ParseError struct {
	Message string
	Line    int
	Column  int
}

func (p ParseError) Error() string {
	return fmt.Sprintf("line %d, column %d: %s", p.Line, p.Column, p.Message)
}

// ParseErrors is a slice of ParseError that implements the error interface.
// This allows returning all syntax errors found during parsing at once.
type ParseErrors []ParseError

func (p ParseErrors) Error() string {
	if len(p) == 0 {
		return ""
	}
	// The message for the collection reports the first error only.
	return fmt.Sprintf("jsonml: syntax error at line %d, column %d: %s", p[0].Line, p[0].Column, p[0].Message)
}
