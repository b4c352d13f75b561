package errors

import (
	"fmt"
	"strings"

	"gantry-hq/gantry/pkg/workflow/ast"
)

// ErrorType categorizes the type of error encountered while loading or
// modeling a workflow document.
type ErrorType string

const (
	// ErrorTypeSyntax is a malformed document: the byte stream is not
	// well-formed YAML, or a mapping contains a duplicate key.
	ErrorTypeSyntax ErrorType = "syntax"
	// ErrorTypeStructural is a structurally valid but semantically wrong
	// document, e.g. "jobs" present but not a mapping.
	ErrorTypeStructural ErrorType = "structural"
	// ErrorTypeIO is a file access error.
	ErrorTypeIO ErrorType = "io"
)

// Error is a workflow loading or modeling error with enough location
// information for a caller to render a one-line diagnostic without
// re-parsing the document.
type Error struct {
	Type       ErrorType // Category of error
	Message    string    // Error message
	File       string    // Path of the document, if known
	Span       ast.Span  // Offending source location
	Expected   string    // Expected shape (structural errors)
	Found      string    // Shape actually found (structural errors)
	Context    string    // Surrounding source lines
	Suggestion string    // Suggested fix (optional)
}

// Error implements the error interface. It returns a formatted message
// with location, context, and suggestion when available.
func (e *Error) Error() string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("[%s] %s", e.Type, e.Message))
	if e.Expected != "" {
		sb.WriteString(fmt.Sprintf(" (expected %s, found %s)", e.Expected, e.Found))
	}
	sb.WriteString("\n")

	if e.Span.IsValid() {
		sb.WriteString(fmt.Sprintf("  --> %s:%s\n", e.File, e.Span))
	} else if e.File != "" {
		sb.WriteString(fmt.Sprintf("  --> %s\n", e.File))
	}

	if e.Context != "" {
		sb.WriteString("  |\n")
		sb.WriteString(e.Context)
		sb.WriteString("  |\n")
	}

	if e.Suggestion != "" {
		sb.WriteString(fmt.Sprintf("  = suggestion: %s\n", e.Suggestion))
	}

	return sb.String()
}

// Syntax creates a syntax error at the given location.
func Syntax(message string, file string, span ast.Span) *Error {
	return &Error{
		Type:    ErrorTypeSyntax,
		Message: message,
		File:    file,
		Span:    span,
	}
}

// Structural creates a structural (unexpected shape) error at the given
// location.
func Structural(message, expected, found, file string, span ast.Span) *Error {
	return &Error{
		Type:     ErrorTypeStructural,
		Message:  message,
		Expected: expected,
		Found:    found,
		File:     file,
		Span:     span,
	}
}

// IO creates a file access error.
func IO(message, file string) *Error {
	return &Error{
		Type:    ErrorTypeIO,
		Message: message,
		File:    file,
	}
}
