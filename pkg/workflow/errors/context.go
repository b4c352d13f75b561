package errors

import (
	"fmt"
	"strings"
)

// ExtractContext slices the surrounding lines out of the raw document for
// error context display. It returns a formatted string showing the error
// line with line numbers and a column indicator.
func ExtractContext(source []byte, line, column, contextLines int) string {
	if line <= 0 || len(source) == 0 {
		return ""
	}

	lines := strings.Split(string(source), "\n")

	errorLine := line - 1 // 0-based index
	if errorLine >= len(lines) {
		return ""
	}

	startLine := errorLine - contextLines
	endLine := errorLine + contextLines
	if startLine < 0 {
		startLine = 0
	}
	if endLine >= len(lines) {
		endLine = len(lines) - 1
	}

	var sb strings.Builder
	maxLineNumWidth := len(fmt.Sprintf("%d", endLine+1))

	for i := startLine; i <= endLine; i++ {
		lineNumStr := fmt.Sprintf("%*d", maxLineNumWidth, i+1)
		prefix := "  "
		if i == errorLine {
			prefix = "->"
		}

		sb.WriteString(fmt.Sprintf("%s %s | %s\n", prefix, lineNumStr, lines[i]))

		if i == errorLine && column > 0 {
			padding := strings.Repeat(" ", column-1)
			sb.WriteString(fmt.Sprintf("   %s | %s^\n", strings.Repeat(" ", maxLineNumWidth), padding))
		}
	}

	return sb.String()
}

// WithContext enriches an error with source context extracted from the raw
// document. Safe to call with any span; errors without a valid span are
// returned unchanged.
func WithContext(err *Error, source []byte) *Error {
	if err.Span.IsValid() {
		err.Context = ExtractContext(source, err.Span.Line, err.Span.Column, 2)
	}
	return err
}
