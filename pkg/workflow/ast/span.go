package ast

import "fmt"

// Span represents the source location of a parsed value in the original
// workflow file. Line and Column are 1-based; Offset and Length are byte
// positions into the raw input. Spans are only attached to values that
// literally appear in source text, never to inferred or defaulted values.
type Span struct {
	Offset int `json:"offset"` // Byte offset of the value start
	Line   int `json:"line"`   // Line number (1-based)
	Column int `json:"column"` // Column number (1-based)
	Length int `json:"length"` // Length of the value in bytes
}

// String returns a human-readable representation of the span.
// Format: "line:column"
func (s Span) String() string {
	if !s.IsValid() {
		return "<unknown>"
	}
	return fmt.Sprintf("%d:%d", s.Line, s.Column)
}

// IsValid returns true if the span points at a real source position.
// The zero Span is invalid and marks values absent from source.
func (s Span) IsValid() bool {
	return s.Line > 0 && s.Column > 0
}

// End returns the byte offset one past the end of the span.
func (s Span) End() int {
	return s.Offset + s.Length
}
