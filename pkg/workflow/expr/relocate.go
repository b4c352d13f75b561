package expr

import (
	"strings"

	"gantry-hq/gantry/pkg/workflow/ast"
)

// Relocate computes the absolute source span of a substring of a scalar:
// the scalar's start position plus the substring's offset within the
// scalar text, with newline-aware line/column recomputation. base is the
// span of the scalar's content, text the scalar value, offset/length the
// substring position within text.
//
// The transform is exact for scalars whose content maps byte-for-byte onto
// source (plain and quoted single-line scalars, literal blocks without
// re-indentation); for folded or escaped scalars it is best effort.
func Relocate(base ast.Span, text string, offset, length int) ast.Span {
	if offset < 0 {
		offset = 0
	}
	if offset > len(text) {
		offset = len(text)
	}

	prefix := text[:offset]
	newlines := strings.Count(prefix, "\n")

	span := ast.Span{
		Offset: base.Offset + offset,
		Length: length,
	}
	if newlines == 0 {
		span.Line = base.Line
		span.Column = base.Column + offset
	} else {
		span.Line = base.Line + newlines
		span.Column = offset - strings.LastIndexByte(prefix, '\n')
	}
	return span
}

// RelocateInScalar relocates a substring of a parsed scalar, compensating
// for the indentation that literal block scalars strip from every line
// after the first.
func RelocateInScalar(s *ast.String, offset, length int) ast.Span {
	span := Relocate(s.Span, s.Value, offset, length)

	if s.Style == ast.StyleLiteral {
		if offset > len(s.Value) {
			offset = len(s.Value)
		}
		newlines := strings.Count(s.Value[:offset], "\n")
		if newlines > 0 {
			indent := s.Span.Column - 1
			span.Column += indent
			span.Offset += newlines * indent
		}
	}
	return span
}
