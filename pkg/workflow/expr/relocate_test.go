package expr

import (
	"testing"

	"gantry-hq/gantry/pkg/workflow/ast"
)

func TestRelocate_SingleLine(t *testing.T) {
	// Scalar content starting at line 5, column 14, offset 80.
	base := ast.Span{Offset: 80, Line: 5, Column: 14, Length: 22}
	text := "echo ${{ github.ref }}"

	span := Relocate(base, text, 5, 17)

	if span.Offset != 85 {
		t.Errorf("Offset = %d, want 85", span.Offset)
	}
	if span.Line != 5 {
		t.Errorf("Line = %d, want 5", span.Line)
	}
	if span.Column != 19 {
		t.Errorf("Column = %d, want 19", span.Column)
	}
	if span.Length != 17 {
		t.Errorf("Length = %d, want 17", span.Length)
	}
}

func TestRelocate_AfterNewline(t *testing.T) {
	base := ast.Span{Offset: 100, Line: 10, Column: 9}
	text := "set -e\necho ${{ github.ref }}\n"

	// The interpolation starts at offset 12, on the second line.
	span := Relocate(base, text, 12, 17)

	if span.Offset != 112 {
		t.Errorf("Offset = %d, want 112", span.Offset)
	}
	if span.Line != 11 {
		t.Errorf("Line = %d, want 11", span.Line)
	}
	// Column restarts after the newline: offset 12 minus the newline at 6.
	if span.Column != 6 {
		t.Errorf("Column = %d, want 6", span.Column)
	}
}

func TestRelocate_ClampsOffset(t *testing.T) {
	base := ast.Span{Offset: 0, Line: 1, Column: 1}
	span := Relocate(base, "short", 99, 3)
	if span.Offset != 5 {
		t.Errorf("Offset = %d, want 5", span.Offset)
	}
}

func TestRelocateInScalar_LiteralBlockIndent(t *testing.T) {
	// A literal block whose content starts at column 9 carries 8 columns
	// of indentation that every stored line has been stripped of.
	s := &ast.String{
		Value: "set -e\necho ${{ github.ref }}\n",
		Style: ast.StyleLiteral,
		Span:  ast.Span{Offset: 100, Line: 10, Column: 9},
	}

	span := RelocateInScalar(s, 12, 17)

	if span.Line != 11 {
		t.Errorf("Line = %d, want 11", span.Line)
	}
	// 6 within the logical line plus the 8 stripped indent columns.
	if span.Column != 14 {
		t.Errorf("Column = %d, want 14", span.Column)
	}
	// One newline crossed, so one line's worth of indent is added back.
	if span.Offset != 120 {
		t.Errorf("Offset = %d, want 120", span.Offset)
	}
}

func TestRelocateInScalar_PlainPassthrough(t *testing.T) {
	s := &ast.String{
		Value: "echo ${{ a }}",
		Style: ast.StylePlain,
		Span:  ast.Span{Offset: 50, Line: 3, Column: 12},
	}

	span := RelocateInScalar(s, 5, 8)

	if span.Offset != 55 || span.Line != 3 || span.Column != 17 {
		t.Errorf("span = %+v, want {Offset:55 Line:3 Column:17}", span)
	}
}
