package parser

import (
	"strings"
	"testing"

	"gantry-hq/gantry/pkg/workflow/ast"
	wferrors "gantry-hq/gantry/pkg/workflow/errors"
)

func TestLoad_PreservesKeyOrder(t *testing.T) {
	src := []byte("zebra: 1\nalpha: 2\nmiddle: 3\n")

	root, err := Load(src, "test.yml")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if root.Kind != ast.KindMapping {
		t.Fatalf("root kind = %v, want mapping", root.Kind)
	}

	want := []string{"zebra", "alpha", "middle"}
	if len(root.Pairs) != len(want) {
		t.Fatalf("len(Pairs) = %d, want %d", len(root.Pairs), len(want))
	}
	for i, key := range want {
		if root.Pairs[i].Key.Value != key {
			t.Errorf("Pairs[%d].Key = %q, want %q", i, root.Pairs[i].Key.Value, key)
		}
	}
}

func TestLoad_DuplicateKeyRejected(t *testing.T) {
	src := []byte("a: 1\nb: 2\na: 3\n")

	_, err := Load(src, "test.yml")
	if err == nil {
		t.Fatal("Load() succeeded, want duplicate key error")
	}

	werr, ok := err.(*wferrors.Error)
	if !ok {
		t.Fatalf("error type = %T, want *wferrors.Error", err)
	}
	if werr.Type != wferrors.ErrorTypeSyntax {
		t.Errorf("error type = %v, want syntax", werr.Type)
	}
	if !strings.Contains(werr.Message, `duplicate mapping key "a"`) {
		t.Errorf("message = %q, want duplicate key mention", werr.Message)
	}
	// The error points at the second occurrence.
	if werr.Span.Line != 3 || werr.Span.Column != 1 {
		t.Errorf("span = %d:%d, want 3:1", werr.Span.Line, werr.Span.Column)
	}
}

func TestLoad_MalformedInput(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"unclosed flow sequence", "a: [1, 2\n"},
		{"tab indentation", "a:\n\tb: 1\n"},
		{"bad mapping", "a: b: c: d\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load([]byte(tt.src), "test.yml")
			if err == nil {
				t.Fatal("Load() succeeded, want syntax error")
			}
			werr, ok := err.(*wferrors.Error)
			if !ok {
				t.Fatalf("error type = %T, want *wferrors.Error", err)
			}
			if werr.Type != wferrors.ErrorTypeSyntax {
				t.Errorf("error type = %v, want syntax", werr.Type)
			}
		})
	}
}

func TestLoad_ScalarsKeepRawForm(t *testing.T) {
	src := []byte("version: 1.0\nenabled: yes\nempty: \"\"\n")

	root, err := Load(src, "test.yml")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	tests := []struct {
		key, want string
	}{
		{"version", "1.0"},
		{"enabled", "yes"},
		{"empty", ""},
	}
	for _, tt := range tests {
		node := root.Get(tt.key)
		if node == nil {
			t.Fatalf("Get(%q) = nil", tt.key)
		}
		if node.Value != tt.want {
			t.Errorf("%s = %q, want %q", tt.key, node.Value, tt.want)
		}
	}
}

func TestLoad_PlainScalarSpan(t *testing.T) {
	src := []byte("name: CI\n")

	root, err := Load(src, "test.yml")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	value := root.Get("name")
	want := ast.Span{Offset: 6, Line: 1, Column: 7, Length: 2}
	if value.Span != want {
		t.Errorf("span = %+v, want %+v", value.Span, want)
	}
	if got := string(src[value.Span.Offset:value.Span.End()]); got != "CI" {
		t.Errorf("source slice = %q, want %q", got, "CI")
	}
}

func TestLoad_QuotedScalarSpanSkipsQuote(t *testing.T) {
	src := []byte("name: \"CI\"\n")

	root, err := Load(src, "test.yml")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	value := root.Get("name")
	if value.Style != ast.StyleDoubleQuoted {
		t.Errorf("style = %v, want double quoted", value.Style)
	}
	want := ast.Span{Offset: 7, Line: 1, Column: 8, Length: 2}
	if value.Span != want {
		t.Errorf("span = %+v, want %+v", value.Span, want)
	}
	if got := string(src[value.Span.Offset:value.Span.End()]); got != "CI" {
		t.Errorf("source slice = %q, want %q", got, "CI")
	}
}

func TestLoad_LiteralBlockSpanStartsAtContent(t *testing.T) {
	src := []byte("run: |\n  echo hi\n")

	root, err := Load(src, "test.yml")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	value := root.Get("run")
	if value.Style != ast.StyleLiteral {
		t.Errorf("style = %v, want literal", value.Style)
	}
	if value.Value != "echo hi\n" {
		t.Errorf("value = %q, want %q", value.Value, "echo hi\n")
	}
	if value.Span.Line != 2 || value.Span.Column != 3 {
		t.Errorf("span = %d:%d, want 2:3", value.Span.Line, value.Span.Column)
	}
	if value.Span.Offset != 9 {
		t.Errorf("offset = %d, want 9", value.Span.Offset)
	}
}

func TestLoad_ContainerSpanCoversDescendants(t *testing.T) {
	src := []byte("jobs:\n  build:\n    runs-on: ubuntu-latest\n")

	root, err := Load(src, "test.yml")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	jobs := root.Get("jobs")
	if jobs.Kind != ast.KindMapping {
		t.Fatalf("jobs kind = %v, want mapping", jobs.Kind)
	}
	if jobs.Span.End() <= jobs.Span.Offset {
		t.Errorf("container span %+v does not cover its descendants", jobs.Span)
	}
	if got := string(src[jobs.Span.Offset:jobs.Span.End()]); !strings.Contains(got, "ubuntu-latest") {
		t.Errorf("container slice %q does not reach the last scalar", got)
	}
}

func TestLoad_EmptyDocument(t *testing.T) {
	for _, src := range []string{"", "\n", "# only a comment\n"} {
		root, err := Load([]byte(src), "test.yml")
		if err != nil {
			t.Fatalf("Load(%q) failed: %v", src, err)
		}
		if root.Kind != ast.KindNull {
			t.Errorf("Load(%q) kind = %v, want null", src, root.Kind)
		}
	}
}

func TestLoad_NullValue(t *testing.T) {
	root, err := Load([]byte("permissions:\n"), "test.yml")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	value := root.Get("permissions")
	if value == nil || !value.IsNull() {
		t.Errorf("permissions value = %+v, want null node", value)
	}
}

func TestLoad_AliasResolves(t *testing.T) {
	src := []byte("a: &x hello\nb: *x\n")

	root, err := Load(src, "test.yml")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	b := root.Get("b")
	if b == nil || b.Value != "hello" {
		t.Errorf("aliased value = %+v, want scalar %q", b, "hello")
	}
}

func TestLoad_Sequence(t *testing.T) {
	src := []byte("on:\n  - push\n  - pull_request\n")

	root, err := Load(src, "test.yml")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	on := root.Get("on")
	if on.Kind != ast.KindSequence {
		t.Fatalf("on kind = %v, want sequence", on.Kind)
	}
	if len(on.Items) != 2 {
		t.Fatalf("len(Items) = %d, want 2", len(on.Items))
	}
	if on.Items[0].Value != "push" || on.Items[1].Value != "pull_request" {
		t.Errorf("items = %q, %q; want push, pull_request", on.Items[0].Value, on.Items[1].Value)
	}
}
