package parser

import (
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"gantry-hq/gantry/pkg/workflow/ast"
	wferrors "gantry-hq/gantry/pkg/workflow/errors"
)

// loader converts a yaml.v3 node tree into the generic document tree,
// computing byte-accurate spans against the raw input.
type loader struct {
	sourcePath string
	source     []byte
	lineStarts []int
}

// Load parses raw workflow bytes into a generic document tree. Mapping key
// order is preserved and duplicate keys within one mapping are rejected as
// a syntax error. Scalars retain their raw textual form. Any yaml error
// surfaces as a typed syntax error, never a partial tree.
func Load(data []byte, sourcePath string) (*ast.Node, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, syntaxError(err, sourcePath)
	}

	l := &loader{
		sourcePath: sourcePath,
		source:     data,
		lineStarts: buildLineIndex(data),
	}

	root := &doc
	if root.Kind == yaml.DocumentNode {
		if len(root.Content) == 0 {
			// Empty document.
			return &ast.Node{Kind: ast.KindNull}, nil
		}
		root = root.Content[0]
	}
	if root.Kind == 0 {
		return &ast.Node{Kind: ast.KindNull}, nil
	}

	return l.convert(root)
}

// convert maps one yaml node onto the generic tree.
func (l *loader) convert(n *yaml.Node) (*ast.Node, error) {
	switch n.Kind {
	case yaml.AliasNode:
		return l.convert(n.Alias)

	case yaml.ScalarNode:
		if n.Tag == "!!null" {
			return &ast.Node{Kind: ast.KindNull, Span: l.scalarSpan(n)}, nil
		}
		return &ast.Node{
			Kind:  ast.KindScalar,
			Value: n.Value,
			Style: scalarStyle(n),
			Span:  l.scalarSpan(n),
		}, nil

	case yaml.SequenceNode:
		node := &ast.Node{
			Kind:  ast.KindSequence,
			Items: make([]*ast.Node, 0, len(n.Content)),
		}
		for _, item := range n.Content {
			child, err := l.convert(item)
			if err != nil {
				return nil, err
			}
			node.Items = append(node.Items, child)
		}
		node.Span = l.containerSpan(n, node)
		return node, nil

	case yaml.MappingNode:
		node := &ast.Node{
			Kind:  ast.KindMapping,
			Pairs: make([]ast.Pair, 0, len(n.Content)/2),
		}
		seen := make(map[string]bool, len(n.Content)/2)
		for i := 0; i+1 < len(n.Content); i += 2 {
			key, err := l.convert(n.Content[i])
			if err != nil {
				return nil, err
			}
			if key.Kind == ast.KindScalar && seen[key.Value] {
				return nil, wferrors.Syntax(
					fmt.Sprintf("duplicate mapping key %q", key.Value),
					l.sourcePath, key.Span)
			}
			if key.Kind == ast.KindScalar {
				seen[key.Value] = true
			}
			value, err := l.convert(n.Content[i+1])
			if err != nil {
				return nil, err
			}
			node.Pairs = append(node.Pairs, ast.Pair{Key: key, Value: value})
		}
		node.Span = l.containerSpan(n, node)
		return node, nil

	default:
		return nil, wferrors.Syntax(
			fmt.Sprintf("unsupported node kind %d", n.Kind),
			l.sourcePath, l.position(n.Line, n.Column, 0))
	}
}

// scalarSpan computes the span of a scalar's content. Quoted scalars are
// adjusted past the opening quote; block scalars start on the line below
// the header.
func (l *loader) scalarSpan(n *yaml.Node) ast.Span {
	line, column := n.Line, n.Column

	switch {
	case n.Style&yaml.SingleQuotedStyle != 0, n.Style&yaml.DoubleQuotedStyle != 0:
		column++
	case n.Style&yaml.LiteralStyle != 0, n.Style&yaml.FoldedStyle != 0:
		if start, indent, ok := l.blockContentStart(line); ok {
			line, column = start, indent
		}
	}

	return l.position(line, column, len(n.Value))
}

// blockContentStart locates the first content line of a block scalar whose
// header (| or >) sits on headerLine. Returns the content line and its
// 1-based starting column.
func (l *loader) blockContentStart(headerLine int) (line, column int, ok bool) {
	for line = headerLine + 1; line <= len(l.lineStarts); line++ {
		start := l.lineStarts[line-1]
		end := len(l.source)
		if line < len(l.lineStarts) {
			end = l.lineStarts[line] - 1
		}
		text := string(l.source[start:end])
		trimmed := strings.TrimLeft(text, " ")
		if trimmed == "" {
			continue // blank line before content
		}
		return line, len(text) - len(trimmed) + 1, true
	}
	return 0, 0, false
}

// containerSpan computes the span of a mapping or sequence from its own
// position to the end of its last descendant.
func (l *loader) containerSpan(n *yaml.Node, converted *ast.Node) ast.Span {
	span := l.position(n.Line, n.Column, 0)

	end := span.Offset
	switch converted.Kind {
	case ast.KindSequence:
		for _, item := range converted.Items {
			if e := item.Span.End(); e > end {
				end = e
			}
		}
	case ast.KindMapping:
		for _, pair := range converted.Pairs {
			if e := pair.Value.Span.End(); e > end {
				end = e
			}
			if e := pair.Key.Span.End(); e > end {
				end = e
			}
		}
	}
	span.Length = end - span.Offset
	return span
}

// position converts a 1-based line/column into a full span with byte
// offset.
func (l *loader) position(line, column, length int) ast.Span {
	offset := 0
	if line >= 1 && line <= len(l.lineStarts) {
		offset = l.lineStarts[line-1] + column - 1
		if offset > len(l.source) {
			offset = len(l.source)
		}
	}
	return ast.Span{Offset: offset, Line: line, Column: column, Length: length}
}

// buildLineIndex returns the byte offset of the start of every line.
func buildLineIndex(data []byte) []int {
	starts := []int{0}
	for i, b := range data {
		if b == '\n' && i+1 < len(data) {
			starts = append(starts, i+1)
		}
	}
	return starts
}

// scalarStyle maps the yaml style bits onto the generic style.
func scalarStyle(n *yaml.Node) ast.ScalarStyle {
	switch {
	case n.Style&yaml.SingleQuotedStyle != 0:
		return ast.StyleSingleQuoted
	case n.Style&yaml.DoubleQuotedStyle != 0:
		return ast.StyleDoubleQuoted
	case n.Style&yaml.LiteralStyle != 0:
		return ast.StyleLiteral
	case n.Style&yaml.FoldedStyle != 0:
		return ast.StyleFolded
	default:
		return ast.StylePlain
	}
}

// syntaxError wraps a yaml.v3 error as a typed syntax error, extracting
// the best-effort line number from messages of the form "yaml: line N: ...".
func syntaxError(err error, sourcePath string) *wferrors.Error {
	msg := err.Error()
	span := ast.Span{}

	if rest, ok := strings.CutPrefix(msg, "yaml: line "); ok {
		if lineStr, detail, found := strings.Cut(rest, ":"); found {
			if line, convErr := strconv.Atoi(lineStr); convErr == nil {
				span = ast.Span{Line: line, Column: 1}
				msg = strings.TrimSpace(detail)
			}
		}
	}

	e := wferrors.Syntax(msg, sourcePath, span)
	e.Suggestion = "check YAML syntax (indentation, colons, quotes)"
	return e
}
