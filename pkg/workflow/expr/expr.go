// Package expr scans string fields for the `${{ ... }}` expression syntax
// that the GitHub Actions runner interpolates, and converts match positions
// back into absolute source spans.
//
// The scanner is a tokenizer, not an interpreter: policies pattern-match
// expression occurrences but never evaluate them.
package expr

import "strings"

// TokenKind distinguishes literal text from interpolated expressions.
type TokenKind int

const (
	// KindString is a string literal outside of an expression.
	KindString TokenKind = iota
	// KindExpression is the inside of a `${{ ... }}` interpolation.
	KindExpression
)

const (
	exprOpen  = "${{"
	exprClose = "}}"
)

// Token is one segment of a scanned string. Offset is the byte position of
// the segment within the scanned text; for expressions it points at the
// opening `${{` delimiter.
type Token struct {
	Kind   TokenKind
	Value  string
	Offset int
}

// Tokenize splits text into alternating string and expression tokens.
// An expression missing its closing `}}` consumes the remainder of the
// text; this is not an error. The empty string yields a single empty
// string token.
func Tokenize(text string) []Token {
	tokens := make([]Token, 0, 1)
	pos := 0
	remainder := text

	for {
		open := strings.Index(remainder, exprOpen)
		if open < 0 {
			tokens = append(tokens, Token{Kind: KindString, Value: remainder, Offset: pos})
			return tokens
		}

		tokens = append(tokens, Token{Kind: KindString, Value: remainder[:open], Offset: pos})

		body := remainder[open+len(exprOpen):]
		closing := strings.Index(body, exprClose)
		if closing < 0 {
			// Unterminated expression: take everything to EOF.
			tokens = append(tokens, Token{Kind: KindExpression, Value: body, Offset: pos + open})
			return tokens
		}

		tokens = append(tokens, Token{Kind: KindExpression, Value: body[:closing], Offset: pos + open})

		consumed := open + len(exprOpen) + closing + len(exprClose)
		pos += consumed
		remainder = remainder[consumed:]
	}
}

// Expressions returns only the expression tokens of text.
func Expressions(text string) []Token {
	var exprs []Token
	for _, tok := range Tokenize(text) {
		if tok.Kind == KindExpression {
			exprs = append(exprs, tok)
		}
	}
	return exprs
}

// ContainsExpression reports whether text embeds at least one `${{ ... }}`
// interpolation.
func ContainsExpression(text string) bool {
	return strings.Contains(text, exprOpen)
}
