package ast

// NodeKind identifies the shape of a generic document node.
type NodeKind int

const (
	// KindNull is an explicit null value.
	KindNull NodeKind = iota
	// KindScalar is a scalar value (string, number, boolean) kept in its
	// raw textual form.
	KindScalar
	// KindSequence is an ordered list of nodes.
	KindSequence
	// KindMapping is an ordered list of key/value pairs with unique keys.
	KindMapping
)

// String returns the kind name as used in diagnostics.
func (k NodeKind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindScalar:
		return "scalar"
	case KindSequence:
		return "sequence"
	case KindMapping:
		return "mapping"
	default:
		return "unknown"
	}
}

// ScalarStyle records how a scalar was written in source. The builder uses
// it to locate the scalar's content and policies can use it to distinguish
// quoted strings from bare values.
type ScalarStyle int

const (
	// StylePlain is an unquoted scalar.
	StylePlain ScalarStyle = iota
	// StyleSingleQuoted is a scalar written with single quotes.
	StyleSingleQuoted
	// StyleDoubleQuoted is a scalar written with double quotes.
	StyleDoubleQuoted
	// StyleLiteral is a literal block scalar (|).
	StyleLiteral
	// StyleFolded is a folded block scalar (>).
	StyleFolded
)

// Node is one node of the generic document tree produced by the loader.
// The tree is strictly tree-shaped: single root, no back-references.
// Exactly one of Value, Items, or Pairs is meaningful depending on Kind.
type Node struct {
	// Kind is the node shape.
	Kind NodeKind

	// Value is the raw scalar text. Scalars are not type-coerced, so a
	// quoted "true" remains distinguishable from a bare true via Style.
	Value string

	// Style is the scalar style. Only meaningful for KindScalar.
	Style ScalarStyle

	// Items are the elements of a sequence, in document order.
	Items []*Node

	// Pairs are the entries of a mapping, in document order. Keys are
	// unique within one mapping; the loader rejects duplicates.
	Pairs []Pair

	// Span is the node's source location. For quoted scalars it covers
	// the scalar content, not the surrounding quotes.
	Span Span
}

// Pair is one key/value entry of a mapping node.
type Pair struct {
	Key   *Node
	Value *Node
}

// Get returns the value node for the given mapping key, or nil if the key
// is absent or the node is not a mapping.
func (n *Node) Get(key string) *Node {
	pair := n.GetPair(key)
	if pair == nil {
		return nil
	}
	return pair.Value
}

// GetPair returns the full pair for the given mapping key, or nil if the
// key is absent or the node is not a mapping. Callers use the key node's
// span when a finding should point at the key rather than the value.
func (n *Node) GetPair(key string) *Pair {
	if n == nil || n.Kind != KindMapping {
		return nil
	}
	for i := range n.Pairs {
		if n.Pairs[i].Key != nil && n.Pairs[i].Key.Value == key {
			return &n.Pairs[i]
		}
	}
	return nil
}

// IsNull returns true for explicit null nodes.
func (n *Node) IsNull() bool {
	return n == nil || n.Kind == KindNull
}
