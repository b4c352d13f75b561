// Package ast defines the document tree and typed workflow model produced
// by the workflow parser.
//
// Parsing happens in two stages. The loader first produces a generic tree
// of Node values (scalar, sequence, mapping, null), each carrying a Span
// pointing at the exact source text it was read from. The builder then maps
// that tree onto the typed model (Workflow, Job, Step, Permissions), which
// is what policies evaluate.
//
// # Spans
//
// Every retained field carries the Span of the text it was built from.
// Spans are never synthesized for inferred or defaulted values: a field
// with a zero (invalid) Span was not present in source. This is what lets
// findings point at real text.
//
// # Permissions
//
// The GITHUB_TOKEN grant has three distinct source representations plus
// absence, modeled as an explicit tagged value rather than optional fields:
//
//	permissions:                # absent        -> PermissionsUnspecified
//	permissions: read-all       # shorthand     -> PermissionsReadAll
//	permissions: write-all      # shorthand     -> PermissionsWriteAll
//	permissions:                # explicit map  -> PermissionsExplicit
//	  contents: read
//
// # Immutability
//
// The model is built once and treated as immutable afterwards. Policies
// hold it read-only, which is what allows them to run concurrently.
package ast
