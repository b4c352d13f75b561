package ast

// PermissionsKind distinguishes the three representations a permissions
// key can take, plus its absence. Encoding this as an explicit tag (rather
// than nullable fields) keeps exemption logic from being implemented by
// accident on the wrong branch.
type PermissionsKind int

const (
	// PermissionsUnspecified means the permissions key is absent and the
	// grant is inherited from defaults. Carries no span.
	PermissionsUnspecified PermissionsKind = iota
	// PermissionsReadAll is the bare "read-all" shorthand.
	PermissionsReadAll
	// PermissionsWriteAll is the bare "write-all" shorthand.
	PermissionsWriteAll
	// PermissionsExplicit is a per-scope map, possibly empty.
	PermissionsExplicit
)

// String returns the kind as it is written in workflow files.
func (k PermissionsKind) String() string {
	switch k {
	case PermissionsReadAll:
		return "read-all"
	case PermissionsWriteAll:
		return "write-all"
	case PermissionsExplicit:
		return "explicit"
	default:
		return "unspecified"
	}
}

// Permissions is the tri-state GITHUB_TOKEN grant at workflow or job level.
type Permissions struct {
	// Kind selects the representation.
	Kind PermissionsKind

	// Scopes are the entries of an explicit map, in document order.
	// Unknown scope names are preserved, not rejected, to stay forward
	// compatible with new GitHub token scopes.
	Scopes []Scope

	// Span is the span of the permissions value: the shorthand scalar, or
	// the explicit map. Zero for Unspecified.
	Span Span
}

// Scope is one entry of an explicit permissions map, e.g. "contents: read".
type Scope struct {
	Name  String
	Level String
}

// IsShorthand returns true for the read-all / write-all forms.
func (p Permissions) IsShorthand() bool {
	return p.Kind == PermissionsReadAll || p.Kind == PermissionsWriteAll
}

// Scope returns the level declared for the named scope, or nil if the
// scope is not listed.
func (p Permissions) Scope(name string) *String {
	for i := range p.Scopes {
		if p.Scopes[i].Name.Value == name {
			return &p.Scopes[i].Level
		}
	}
	return nil
}

// GrantsNothing returns true for an explicit map in which every listed
// scope is set to "none". The empty map does not qualify; it must name at
// least one scope.
func (p Permissions) GrantsNothing() bool {
	if p.Kind != PermissionsExplicit || len(p.Scopes) == 0 {
		return false
	}
	for _, scope := range p.Scopes {
		if scope.Level.Value != "none" {
			return false
		}
	}
	return true
}
