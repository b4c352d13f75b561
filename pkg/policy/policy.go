package policy

import "gantry-hq/gantry/pkg/workflow/ast"

// Policy is one independently testable security rule. Implementations
// must be pure functions of the workflow: no I/O, no mutation of the
// model, no shared state with other policies, and no dependence on the
// order policies run in.
type Policy interface {
	// Descriptor returns the policy's static metadata.
	Descriptor() Descriptor

	// Evaluate inspects the workflow and returns zero or more findings.
	// The result is always a well-formed slice, never nil.
	Evaluate(wf *ast.Workflow) []Finding
}

// Descriptor is a policy's static metadata, registered once and read-only
// for the process lifetime.
type Descriptor struct {
	// ID is the stable lowercase snake_case identifier used in listings,
	// lookups, and configuration.
	ID string `json:"id"`

	// Short is a one-line description for listings.
	Short string `json:"short"`

	// Long is the full documentation text rendered verbatim by `show`:
	// risk explanation, examples, references.
	Long string `json:"long,omitempty"`

	// Severity is the default severity of the policy's findings.
	Severity Severity `json:"severity"`

	// DefaultEnabled reports whether the policy runs when configuration
	// does not mention it.
	DefaultEnabled bool `json:"default_enabled"`
}
