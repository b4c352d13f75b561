package ast

// Workflow is the typed root of a parsed GitHub Actions workflow document.
// Only the keys the policies reason about are modeled; unknown keys are
// ignored by the builder for forward compatibility. Every retained field
// carries the span of the text it was built from.
type Workflow struct {
	// Name is the workflow's display name, if present.
	Name *String

	// On holds the trigger metadata as a generic subtree. Policies that
	// care about trigger events pattern-match it without a typed model.
	On *Node

	// Permissions is the workflow-level GITHUB_TOKEN grant. The tri-state
	// distinguishes absence, shorthand, and an explicit scope map.
	Permissions Permissions

	// Env are workflow-level environment variables, in document order.
	Env []KeyValue

	// Jobs are the workflow's jobs in document order.
	Jobs []*Job

	// Span covers the document root.
	Span Span
}

// Job returns the job with the given name, or nil if not found.
func (w *Workflow) Job(name string) *Job {
	for _, job := range w.Jobs {
		if job.Name == name {
			return job
		}
	}
	return nil
}

// JobCount returns the number of jobs in the workflow.
func (w *Workflow) JobCount() int {
	return len(w.Jobs)
}

// Job is a named unit of work within a workflow.
type Job struct {
	// Name is the job's key in the jobs mapping, unique per workflow.
	Name string

	// NameSpan is the span of the job-name key itself. Findings about a
	// job that has no finer span to point at use this.
	NameSpan Span

	// Permissions is the job-level GITHUB_TOKEN grant, same tri-state as
	// the workflow level.
	Permissions Permissions

	// RunsOn is the runner label, if present.
	RunsOn *String

	// Env are job-level environment variables, in document order.
	Env []KeyValue

	// Steps are the job's steps in execution order.
	Steps []*Step

	// Span covers the job's body mapping.
	Span Span
}

// EffectivePermissions resolves the permission grant that applies to the
// job: the job's own declaration when present, otherwise the workflow's.
// The result is Unspecified only if neither level declares one.
func (j *Job) EffectivePermissions(w *Workflow) Permissions {
	if j.Permissions.Kind != PermissionsUnspecified {
		return j.Permissions
	}
	return w.Permissions
}

// Step is one task within a job, addressable by its zero-based index.
type Step struct {
	// Index is the step's position within its job.
	Index int

	// ID is the step's unique identifier, if present.
	ID *String

	// If is the step's conditional expression, if present.
	If *String

	// Name is the step's display name, if present.
	Name *String

	// Uses is an action reference, if present.
	Uses *String

	// Run is the shell command text, if present. May embed ${{ ... }}
	// expression syntax.
	Run *String

	// Shell overrides the shell for this step, if present.
	Shell *String

	// WorkingDirectory is the step's working directory, if present.
	WorkingDirectory *String

	// With are the action's input parameters, in document order.
	With []KeyValue

	// Env are step-level environment variables, in document order.
	Env []KeyValue

	// Span covers the step's mapping.
	Span Span
}

// String is a scalar string value together with the span of its content
// in source.
type String struct {
	Value string
	Style ScalarStyle
	Span  Span
}

// KeyValue is one entry of an ordered string mapping (env, with).
type KeyValue struct {
	Key   String
	Value String
}
