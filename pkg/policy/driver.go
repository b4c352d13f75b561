package policy

import (
	"log/slog"
	"sort"
	"sync"

	"github.com/google/uuid"

	"gantry-hq/gantry/pkg/workflow/ast"
)

// Driver runs a set of policies against one parsed workflow and aggregates
// their findings into a deterministic order. The workflow is held
// read-only for the duration of a run; policies are independent, so the
// driver may fan them out across workers without changing the result.
type Driver struct {
	logger  *slog.Logger
	workers int
}

// NewDriver creates a driver. A nil logger falls back to slog.Default().
func NewDriver(logger *slog.Logger) *Driver {
	if logger == nil {
		logger = slog.Default()
	}
	return &Driver{logger: logger, workers: 1}
}

// WithConcurrency sets the number of policy evaluation workers. Sequential
// and concurrent runs produce the same final finding order.
func (d *Driver) WithConcurrency(workers int) *Driver {
	if workers < 1 {
		workers = 1
	}
	d.workers = workers
	return d
}

// Result is the aggregate outcome of evaluating one workflow.
type Result struct {
	// RunID identifies this evaluation run in logs and reports.
	RunID string `json:"run_id"`

	// Findings are the collected policy violations, sorted by
	// (line, column, policy identifier) ascending. Always non-nil.
	Findings []Finding `json:"findings"`
}

// MaxSeverity returns the highest severity among the findings, or the
// empty severity when there are none.
func (r *Result) MaxSeverity() Severity {
	var max Severity
	for _, f := range r.Findings {
		if f.Severity.Rank() > max.Rank() {
			max = f.Severity
		}
	}
	return max
}

// Run evaluates every policy against the workflow and returns the sorted
// aggregate. Policies never see a partially built workflow; callers must
// only invoke Run with a fully parsed model.
func (d *Driver) Run(wf *ast.Workflow, policies []Policy) *Result {
	runID := uuid.NewString()
	logger := d.logger.With("run_id", runID)

	perPolicy := make([][]Finding, len(policies))

	if d.workers > 1 && len(policies) > 1 {
		d.runConcurrent(logger, wf, policies, perPolicy)
	} else {
		for i, p := range policies {
			perPolicy[i] = d.evaluate(logger, wf, p)
		}
	}

	findings := make([]Finding, 0)
	for _, batch := range perPolicy {
		findings = append(findings, batch...)
	}

	sortFindings(findings)

	logger.Debug("evaluation complete",
		"policies", len(policies),
		"findings", len(findings),
	)

	return &Result{RunID: runID, Findings: findings}
}

// runConcurrent fans policy evaluation out over a bounded worker pool.
// Results land in per-policy slots, so the concatenation order is the
// same as a sequential run.
func (d *Driver) runConcurrent(logger *slog.Logger, wf *ast.Workflow, policies []Policy, perPolicy [][]Finding) {
	jobs := make(chan int)
	var wg sync.WaitGroup

	for w := 0; w < d.workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				perPolicy[i] = d.evaluate(logger, wf, policies[i])
			}
		}()
	}

	for i := range policies {
		jobs <- i
	}
	close(jobs)
	wg.Wait()
}

// evaluate runs a single policy, isolating panics so that one misbehaving
// policy cannot corrupt the findings of the others.
func (d *Driver) evaluate(logger *slog.Logger, wf *ast.Workflow, p Policy) (findings []Finding) {
	desc := p.Descriptor()

	defer func() {
		if r := recover(); r != nil {
			logger.Error("policy panicked; its findings are dropped",
				"policy", desc.ID,
				"panic", r,
			)
			findings = []Finding{}
		}
	}()

	findings = p.Evaluate(wf)
	if findings == nil {
		findings = []Finding{}
	}
	return findings
}

// sortFindings orders findings by (line, column, policy identifier)
// ascending, the total order that makes two runs on identical input
// byte-identical.
func sortFindings(findings []Finding) {
	sort.SliceStable(findings, func(i, j int) bool {
		a, b := findings[i], findings[j]
		if a.Span.Line != b.Span.Line {
			return a.Span.Line < b.Span.Line
		}
		if a.Span.Column != b.Span.Column {
			return a.Span.Column < b.Span.Column
		}
		return a.Policy < b.Policy
	})
}
