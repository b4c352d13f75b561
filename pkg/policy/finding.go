package policy

import (
	"fmt"

	"gantry-hq/gantry/pkg/workflow/ast"
)

// Severity grades how serious a finding is.
type Severity string

const (
	// SeverityLow is advisory: worth fixing, low direct risk.
	SeverityLow Severity = "low"
	// SeverityMedium is a meaningful weakening of the security posture.
	SeverityMedium Severity = "medium"
	// SeverityHigh is a likely exploitable condition.
	SeverityHigh Severity = "high"
)

// severityRanks orders severities for threshold comparisons.
var severityRanks = map[Severity]int{
	SeverityLow:    1,
	SeverityMedium: 2,
	SeverityHigh:   3,
}

// Rank returns the severity's position in the low-to-high order. Unknown
// severities rank below low.
func (s Severity) Rank() int {
	return severityRanks[s]
}

// ParseSeverity validates a severity name from configuration or flags.
func ParseSeverity(s string) (Severity, error) {
	sev := Severity(s)
	if _, ok := severityRanks[sev]; !ok {
		return "", fmt.Errorf("unknown severity %q (valid: low, medium, high)", s)
	}
	return sev, nil
}

// Finding is one reported policy violation. Findings are immutable value
// objects created by policies; the driver only reorders them.
type Finding struct {
	// Policy is the identifier of the policy that produced the finding.
	Policy string `json:"policy"`

	// Severity is the finding's severity.
	Severity Severity `json:"severity"`

	// Message is the human-readable description of the violation.
	Message string `json:"message"`

	// Span points at the offending source text: the specific field when
	// one exists, otherwise the enclosing job or step.
	Span ast.Span `json:"span"`
}

// String renders the finding as "line:col: message (policy)", the format
// the CLI prefixes with the file path.
func (f Finding) String() string {
	return fmt.Sprintf("%s: %s (%s)", f.Span, f.Message, f.Policy)
}
