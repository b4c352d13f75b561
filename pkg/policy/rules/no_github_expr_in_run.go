package rules

import (
	"fmt"

	"gantry-hq/gantry/pkg/policy"
	"gantry-hq/gantry/pkg/workflow/ast"
	"gantry-hq/gantry/pkg/workflow/expr"
)

// NoGitHubExprInRun flags GitHub Actions expressions interpolated directly
// into a step's run script.
type NoGitHubExprInRun struct{}

// Descriptor implements policy.Policy.
func (p *NoGitHubExprInRun) Descriptor() policy.Descriptor {
	return policy.Descriptor{
		ID:             "no_github_expr_in_run",
		Short:          "Do not interpolate GitHub expressions into run scripts",
		Long:           noGitHubExprInRunDoc,
		Severity:       policy.SeverityHigh,
		DefaultEnabled: true,
	}
}

// Evaluate implements policy.Policy. One finding is emitted per
// expression occurrence, with its span relocated to the opening `${{`
// delimiter in source.
func (p *NoGitHubExprInRun) Evaluate(wf *ast.Workflow) []policy.Finding {
	findings := make([]policy.Finding, 0)

	for _, job := range wf.Jobs {
		for _, step := range job.Steps {
			if step.Run == nil {
				continue
			}
			for _, tok := range expr.Expressions(step.Run.Value) {
				// The span covers the whole ${{ ... }} interpolation.
				length := len("${{") + len(tok.Value) + len("}}")
				findings = append(findings, policy.Finding{
					Policy:   "no_github_expr_in_run",
					Severity: policy.SeverityHigh,
					Message: fmt.Sprintf(
						"Step %d of job %q should not directly include GitHub expressions in the 'run' field.",
						step.Index+1, job.Name),
					Span: expr.RelocateInScalar(step.Run, tok.Offset, length),
				})
			}
		}
	}

	return findings
}

const noGitHubExprInRunDoc = `No step should use a GitHub Actions expression in the ` + "`run`" + ` field.

The result of the expression is substituted into the script as-is, before
the shell sees it. Attacker-controlled values (issue titles, branch names,
pull request titles) can therefore inject arbitrary commands. Assign the
expression to an environment variable instead and reference the variable
from the script; the shell then treats it as data, not code.

# Examples

## Not OK: expression in the run field

The job below echoes the pull request title. A title like
` + "`a\"; ls \"$GITHUB_WORKSPACE\"; echo \"b`" + ` turns the script into
` + "`echo \"a\"; ls \"$GITHUB_WORKSPACE\"; echo \"b\"`" + `.

` + "```yaml" + `
on: [pull_request]
jobs:
  job-with-expression-in-run:
    runs-on: ubuntu-latest
    steps:
      - run: echo "${{ github.event.pull_request.title }}"
` + "```" + `

## OK: expression passed through the env field

` + "```yaml" + `
on: [pull_request]
jobs:
  job-with-expression-in-env:
    runs-on: ubuntu-latest
    steps:
      - run: echo "${PULL_REQUEST_TITLE}"
        env:
          PULL_REQUEST_TITLE: ${{ github.event.pull_request.title }}
` + "```" + `

# References

- <https://docs.github.com/en/actions/security-for-github-actions/security-guides/security-hardening-for-github-actions#understanding-the-risk-of-script-injections>
- <https://docs.github.com/en/actions/security-for-github-actions/security-guides/security-hardening-for-github-actions#good-practices-for-mitigating-script-injection-attacks>
`
