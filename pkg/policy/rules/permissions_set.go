package rules

import (
	"fmt"

	"gantry-hq/gantry/pkg/policy"
	"gantry-hq/gantry/pkg/workflow/ast"
)

// PermissionsSet flags jobs that do not declare GITHUB_TOKEN permissions
// of their own and are not covered by a workflow-level exemption.
type PermissionsSet struct{}

// Descriptor implements policy.Policy.
func (p *PermissionsSet) Descriptor() policy.Descriptor {
	return policy.Descriptor{
		ID:             "permissions_set",
		Short:          "Every job should declare least-privilege token permissions",
		Long:           permissionsSetDoc,
		Severity:       policy.SeverityLow,
		DefaultEnabled: true,
	}
}

// Evaluate implements policy.Policy.
//
// A job without a permissions key is exempt in exactly two cases:
// the workflow sets its default permissions to none (an explicit map in
// which every listed scope is "none"), or the workflow declares explicit
// permissions and has exactly one job. No other exemption applies.
func (p *PermissionsSet) Evaluate(wf *ast.Workflow) []policy.Finding {
	findings := make([]policy.Finding, 0)

	if wf.Permissions.GrantsNothing() {
		return findings
	}
	singleJobExemption := wf.Permissions.Kind == ast.PermissionsExplicit && len(wf.Jobs) == 1

	for _, job := range wf.Jobs {
		if job.Permissions.Kind != ast.PermissionsUnspecified {
			continue
		}
		if singleJobExemption {
			continue
		}
		findings = append(findings, policy.Finding{
			Policy:   "permissions_set",
			Severity: policy.SeverityLow,
			Message:  fmt.Sprintf("Job %q should explicitly set permissions for the GITHUB_TOKEN.", job.Name),
			Span:     job.NameSpan,
		})
	}

	return findings
}

const permissionsSetDoc = `Check that every job declares the ` + "`GITHUB_TOKEN`" + ` permissions it needs.

When a job does not set ` + "`permissions`" + `, the token falls back to the
repository or organization defaults, which are often far broader than the
job requires. Declaring permissions per job documents the job's actual
needs and contains the blast radius of a compromised step.

A job may omit its own ` + "`permissions`" + ` in exactly two situations:

 1. The workflow sets its default permissions to none, i.e. a
    workflow-level map that assigns ` + "`none`" + ` to every scope it names.
 2. The workflow sets explicit permissions and contains exactly one job,
    so the workflow-level declaration is the job's declaration.

# Examples

## Not OK: multiple jobs inheriting default permissions

` + "```yaml" + `
permissions: {}
jobs:
  build:
    runs-on: ubuntu-latest
    steps:
      - run: make
  deploy:
    runs-on: ubuntu-latest
    steps:
      - run: make deploy
` + "```" + `

Both jobs rely on inherited defaults and each needs its own declaration.

## OK: single job with workflow-level permissions

` + "```yaml" + `
permissions:
  contents: read
jobs:
  build:
    runs-on: ubuntu-latest
    steps:
      - run: make
` + "```" + `

# References

- <https://docs.github.com/en/actions/writing-workflows/workflow-syntax-for-github-actions#permissions>
- <https://docs.github.com/en/actions/security-for-github-actions/security-guides/security-hardening-for-github-actions>
`
