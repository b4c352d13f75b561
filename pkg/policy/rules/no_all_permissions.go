package rules

import (
	"fmt"

	"gantry-hq/gantry/pkg/policy"
	"gantry-hq/gantry/pkg/workflow/ast"
)

// NoAllPermissions flags workflow- and job-level GITHUB_TOKEN grants that
// use the read-all or write-all shorthand.
type NoAllPermissions struct{}

// Descriptor implements policy.Policy.
func (p *NoAllPermissions) Descriptor() policy.Descriptor {
	return policy.Descriptor{
		ID:             "no_all_permissions",
		Short:          "Do not grant read-all or write-all token permissions",
		Long:           noAllPermissionsDoc,
		Severity:       policy.SeverityMedium,
		DefaultEnabled: true,
	}
}

// Evaluate implements policy.Policy.
func (p *NoAllPermissions) Evaluate(wf *ast.Workflow) []policy.Finding {
	findings := make([]policy.Finding, 0)

	if wf.Permissions.IsShorthand() {
		findings = append(findings, policy.Finding{
			Policy:   "no_all_permissions",
			Severity: policy.SeverityMedium,
			Message: fmt.Sprintf("The workflow should not use the '%s' permission.",
				wf.Permissions.Kind),
			Span: wf.Permissions.Span,
		})
	}

	for _, job := range wf.Jobs {
		if !job.Permissions.IsShorthand() {
			continue
		}
		findings = append(findings, policy.Finding{
			Policy:   "no_all_permissions",
			Severity: policy.SeverityMedium,
			Message: fmt.Sprintf("Job %q should not use the '%s' permission.",
				job.Name, job.Permissions.Kind),
			Span: job.Permissions.Span,
		})
	}

	return findings
}

const noAllPermissionsDoc = `Check that neither the workflow nor any job uses the ` + "`read-all`" + ` or
` + "`write-all`" + ` shorthand permissions for the ` + "`GITHUB_TOKEN`" + `.

Permissions that are unnecessarily broad violate the principle of least
privilege: a compromised step can use every scope the token carries.

# Examples

## Not OK: read-all token permission

` + "```yaml" + `
name: Job with read-all token permission
jobs:
  foo:
    runs-on: ubuntu-latest
    permissions: read-all
    steps:
      - run: echo "Too many permissions"
` + "```" + `

## Not OK: write-all token permission

` + "```yaml" + `
name: Job with write-all token permission
jobs:
  foo:
    runs-on: ubuntu-latest
    permissions: write-all
    steps:
      - run: echo "Too many permissions"
` + "```" + `

## OK: fine-grained token permissions

` + "```yaml" + `
name: Job with fine-grained token permissions
jobs:
  foo:
    runs-on: ubuntu-latest
    permissions:
      contents: read
    steps:
      - run: echo "This is okay"
` + "```" + `

# References

- <https://docs.github.com/en/actions/writing-workflows/workflow-syntax-for-github-actions#defining-access-for-the-github_token-scopes>
- <https://en.wikipedia.org/wiki/Principle_of_least_privilege>
`
