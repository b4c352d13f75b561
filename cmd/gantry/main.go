// Gantry is a static-analysis tool for GitHub Actions workflow files.
//
// It parses workflow definitions with full source position tracking and
// evaluates a set of security policies against them, flagging:
//   - Overly broad GITHUB_TOKEN permission grants
//   - Jobs missing least-privilege permission declarations
//   - GitHub expressions interpolated directly into run scripts
//
// Usage:
//
//	# Check workflow files
//	gantry check .github/workflows/ci.yml
//
//	# Check and re-check on change
//	gantry check --watch .github/workflows/*.yml
//
//	# Machine-readable output for CI
//	gantry check --format json .github/workflows/ci.yml
//
//	# List available policies
//	gantry list
//
//	# Show a policy's full documentation
//	gantry show no_github_expr_in_run
//
//	# Show version information
//	gantry version
package main

func main() {
	Execute()
}
