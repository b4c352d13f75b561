// Package errors provides typed error values for workflow loading and
// modeling, with source locations and optional context display.
//
// Two error categories cross the package boundary:
//
//   - syntax: the document is not well-formed YAML, or a mapping contains
//     a duplicate key. The pipeline never produces partial trees.
//   - structural: the document is valid YAML but the wrong shape, e.g.
//     "jobs" is a scalar. Reported as "expected X, found Y" with the
//     offending span.
//
// Error format:
//
//	[structural] "jobs" has the wrong shape (expected mapping, found scalar)
//	  --> .github/workflows/ci.yml:3:7
//	  |
//	  -> 3 | jobs: oops
//	     |       ^
//	  |
//
// Findings are not errors; a policy violation is a successful analysis
// result and lives in the policy package.
package errors
