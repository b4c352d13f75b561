// Package rules contains the built-in security policies.
//
// Each policy lives in its own file together with its documentation text,
// and is registered through Builtin(). Policies are pure: they inspect the
// workflow model and return findings, nothing else.
package rules

import "gantry-hq/gantry/pkg/policy"

// Builtin returns the full built-in policy set. The caller hands it to
// policy.NewRegistry; duplicate identifiers fail there, at startup.
func Builtin() []policy.Policy {
	return []policy.Policy{
		&PermissionsSet{},
		&NoAllPermissions{},
		&NoGitHubExprInRun{},
	}
}
