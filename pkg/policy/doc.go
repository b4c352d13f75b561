// Package policy defines the security policy abstraction, the registry of
// known policies, and the evaluation driver.
//
// A Policy is a named, independently testable rule: it inspects a parsed
// workflow and returns zero or more findings, each pointing at the exact
// source span of the offending text. Policies are pure functions of the
// workflow and independent of each other, so the driver is free to
// evaluate them concurrently.
//
// # Registry
//
// The registry is built once at startup from the policy set and is
// immutable afterwards. Duplicate identifiers fail registry construction:
//
//	reg, err := policy.NewRegistry(rules.Builtin()...)
//	if err != nil {
//	    log.Fatal(err) // programming error, fail fast
//	}
//
// # Evaluation
//
// The driver runs every selected policy against the same read-only
// workflow and returns findings sorted by (line, column, policy
// identifier), so identical input always yields byte-identical output:
//
//	driver := policy.NewDriver(logger)
//	result := driver.Run(wf, reg.Policies())
//	for _, f := range result.Findings {
//	    fmt.Printf("%s:%s\n", path, f)
//	}
//
// A finding is not an error: it is a successful analysis result. Loader
// and builder failures stop the pipeline before the driver; policies never
// see a partially built workflow.
package policy
