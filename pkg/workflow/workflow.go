// Package workflow is the entry point for parsing GitHub Actions workflow
// files into the position-aware model evaluated by policies.
package workflow

import (
	"gantry-hq/gantry/pkg/workflow/ast"
	"gantry-hq/gantry/pkg/workflow/parser"
)

// Parse parses the workflow file at the given path into the typed model.
func Parse(path string) (*ast.Workflow, error) {
	p := parser.NewParser()
	return p.Parse(path)
}

// ParseBytes parses workflow YAML from bytes. sourcePath is used in
// diagnostics only.
func ParseBytes(data []byte, sourcePath string) (*ast.Workflow, error) {
	p := parser.NewParser()
	return p.ParseBytes(data, sourcePath)
}
