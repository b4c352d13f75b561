package rules

import (
	"testing"

	"gantry-hq/gantry/pkg/workflow/ast"
	"gantry-hq/gantry/pkg/workflow/parser"
)

// parse builds a workflow from inline YAML for rule tests.
func parse(t *testing.T, src string) *ast.Workflow {
	t.Helper()
	wf, err := parser.NewParser().ParseBytes([]byte(src), "test.yml")
	if err != nil {
		t.Fatalf("ParseBytes() failed: %v", err)
	}
	return wf
}

func TestBuiltin(t *testing.T) {
	builtin := Builtin()
	if len(builtin) != 3 {
		t.Fatalf("len(Builtin()) = %d, want 3", len(builtin))
	}

	seen := make(map[string]bool)
	for _, p := range builtin {
		desc := p.Descriptor()
		if desc.ID == "" {
			t.Error("builtin policy has empty identifier")
		}
		if seen[desc.ID] {
			t.Errorf("duplicate builtin identifier %q", desc.ID)
		}
		seen[desc.ID] = true
		if desc.Short == "" || desc.Long == "" {
			t.Errorf("policy %q is missing documentation", desc.ID)
		}
		if !desc.DefaultEnabled {
			t.Errorf("policy %q is not enabled by default", desc.ID)
		}
	}

	for _, id := range []string{"permissions_set", "no_all_permissions", "no_github_expr_in_run"} {
		if !seen[id] {
			t.Errorf("builtin set is missing %q", id)
		}
	}
}
