package policy

import (
	"strings"
	"testing"

	"gantry-hq/gantry/pkg/workflow/ast"
)

// fakePolicy is a synthetic policy for registry and driver tests.
type fakePolicy struct {
	id       string
	severity Severity
	evaluate func(wf *ast.Workflow) []Finding
}

func (p *fakePolicy) Descriptor() Descriptor {
	return Descriptor{
		ID:             p.id,
		Short:          "synthetic policy " + p.id,
		Severity:       p.severity,
		DefaultEnabled: true,
	}
}

func (p *fakePolicy) Evaluate(wf *ast.Workflow) []Finding {
	if p.evaluate == nil {
		return nil
	}
	return p.evaluate(wf)
}

func TestNewRegistry(t *testing.T) {
	reg, err := NewRegistry(
		&fakePolicy{id: "zeta", severity: SeverityLow},
		&fakePolicy{id: "alpha", severity: SeverityHigh},
	)
	if err != nil {
		t.Fatalf("NewRegistry() failed: %v", err)
	}
	if reg.Len() != 2 {
		t.Errorf("Len() = %d, want 2", reg.Len())
	}

	// Listings come back in ascending identifier order regardless of
	// registration order.
	all := reg.All()
	if all[0].ID != "alpha" || all[1].ID != "zeta" {
		t.Errorf("All() order = %s, %s; want alpha, zeta", all[0].ID, all[1].ID)
	}

	policies := reg.Policies()
	if policies[0].Descriptor().ID != "alpha" {
		t.Errorf("Policies()[0] = %s, want alpha", policies[0].Descriptor().ID)
	}
}

func TestNewRegistry_DuplicateID(t *testing.T) {
	_, err := NewRegistry(
		&fakePolicy{id: "dup"},
		&fakePolicy{id: "dup"},
	)
	if err == nil {
		t.Fatal("NewRegistry() succeeded, want duplicate identifier error")
	}
	if !strings.Contains(err.Error(), `"dup"`) {
		t.Errorf("error = %q, want duplicate identifier named", err)
	}
}

func TestNewRegistry_EmptyID(t *testing.T) {
	_, err := NewRegistry(&fakePolicy{id: ""})
	if err == nil {
		t.Fatal("NewRegistry() succeeded, want empty identifier error")
	}
}

func TestRegistry_Find(t *testing.T) {
	reg, err := NewRegistry(&fakePolicy{id: "known", severity: SeverityMedium})
	if err != nil {
		t.Fatalf("NewRegistry() failed: %v", err)
	}

	desc, ok := reg.Find("known")
	if !ok {
		t.Fatal("Find(known) = false, want true")
	}
	if desc.Severity != SeverityMedium {
		t.Errorf("Severity = %v, want medium", desc.Severity)
	}

	if _, ok := reg.Find("unknown"); ok {
		t.Error("Find(unknown) = true, want false")
	}
}
