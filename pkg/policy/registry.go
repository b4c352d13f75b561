package policy

import (
	"fmt"
	"sort"
)

// Registry is the immutable catalog of known policies. It is built exactly
// once at startup and injected into the driver; there is no ambient global
// registry, which keeps the driver and policies testable with synthetic
// policy sets.
type Registry struct {
	byID  map[string]Policy
	order []string // identifiers in ascending order
}

// NewRegistry builds a registry from the given policies. Two policies
// sharing an identifier is a programming error, detected here so it can
// never make findings ambiguous at evaluation time.
func NewRegistry(policies ...Policy) (*Registry, error) {
	r := &Registry{
		byID:  make(map[string]Policy, len(policies)),
		order: make([]string, 0, len(policies)),
	}

	for _, p := range policies {
		desc := p.Descriptor()
		if desc.ID == "" {
			return nil, fmt.Errorf("policy registered with empty identifier")
		}
		if _, exists := r.byID[desc.ID]; exists {
			return nil, fmt.Errorf("duplicate policy identifier %q", desc.ID)
		}
		r.byID[desc.ID] = p
		r.order = append(r.order, desc.ID)
	}

	sort.Strings(r.order)
	return r, nil
}

// All returns the descriptors of every registered policy in ascending
// identifier order, so that listings are deterministic and diffable.
func (r *Registry) All() []Descriptor {
	descriptors := make([]Descriptor, 0, len(r.order))
	for _, id := range r.order {
		descriptors = append(descriptors, r.byID[id].Descriptor())
	}
	return descriptors
}

// Find returns the descriptor for the given identifier.
func (r *Registry) Find(id string) (Descriptor, bool) {
	p, ok := r.byID[id]
	if !ok {
		return Descriptor{}, false
	}
	return p.Descriptor(), true
}

// Policies returns the registered policies in ascending identifier order.
func (r *Registry) Policies() []Policy {
	policies := make([]Policy, 0, len(r.order))
	for _, id := range r.order {
		policies = append(policies, r.byID[id])
	}
	return policies
}

// Len returns the number of registered policies.
func (r *Registry) Len() int {
	return len(r.order)
}
