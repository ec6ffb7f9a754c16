// Package arch decides which architectures the compiler is asked to build.
package arch

import (
	"context"

	"go.trai.ch/unifw/internal/core/domain"
	"go.trai.ch/unifw/internal/core/ports"
	"go.trai.ch/zerr"
)

var (
	_ ports.ArchitectureSelector = (*FixedSelector)(nil)
	_ ports.ArchitectureSelector = (*IntersectionSelector)(nil)
)

// FixedSelector always selects domain.DefaultArchitectures.
type FixedSelector struct{}

// Select returns the default architecture set.
func (FixedSelector) Select(context.Context, []string) (domain.ArchitectureSet, error) {
	return domain.DefaultArchitectures(), nil
}

// IntersectionSelector narrows the default set to the architectures every
// vendored binary provides. Without vendored binaries it selects the default set.
type IntersectionSelector struct {
	inspector ports.SliceInspector
}

// NewIntersectionSelector creates a new IntersectionSelector.
func NewIntersectionSelector(inspector ports.SliceInspector) *IntersectionSelector {
	return &IntersectionSelector{inspector: inspector}
}

// Select inspects each vendored binary in order.
func (s *IntersectionSelector) Select(ctx context.Context, vendored []string) (domain.ArchitectureSet, error) {
	set := domain.DefaultArchitectures()

	for _, path := range vendored {
		archs, err := s.inspector.Architectures(ctx, path)
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, "failed to inspect vendored binary"), "path", path)
		}
		set = set.Intersect(archs)
	}

	if len(set) == 0 {
		return nil, zerr.With(zerr.Wrap(domain.ErrDegenerateInput, "vendored binaries share no architecture"),
			"vendored", len(vendored))
	}
	return set, nil
}

// Selectors maps each architecture policy to its selector.
type Selectors map[domain.ArchitecturePolicy]ports.ArchitectureSelector

// NewSelectors registers a selector for every known policy.
func NewSelectors(inspector ports.SliceInspector) Selectors {
	return Selectors{
		domain.ArchitecturePolicyFixed:        FixedSelector{},
		domain.ArchitecturePolicyIntersection: NewIntersectionSelector(inspector),
	}
}

// For returns the selector of policy. The empty policy selects the fixed set.
func (s Selectors) For(policy domain.ArchitecturePolicy) (ports.ArchitectureSelector, error) {
	if policy == "" {
		policy = domain.ArchitecturePolicyFixed
	}
	selector, ok := s[policy]
	if !ok {
		return nil, zerr.With(zerr.Wrap(domain.ErrUnknownArchitecturePolicy, "no selector for policy"),
			"architectures", string(policy))
	}
	return selector, nil
}
