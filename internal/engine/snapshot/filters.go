package snapshot

import (
	"go.trai.ch/depsnap/internal/core/domain"
	"go.trai.ch/depsnap/internal/core/ports"
)

// DeclaredItemFilter vetoes additions whose item spec the project file no
// longer declares. When no catalog data is available it keeps everything:
// absent data must never veto.
type DeclaredItemFilter struct {
	order int
}

var _ ports.SnapshotFilter = (*DeclaredItemFilter)(nil)

// NewDeclaredItemFilter creates the filter with the given precedence value.
func NewDeclaredItemFilter(order int) *DeclaredItemFilter {
	return &DeclaredItemFilter{order: order}
}

// Order implements ports.SnapshotFilter.
func (f *DeclaredItemFilter) Order() int { return f.order }

// BeforeAdd drops dependencies that are neither implicit nor declared.
func (f *DeclaredItemFilter) BeforeAdd(fc ports.FilterContext, dep domain.Dependency) (domain.Dependency, bool, error) {
	if fc.Catalog == nil || dep.Implicit {
		return dep, true, nil
	}
	if !fc.Catalog.ContainsItemSpec(dep.ItemSpec) {
		return dep, false, nil
	}
	return dep, true, nil
}

// BeforeRemove never vetoes removals.
func (f *DeclaredItemFilter) BeforeRemove(ports.FilterContext, domain.Dependency) (bool, error) {
	return true, nil
}

// KnownProviderFilter vetoes additions attributed to a subtree provider
// kind that is not registered with the host.
type KnownProviderFilter struct {
	order int
}

var _ ports.SnapshotFilter = (*KnownProviderFilter)(nil)

// NewKnownProviderFilter creates the filter with the given precedence value.
func NewKnownProviderFilter(order int) *KnownProviderFilter {
	return &KnownProviderFilter{order: order}
}

// Order implements ports.SnapshotFilter.
func (f *KnownProviderFilter) Order() int { return f.order }

// BeforeAdd drops dependencies from unregistered providers. An empty kind
// set means provider registration is not being tracked and nothing is
// dropped.
func (f *KnownProviderFilter) BeforeAdd(fc ports.FilterContext, dep domain.Dependency) (domain.Dependency, bool, error) {
	if len(fc.ProviderKinds) == 0 {
		return dep, true, nil
	}
	if _, ok := fc.ProviderKinds[dep.Provider]; !ok {
		return dep, false, nil
	}
	return dep, true, nil
}

// BeforeRemove never vetoes removals.
func (f *KnownProviderFilter) BeforeRemove(ports.FilterContext, domain.Dependency) (bool, error) {
	return true, nil
}
