package ports

import "go.trai.ch/depsnap/internal/core/domain"

//go:generate mockgen -source=filter.go -destination=mocks/mock_filter.go -package=mocks

// FilterContext carries the per-merge data a filter may consult.
type FilterContext struct {
	// ProjectPath is the project file path of the snapshot being built.
	ProjectPath string
	// Target is the target framework whose slice is being merged.
	Target domain.TargetFramework
	// ActiveTarget is the project's active target framework, zero when no
	// context has been established yet.
	ActiveTarget domain.TargetFramework
	// Catalog is the declared item-spec catalog, nil when no data is
	// available for this batch.
	Catalog *domain.Catalog
	// ProviderKinds is the set of registered subtree provider kinds.
	ProviderKinds map[string]struct{}
}

// SnapshotFilter transforms dependency additions and removals during a
// merge. Filters run in ascending Order; preferred filters carry the highest
// order values so they run last and see every earlier transformation.
type SnapshotFilter interface {
	// Order returns the filter's precedence value.
	Order() int

	// BeforeAdd may transform or veto an addition/update. Returning false
	// drops the dependency from the slice.
	BeforeAdd(fc FilterContext, dep domain.Dependency) (domain.Dependency, bool, error)

	// BeforeRemove may veto a removal. Returning false keeps the
	// dependency in the slice.
	BeforeRemove(fc FilterContext, dep domain.Dependency) (bool, error)
}
