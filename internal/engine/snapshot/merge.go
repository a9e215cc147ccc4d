package snapshot

import (
	"errors"
	"slices"

	"go.trai.ch/depsnap/internal/core/domain"
	"go.trai.ch/depsnap/internal/core/ports"
	"go.trai.ch/zerr"
)

// MergeInput bundles everything a merge consumes besides the previous
// snapshot.
type MergeInput struct {
	// Changes maps each target framework to the change set to apply.
	Changes map[domain.TargetFramework]domain.ChangeSet
	// Catalog is the declared item-spec catalog, nil when no data is
	// available for this batch.
	Catalog *domain.Catalog
	// ActiveTarget is the currently active target, zero when unknown.
	ActiveTarget domain.TargetFramework
	// Filters is the registered filter chain; it is re-sorted by Order
	// on every merge so registration order only breaks ties.
	Filters []ports.SnapshotFilter
	// ProviderKinds is the set of registered subtree provider kinds.
	ProviderKinds map[string]struct{}
}

// MergeChanges applies per-target change sets to the previous snapshot and
// returns the resulting snapshot. It is a pure function: it never mutates
// its inputs, and it returns the previous instance unchanged when no
// target's slice actually changed, so callers can detect no-ops by
// reference identity. Empty and no-op change sets never produce an error.
func MergeChanges(previous *domain.Snapshot, in MergeInput) (*domain.Snapshot, error) {
	if len(in.Changes) == 0 {
		return previous, nil
	}

	filters := sortFilters(in.Filters)

	merged := make(map[domain.TargetFramework][]domain.Dependency, len(previous.Targets()))
	for _, tf := range previous.Targets() {
		merged[tf] = previous.Dependencies(tf)
	}

	changed := false
	for tf, cs := range in.Changes {
		if cs.Empty() {
			continue
		}

		fc := ports.FilterContext{
			ProjectPath:   previous.ProjectPath(),
			Target:        tf,
			ActiveTarget:  in.ActiveTarget,
			Catalog:       in.Catalog,
			ProviderKinds: in.ProviderKinds,
		}

		next, sliceChanged, err := applyChangeSet(merged[tf], cs, fc, filters)
		if err != nil {
			// The previous snapshot stays valid; nothing was
			// partially overwritten.
			return nil, zerr.With(err, "target", tf.Moniker())
		}
		if sliceChanged {
			merged[tf] = next
			changed = true
		}
	}

	if !changed {
		return previous, nil
	}
	return domain.NewSnapshot(previous.ProjectPath(), merged), nil
}

// applyChangeSet applies one target's change set to its dependency slice,
// running every filter over each addition, update and removal.
func applyChangeSet(
	deps []domain.Dependency,
	cs domain.ChangeSet,
	fc ports.FilterContext,
	filters []ports.SnapshotFilter,
) ([]domain.Dependency, bool, error) {
	result := slices.Clone(deps)
	changed := false

	for _, change := range cs.Changes {
		switch change.Kind {
		case domain.ChangeAdd, domain.ChangeUpdate:
			dep, keep, err := runAddFilters(fc, filters, change.Dependency)
			if err != nil {
				return nil, false, err
			}
			if !keep {
				continue
			}

			idx := indexByID(result, dep.ID())
			if idx >= 0 {
				if result[idx] == dep {
					continue
				}
				result[idx] = dep
			} else {
				result = append(result, dep)
			}
			changed = true

		case domain.ChangeRemove:
			idx := indexByID(result, change.Dependency.ID())
			if idx < 0 {
				continue
			}

			remove, err := runRemoveFilters(fc, filters, result[idx])
			if err != nil {
				return nil, false, err
			}
			if !remove {
				continue
			}

			result = slices.Delete(result, idx, idx+1)
			changed = true
		}
	}

	return result, changed, nil
}

func runAddFilters(
	fc ports.FilterContext,
	filters []ports.SnapshotFilter,
	dep domain.Dependency,
) (domain.Dependency, bool, error) {
	for _, f := range filters {
		next, keep, err := f.BeforeAdd(fc, dep)
		if err != nil {
			return dep, false, errors.Join(domain.ErrFilterFailed, err)
		}
		if !keep {
			return dep, false, nil
		}
		dep = next
	}
	return dep, true, nil
}

func runRemoveFilters(
	fc ports.FilterContext,
	filters []ports.SnapshotFilter,
	dep domain.Dependency,
) (bool, error) {
	for _, f := range filters {
		remove, err := f.BeforeRemove(fc, dep)
		if err != nil {
			return false, errors.Join(domain.ErrFilterFailed, err)
		}
		if !remove {
			return false, nil
		}
	}
	return true, nil
}

// sortFilters orders the chain by ascending Order, registration order
// breaking ties. Preferred filters carry the highest values and run last.
func sortFilters(filters []ports.SnapshotFilter) []ports.SnapshotFilter {
	sorted := slices.Clone(filters)
	slices.SortStableFunc(sorted, func(a, b ports.SnapshotFilter) int {
		return a.Order() - b.Order()
	})
	return sorted
}

func indexByID(deps []domain.Dependency, id string) int {
	for i, d := range deps {
		if d.ID() == id {
			return i
		}
	}
	return -1
}
