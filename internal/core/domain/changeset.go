package domain

// ChangeKind describes what happened to a dependency within a change set.
type ChangeKind uint8

const (
	// ChangeAdd indicates a dependency was added.
	ChangeAdd ChangeKind = iota
	// ChangeRemove indicates a dependency was removed.
	ChangeRemove
	// ChangeUpdate indicates an existing dependency was replaced.
	ChangeUpdate
)

// Change is one addition, removal or update of a dependency.
type Change struct {
	Kind       ChangeKind
	Dependency Dependency
}

// ChangeSet describes the incremental changes a producer observed for a
// single target framework. A change set that declares no changes must be
// ignored by the merge.
type ChangeSet struct {
	Changes []Change
}

// Empty reports whether the change set declares no changes.
func (cs ChangeSet) Empty() bool {
	return len(cs.Changes) == 0
}

// Added returns a change set containing only additions of the given
// dependencies. Convenience for producers and tests.
func Added(deps ...Dependency) ChangeSet {
	changes := make([]Change, len(deps))
	for i, d := range deps {
		changes[i] = Change{Kind: ChangeAdd, Dependency: d}
	}
	return ChangeSet{Changes: changes}
}

// Removed returns a change set containing only removals of the given
// dependencies.
func Removed(deps ...Dependency) ChangeSet {
	changes := make([]Change, len(deps))
	for i, d := range deps {
		changes[i] = Change{Kind: ChangeRemove, Dependency: d}
	}
	return ChangeSet{Changes: changes}
}
