package domain

// Dependency is one resolved or declared dependency inside a target's slice
// of the snapshot. Values are immutable; updates replace the whole value.
type Dependency struct {
	// ItemSpec is the provider-scoped identity of the dependency,
	// e.g. a package id or a project path.
	ItemSpec string
	// Provider is the kind of the subtree provider that owns the
	// dependency (e.g. "package", "project", "analyzer").
	Provider string
	// Name is the display name.
	Name string
	// Version is the declared or resolved version, empty when the
	// provider has no version concept.
	Version string
	// Resolved indicates whether the dependency has been resolved by the
	// external restore operation.
	Resolved bool
	// Implicit marks dependencies injected by the build system rather
	// than declared in the project file.
	Implicit bool
}

// ID returns the identity used to match additions, updates and removals of
// the same dependency within one target's slice.
func (d Dependency) ID() string {
	return d.Provider + "/" + d.ItemSpec
}
