package domain

import (
	"slices"
	"strings"

	"github.com/cespare/xxhash/v2"
)

// Snapshot is the immutable, per-target view of a project's dependencies.
// It is replaced, never mutated: every update produces a new instance, and
// reference identity signals "no change" to callers upstream.
type Snapshot struct {
	projectPath string
	byTarget    map[TargetFramework][]Dependency
	fingerprint uint64
}

// NewEmptySnapshot returns the initial snapshot for a project: no targets,
// no dependencies.
func NewEmptySnapshot(projectPath string) *Snapshot {
	return NewSnapshot(projectPath, nil)
}

// NewSnapshot builds a snapshot from per-target dependency slices. The map
// and its slices are copied; callers keep ownership of their inputs.
func NewSnapshot(projectPath string, byTarget map[TargetFramework][]Dependency) *Snapshot {
	copied := make(map[TargetFramework][]Dependency, len(byTarget))
	for tf, deps := range byTarget {
		copied[tf] = slices.Clone(deps)
	}
	s := &Snapshot{
		projectPath: projectPath,
		byTarget:    copied,
	}
	s.fingerprint = s.computeFingerprint()
	return s
}

// ProjectPath returns the path of the project file this snapshot belongs to.
func (s *Snapshot) ProjectPath() string {
	return s.projectPath
}

// Targets returns the target frameworks present in the snapshot, sorted by
// moniker for deterministic iteration.
func (s *Snapshot) Targets() []TargetFramework {
	targets := make([]TargetFramework, 0, len(s.byTarget))
	for tf := range s.byTarget {
		targets = append(targets, tf)
	}
	slices.SortFunc(targets, func(a, b TargetFramework) int {
		return strings.Compare(a.Moniker(), b.Moniker())
	})
	return targets
}

// HasTarget reports whether the snapshot holds a slice for the given target.
func (s *Snapshot) HasTarget(tf TargetFramework) bool {
	_, ok := s.byTarget[tf]
	return ok
}

// Dependencies returns the dependency slice for one target. The returned
// slice must not be modified.
func (s *Snapshot) Dependencies(tf TargetFramework) []Dependency {
	return s.byTarget[tf]
}

// DependencyCount returns the total number of dependencies across targets.
func (s *Snapshot) DependencyCount() int {
	n := 0
	for _, deps := range s.byTarget {
		n += len(deps)
	}
	return n
}

// RemoveTargets returns a snapshot without the given targets. If none of
// them is present the same instance is returned unchanged.
func (s *Snapshot) RemoveTargets(targets ...TargetFramework) *Snapshot {
	any := false
	for _, tf := range targets {
		if _, ok := s.byTarget[tf]; ok {
			any = true
			break
		}
	}
	if !any {
		return s
	}

	remaining := make(map[TargetFramework][]Dependency, len(s.byTarget))
	for tf, deps := range s.byTarget {
		if !slices.Contains(targets, tf) {
			remaining[tf] = deps
		}
	}
	return NewSnapshot(s.projectPath, remaining)
}

// WithProjectPath returns a snapshot carrying the new project path, reusing
// the per-target data. Returns the same instance when the path is unchanged.
func (s *Snapshot) WithProjectPath(path string) *Snapshot {
	if path == s.projectPath {
		return s
	}
	return NewSnapshot(path, s.byTarget)
}

// Fingerprint returns an xxhash64 digest over the project path and the
// sorted per-target dependency identities. Two snapshots with the same
// content share a fingerprint, which tests and the CLI use as a cheap
// equality probe.
func (s *Snapshot) Fingerprint() uint64 {
	return s.fingerprint
}

func (s *Snapshot) computeFingerprint() uint64 {
	d := xxhash.New()
	_, _ = d.WriteString(s.projectPath)
	for _, tf := range s.Targets() {
		_, _ = d.WriteString("\x00" + tf.Moniker())
		ids := make([]string, 0, len(s.byTarget[tf]))
		for _, dep := range s.byTarget[tf] {
			ids = append(ids, dep.ID()+"@"+dep.Version)
		}
		slices.Sort(ids)
		for _, id := range ids {
			_, _ = d.WriteString("\x01" + id)
		}
	}
	return d.Sum64()
}
