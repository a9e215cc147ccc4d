// Package domain contains the core value types for dependency snapshots.
package domain

import "unique"

// TargetFramework identifies one build platform/runtime a project can be
// compiled against (e.g. "net6.0", "netstandard2.0"). It is a value object
// backed by an interned handle, so equality is a cheap handle comparison.
type TargetFramework struct {
	h unique.Handle[string]
}

// anyMoniker is the well-known moniker for dependencies that are not
// target-specific.
const anyMoniker = "any"

// NewTargetFramework creates a TargetFramework from a full moniker.
func NewTargetFramework(moniker string) TargetFramework {
	return TargetFramework{
		h: unique.Make(moniker),
	}
}

// AnyTarget returns the sentinel target used for dependencies that do not
// belong to a specific target framework.
func AnyTarget() TargetFramework {
	return NewTargetFramework(anyMoniker)
}

// Moniker returns the full target framework moniker.
func (tf TargetFramework) Moniker() string {
	return tf.h.Value()
}

// IsAny reports whether this is the "not target-specific" sentinel.
func (tf TargetFramework) IsAny() bool {
	return tf == AnyTarget()
}

// IsZero reports whether the value is the uninitialized zero TargetFramework.
func (tf TargetFramework) IsZero() bool {
	return tf == TargetFramework{}
}

// MarshalText implements encoding.TextMarshaler.
func (tf TargetFramework) MarshalText() ([]byte, error) {
	return []byte(tf.h.Value()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (tf *TargetFramework) UnmarshalText(text []byte) error {
	tf.h = unique.Make(string(text))
	return nil
}

// SubtractTargets returns the elements of old that are absent from new.
// It is used to compute which targets disappeared on a context replacement.
func SubtractTargets(oldTargets, newTargets []TargetFramework) []TargetFramework {
	known := make(map[TargetFramework]struct{}, len(newTargets))
	for _, tf := range newTargets {
		known[tf] = struct{}{}
	}

	var removed []TargetFramework
	for _, tf := range oldTargets {
		if _, ok := known[tf]; !ok {
			removed = append(removed, tf)
		}
	}
	return removed
}

// SameTargetSet reports whether both slices contain exactly the same targets,
// ignoring order.
func SameTargetSet(a, b []TargetFramework) bool {
	if len(a) != len(b) {
		return false
	}
	seen := make(map[TargetFramework]struct{}, len(a))
	for _, tf := range a {
		seen[tf] = struct{}{}
	}
	for _, tf := range b {
		if _, ok := seen[tf]; !ok {
			return false
		}
	}
	return true
}
