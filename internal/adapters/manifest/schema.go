// Package manifest adapts a yaml project manifest into the capabilities the
// snapshot engine consumes: context provider, configuration reader, target
// resolver, foreground refresher, change feed and a cross-target subscriber
// that produces dependency change sets as the manifest is edited.
package manifest

import (
	"slices"

	"go.trai.ch/depsnap/internal/core/domain"
)

// FileName is the name of the project manifest file.
const FileName = "depsnap.yaml"

// DefaultProvider is assumed for dependencies that do not name a provider.
const DefaultProvider = "package"

// Manifest is the structure of the depsnap.yaml project manifest.
type Manifest struct {
	Version      string                     `yaml:"version"`
	Project      string                     `yaml:"project"`
	Targets      []string                   `yaml:"targets"`
	ActiveTarget string                     `yaml:"activeTarget"`
	Dependencies map[string][]DependencyDTO `yaml:"dependencies"`
}

// DependencyDTO is one dependency declaration in the manifest. The map key
// above is a declared target moniker or "any" for target-agnostic items.
type DependencyDTO struct {
	Name     string `yaml:"name"`
	Version  string `yaml:"version"`
	Provider string `yaml:"provider"`
	ItemSpec string `yaml:"itemSpec"`
	Implicit bool   `yaml:"implicit"`
}

// normalize fills defaults after parsing.
func (m *Manifest) normalize(path string) {
	if m.Project == "" {
		m.Project = path
	}
	if m.ActiveTarget == "" || !slices.Contains(m.Targets, m.ActiveTarget) {
		if len(m.Targets) > 0 {
			m.ActiveTarget = m.Targets[0]
		}
	}
}

// validate checks the manifest after normalization.
func (m *Manifest) validate() error {
	if len(m.Targets) == 0 {
		return domain.ErrNoTargetsDeclared
	}
	return nil
}

// IsCrossTargeting reports whether the manifest declares more than one
// target framework.
func (m *Manifest) IsCrossTargeting() bool {
	return len(m.Targets) > 1
}

// DeclaresTarget reports whether the moniker is a declared target or the
// "any" sentinel.
func (m *Manifest) DeclaresTarget(moniker string) bool {
	if moniker == domain.AnyTarget().Moniker() {
		return true
	}
	return slices.Contains(m.Targets, moniker)
}

// DependenciesFor returns the domain dependencies declared for one target
// moniker.
func (m *Manifest) DependenciesFor(moniker string) []domain.Dependency {
	dtos := m.Dependencies[moniker]
	deps := make([]domain.Dependency, 0, len(dtos))
	for _, dto := range dtos {
		deps = append(deps, dto.toDomain())
	}
	return deps
}

// Catalog returns the set of declared item specs across all targets.
func (m *Manifest) Catalog() *domain.Catalog {
	var specs []string
	for _, dtos := range m.Dependencies {
		for _, dto := range dtos {
			specs = append(specs, dto.toDomain().ItemSpec)
		}
	}
	return domain.NewCatalog(specs)
}

func (d DependencyDTO) toDomain() domain.Dependency {
	provider := d.Provider
	if provider == "" {
		provider = DefaultProvider
	}
	itemSpec := d.ItemSpec
	if itemSpec == "" {
		itemSpec = d.Name
	}
	return domain.Dependency{
		ItemSpec: itemSpec,
		Provider: provider,
		Name:     d.Name,
		Version:  d.Version,
		Resolved: true,
		Implicit: d.Implicit,
	}
}
