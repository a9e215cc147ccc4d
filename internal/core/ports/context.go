// Package ports defines the capability interfaces consumed by the engine.
package ports

import (
	"context"
	"sync/atomic"

	"go.trai.ch/depsnap/internal/core/domain"
)

//go:generate mockgen -source=context.go -destination=mocks/mock_context.go -package=mocks

// ConfiguredProject is the handle to one target framework's configured
// sub-project inside an aggregate context.
type ConfiguredProject interface {
	// TargetFramework returns the target this sub-project is configured for.
	TargetFramework() domain.TargetFramework

	// Feed returns the change feed delivering this sub-project's
	// versioned property-change batches.
	Feed() ChangeFeed
}

// ContextProvider creates aggregate project contexts. It may take arbitrary
// time and must be called at most once per refresh cycle.
type ContextProvider interface {
	CreateProjectContext(ctx context.Context) (*AggregateContext, error)
}

// ConfigurationReader reads the project's currently declared targeting
// configuration. Reads may suspend (project properties live outside the
// engine), which is why context refreshes are serialized by a coordination
// routine rather than a plain mutex.
type ConfigurationReader interface {
	// DeclaredTargetNames returns the raw target framework monikers the
	// project file currently declares, in declaration order.
	DeclaredTargetNames(ctx context.Context) ([]string, error)

	// KnownConfigurations returns every build configuration currently
	// known for the project.
	KnownConfigurations(ctx context.Context) ([]BuildConfiguration, error)
}

// BuildConfiguration is one known build configuration of the project.
type BuildConfiguration struct {
	// TargetName is the configuration's target framework moniker.
	TargetName string
	// IsCrossTargeting reports whether the configuration belongs to a
	// cross-targeting build.
	IsCrossTargeting bool
}

// ForegroundRefresher forces a refresh of the externally tracked active
// configuration. This is the single operation that must run on the
// designated foreground resource; the context manager awaits it before
// requesting a new context.
type ForegroundRefresher interface {
	RefreshActiveConfiguration(ctx context.Context) error
}

// TargetResolver resolves a short or full target-name string to a
// TargetFramework value.
type TargetResolver interface {
	// ResolveTarget returns the resolved target and true, or false when
	// the name is unrecognized.
	ResolveTarget(name string) (domain.TargetFramework, bool)
}

// AggregateContext owns the set of currently active target frameworks and
// their configured sub-project handles. Exactly one non-disposed instance
// exists per project at any time; superseded instances are disposed after
// their subscriptions are torn down.
type AggregateContext struct {
	active   domain.TargetFramework
	targets  []domain.TargetFramework
	byTarget map[domain.TargetFramework]ConfiguredProject
	disposed atomic.Bool
}

// NewAggregateContext builds an aggregate context from the active target and
// the configured sub-projects, one per target framework.
func NewAggregateContext(active domain.TargetFramework, projects []ConfiguredProject) *AggregateContext {
	targets := make([]domain.TargetFramework, 0, len(projects))
	byTarget := make(map[domain.TargetFramework]ConfiguredProject, len(projects))
	for _, p := range projects {
		tf := p.TargetFramework()
		targets = append(targets, tf)
		byTarget[tf] = p
	}
	return &AggregateContext{
		active:   active,
		targets:  targets,
		byTarget: byTarget,
	}
}

// ActiveTarget returns the currently active target framework.
func (c *AggregateContext) ActiveTarget() domain.TargetFramework {
	return c.active
}

// Targets returns the context's target frameworks in declaration order.
// The returned slice must not be modified.
func (c *AggregateContext) Targets() []domain.TargetFramework {
	return c.targets
}

// IsCrossTargeting reports whether the context spans more than one target.
func (c *AggregateContext) IsCrossTargeting() bool {
	return len(c.targets) > 1
}

// ConfiguredProject returns the sub-project handle for the given target.
func (c *AggregateContext) ConfiguredProject(tf domain.TargetFramework) (ConfiguredProject, bool) {
	p, ok := c.byTarget[tf]
	return p, ok
}

// Projects returns every configured sub-project in declaration order.
func (c *AggregateContext) Projects() []ConfiguredProject {
	projects := make([]ConfiguredProject, 0, len(c.targets))
	for _, tf := range c.targets {
		projects = append(projects, c.byTarget[tf])
	}
	return projects
}

// Dispose marks the context as superseded. Idempotent.
func (c *AggregateContext) Dispose() {
	c.disposed.Store(true)
}

// IsDisposed reports whether the context has been superseded.
func (c *AggregateContext) IsDisposed() bool {
	return c.disposed.Load()
}
