package manifest

import (
	"context"
	"sync"
	"sync/atomic"

	"go.trai.ch/depsnap/internal/core/domain"
	"go.trai.ch/depsnap/internal/core/ports"
	"go.trai.ch/zerr"
)

// Service is the manifest-backed implementation of the engine's external
// capabilities. One Service instance serves a single project manifest.
type Service struct {
	path   string
	logger ports.Logger

	mu      sync.Mutex
	current *Manifest
	// lastPushed remembers the dependency slices last submitted per
	// target, so rebuild cycles re-push full sets and steady-state
	// reloads push diffs only.
	lastPushed map[domain.TargetFramework][]domain.Dependency

	version atomic.Int64

	sink ports.SubscriberSink

	subsMu sync.Mutex
	subs   map[*subscription]struct{}

	onRename func(newProject string)
}

var (
	_ ports.ContextProvider     = (*Service)(nil)
	_ ports.ConfigurationReader = (*Service)(nil)
	_ ports.TargetResolver      = (*Service)(nil)
	_ ports.ForegroundRefresher = (*Service)(nil)
	_ ports.Subscriber          = (*Service)(nil)
)

// NewService creates a service for the manifest at path.
func NewService(path string, logger ports.Logger) *Service {
	return &Service{
		path:       path,
		logger:     logger,
		lastPushed: make(map[domain.TargetFramework][]domain.Dependency),
		subs:       make(map[*subscription]struct{}),
	}
}

// SetOnRename installs the callback invoked when the manifest's project
// identity changes.
func (s *Service) SetOnRename(fn func(newProject string)) {
	s.onRename = fn
}

// Project returns the project identity of the currently loaded manifest.
func (s *Service) Project() (string, error) {
	m, err := s.ensure()
	if err != nil {
		return "", err
	}
	return m.Project, nil
}

// CreateProjectContext implements ports.ContextProvider. It reloads the
// manifest and builds one configured sub-project per declared target.
func (s *Service) CreateProjectContext(context.Context) (*ports.AggregateContext, error) {
	m, err := s.reload()
	if err != nil {
		return nil, err
	}

	projects := make([]ports.ConfiguredProject, 0, len(m.Targets))
	for _, moniker := range m.Targets {
		projects = append(projects, &configuredProject{
			svc: s,
			tf:  domain.NewTargetFramework(moniker),
		})
	}

	active := domain.NewTargetFramework(m.ActiveTarget)
	return ports.NewAggregateContext(active, projects), nil
}

// DeclaredTargetNames implements ports.ConfigurationReader.
func (s *Service) DeclaredTargetNames(context.Context) ([]string, error) {
	m, err := s.ensure()
	if err != nil {
		return nil, err
	}
	names := make([]string, len(m.Targets))
	copy(names, m.Targets)
	return names, nil
}

// KnownConfigurations implements ports.ConfigurationReader.
func (s *Service) KnownConfigurations(context.Context) ([]ports.BuildConfiguration, error) {
	m, err := s.ensure()
	if err != nil {
		return nil, err
	}
	configs := make([]ports.BuildConfiguration, 0, len(m.Targets))
	for _, moniker := range m.Targets {
		configs = append(configs, ports.BuildConfiguration{
			TargetName:       moniker,
			IsCrossTargeting: m.IsCrossTargeting(),
		})
	}
	return configs, nil
}

// ResolveTarget implements ports.TargetResolver. Only declared monikers and
// the "any" sentinel resolve.
func (s *Service) ResolveTarget(name string) (domain.TargetFramework, bool) {
	if name == domain.AnyTarget().Moniker() {
		return domain.AnyTarget(), true
	}
	m, err := s.ensure()
	if err != nil {
		return domain.TargetFramework{}, false
	}
	if !m.DeclaresTarget(name) {
		return domain.TargetFramework{}, false
	}
	return domain.NewTargetFramework(name), true
}

// RefreshActiveConfiguration implements ports.ForegroundRefresher by
// re-reading the manifest from disk.
func (s *Service) RefreshActiveConfiguration(context.Context) error {
	_, err := s.reload()
	return err
}

// Initialize implements ports.Subscriber.
func (s *Service) Initialize(sink ports.SubscriberSink) {
	s.sink = sink
}

// AddSubscriptions implements ports.Subscriber. It pushes the declared
// dependency sets for every target in the new context, diffed against what
// was last pushed.
func (s *Service) AddSubscriptions(agg *ports.AggregateContext) {
	m, err := s.ensure()
	if err != nil {
		s.logger.Error(zerr.Wrap(err, "failed to load manifest for subscriptions"))
		return
	}
	s.pushDependencies(context.Background(), m, agg.Targets())
}

// ReleaseSubscriptions implements ports.Subscriber. Discarding the pushed
// state makes the next AddSubscriptions re-push full dependency sets.
func (s *Service) ReleaseSubscriptions() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastPushed = make(map[domain.TargetFramework][]domain.Dependency)
}

// pushDependencies submits the diff between the last pushed slices and the
// manifest's declared dependencies for the given targets plus "any".
func (s *Service) pushDependencies(ctx context.Context, m *Manifest, targets []domain.TargetFramework) {
	if s.sink == nil {
		return
	}

	monikers := make([]string, 0, len(targets)+1)
	for _, tf := range targets {
		monikers = append(monikers, tf.Moniker())
	}
	monikers = append(monikers, domain.AnyTarget().Moniker())

	changes := make(map[domain.TargetFramework]domain.ChangeSet)

	s.mu.Lock()
	for _, moniker := range monikers {
		tf := domain.NewTargetFramework(moniker)
		declared := m.DependenciesFor(moniker)
		cs := diffDependencies(s.lastPushed[tf], declared)
		if cs.Empty() {
			continue
		}
		changes[tf] = cs
		s.lastPushed[tf] = declared
	}
	s.mu.Unlock()

	if len(changes) == 0 {
		return
	}
	if err := s.sink.SubmitChanges(ctx, m.Catalog(), changes); err != nil {
		s.logger.Error(zerr.Wrap(err, "failed to submit dependency changes"))
	}
}

// ensure returns the current manifest, loading it on first use.
func (s *Service) ensure() (*Manifest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current != nil {
		return s.current, nil
	}
	m, err := Load(s.path)
	if err != nil {
		return nil, err
	}
	s.current = m
	return m, nil
}

// reload re-reads the manifest from disk and installs it as current.
func (s *Service) reload() (*Manifest, error) {
	m, err := Load(s.path)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	s.current = m
	s.mu.Unlock()
	return m, nil
}

// diffDependencies computes the change set turning old into new.
func diffDependencies(oldDeps, newDeps []domain.Dependency) domain.ChangeSet {
	oldByID := make(map[string]domain.Dependency, len(oldDeps))
	for _, d := range oldDeps {
		oldByID[d.ID()] = d
	}

	var changes []domain.Change
	newIDs := make(map[string]struct{}, len(newDeps))
	for _, d := range newDeps {
		newIDs[d.ID()] = struct{}{}
		prev, ok := oldByID[d.ID()]
		switch {
		case !ok:
			changes = append(changes, domain.Change{Kind: domain.ChangeAdd, Dependency: d})
		case prev != d:
			changes = append(changes, domain.Change{Kind: domain.ChangeUpdate, Dependency: d})
		}
	}
	for _, d := range oldDeps {
		if _, ok := newIDs[d.ID()]; !ok {
			changes = append(changes, domain.Change{Kind: domain.ChangeRemove, Dependency: d})
		}
	}
	return domain.ChangeSet{Changes: changes}
}

// configuredProject is the per-target sub-project handle.
type configuredProject struct {
	svc *Service
	tf  domain.TargetFramework
}

var _ ports.ConfiguredProject = (*configuredProject)(nil)

func (p *configuredProject) TargetFramework() domain.TargetFramework {
	return p.tf
}

func (p *configuredProject) Feed() ports.ChangeFeed {
	return &targetFeed{svc: p.svc, tf: p.tf}
}

// targetFeed is the change feed scoped to one configured sub-project.
type targetFeed struct {
	svc *Service
	tf  domain.TargetFramework
}

var _ ports.ChangeFeed = (*targetFeed)(nil)

func (f *targetFeed) Subscribe(_ context.Context, rules []string, handler ports.BatchHandler) (ports.Link, error) {
	sub := &subscription{
		svc:     f.svc,
		tf:      f.tf,
		rules:   make(map[string]struct{}, len(rules)),
		handler: handler,
	}
	for _, rule := range rules {
		sub.rules[rule] = struct{}{}
	}

	f.svc.subsMu.Lock()
	f.svc.subs[sub] = struct{}{}
	f.svc.subsMu.Unlock()
	return sub, nil
}

// subscription is one live feed registration; it doubles as its own link.
type subscription struct {
	svc      *Service
	tf       domain.TargetFramework
	rules    map[string]struct{}
	handler  ports.BatchHandler
	disposed atomic.Bool
}

var _ ports.Link = (*subscription)(nil)

// Dispose stops future callbacks. Idempotent.
func (s *subscription) Dispose() error {
	if s.disposed.Swap(true) {
		return nil
	}
	s.svc.subsMu.Lock()
	delete(s.svc.subs, s)
	s.svc.subsMu.Unlock()
	return nil
}

func (s *subscription) matches(rule string) bool {
	_, ok := s.rules[rule]
	return ok
}
