package snapshot

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"go.trai.ch/depsnap/internal/core/domain"
	"go.trai.ch/depsnap/internal/core/ports"
	"go.trai.ch/zerr"
)

// hostState is the lifecycle state of a Host.
type hostState int32

const (
	stateUninitialized hostState = iota
	stateInitializing
	stateReady
	stateUnloading
	stateDisposed
)

// Listener observes the host's published notifications. Listeners are
// iterated deterministically in attach order.
type Listener interface {
	// OnSnapshotChanged delivers a new snapshot. The context is cancelled
	// when the project unloads.
	OnSnapshotChanged(ctx context.Context, snap *domain.Snapshot)

	// OnSnapshotRenamed reports a project identity change.
	OnSnapshotRenamed(oldPath, newPath string)

	// OnUnloading fires exactly once, before subscription teardown.
	OnUnloading()
}

// HostConfig bundles the collaborators a Host is built from.
type HostConfig struct {
	// ProjectPath is the project file path the first snapshot is keyed by.
	ProjectPath string
	// Contexts serializes aggregate-context lifecycle management.
	Contexts *ContextManager
	// Lifecycle supplies the unload signal.
	Lifecycle ports.Lifecycle
	// Resolver maps target-name strings to TargetFramework values.
	Resolver ports.TargetResolver
	Tracer   ports.Tracer
	Logger   ports.Logger
	// Filters is the ordered snapshot filter chain.
	Filters []ports.SnapshotFilter
	// Providers are the registered subtree providers.
	Providers []ports.SubtreeProvider
	// Subscribers are the cross-target change producers.
	Subscribers []ports.Subscriber
	// DebounceWindow overrides the notification window when positive.
	DebounceWindow time.Duration
}

// Host coordinates one project's dependency snapshot: it receives change
// events from feeds, subscribers and subtree providers, merges them into the
// current snapshot under the snapshot lock, publishes debounced
// notifications, and drives context refreshes when the project's targeting
// configuration changes.
type Host struct {
	projectPath string
	contexts    *ContextManager
	registry    *SubscriptionRegistry
	scheduler   *DebounceScheduler
	lifecycle   ports.Lifecycle
	resolver    ports.TargetResolver
	tracer      ports.Tracer
	logger      ports.Logger
	filters     []ports.SnapshotFilter
	providers   []ports.SubtreeProvider
	subscribers []ports.Subscriber

	state atomic.Int32

	// snapMu is the snapshot lock: a plain critical section guarding
	// read-modify-write of the snapshot reference. Merges never suspend
	// while holding it.
	snapMu sync.Mutex
	snap   *domain.Snapshot

	// agg caches the context installed by the last successful refresh.
	// The coordination goroutine owns the authoritative copy.
	agg atomic.Pointer[ports.AggregateContext]

	listenersMu sync.Mutex
	listeners   []Listener

	providerLinks []ports.Link
	providerKinds map[string]struct{}

	// registered latches subscriber and provider registration across
	// failed-load retries. Load bodies never run concurrently.
	registered bool

	unloadOnce sync.Once
}

var _ ports.SubscriberSink = (*Host)(nil)

// NewHost builds a host from its collaborators. Load must be called before
// the host handles events.
func NewHost(cfg HostConfig) *Host {
	kinds := make(map[string]struct{}, len(cfg.Providers))
	for _, p := range cfg.Providers {
		kinds[p.Kind()] = struct{}{}
	}

	h := &Host{
		projectPath:   cfg.ProjectPath,
		contexts:      cfg.Contexts,
		registry:      NewSubscriptionRegistry(cfg.Logger),
		scheduler:     NewDebounceScheduler(cfg.DebounceWindow),
		lifecycle:     cfg.Lifecycle,
		resolver:      cfg.Resolver,
		tracer:        cfg.Tracer,
		logger:        cfg.Logger,
		filters:       cfg.Filters,
		providers:     cfg.Providers,
		subscribers:   cfg.Subscribers,
		providerKinds: kinds,
	}
	h.contexts.SetOnTargetsRemoved(h.onTargetsRemoved)
	return h
}

// AttachListener registers a notification listener.
func (h *Host) AttachListener(l Listener) {
	h.listenersMu.Lock()
	defer h.listenersMu.Unlock()
	h.listeners = append(h.listeners, l)
}

// DetachListener removes a previously attached listener.
func (h *Host) DetachListener(l Listener) {
	h.listenersMu.Lock()
	defer h.listenersMu.Unlock()
	for i, existing := range h.listeners {
		if existing == l {
			h.listeners = append(h.listeners[:i], h.listeners[i+1:]...)
			return
		}
	}
}

// Load performs first-time initialization: it computes the initial context,
// attaches subtree-provider listeners and opens the base configuration
// subscriptions. Duplicate triggers are absorbed by an exchange-based
// one-shot latch; only the first caller does the work.
func (h *Host) Load(ctx context.Context) error {
	if !h.state.CompareAndSwap(int32(stateUninitialized), int32(stateInitializing)) {
		return nil
	}

	unloadCtx := h.lifecycle.UnloadContext()
	h.contexts.Start(unloadCtx)

	agg, err := h.contexts.GetOrCreate(ctx)
	if err != nil {
		// Leave the latch open for a later structural-load trigger.
		h.state.Store(int32(stateUninitialized))
		return err
	}
	h.agg.Store(agg)

	// A reopened latch retries the load; subscribers and provider links
	// must not be duplicated on the second pass.
	if !h.registered {
		for _, s := range h.subscribers {
			h.registry.RegisterSubscriber(s, h)
		}

		for _, p := range h.providers {
			link := p.Attach(h.onSubtreeChanged)
			h.providerLinks = append(h.providerLinks, link)
		}
		h.registered = true
	}

	if err := h.registry.AddSubscriptions(unloadCtx, agg, h.onConfigurationBatch); err != nil {
		h.state.Store(int32(stateUninitialized))
		return err
	}

	h.state.Store(int32(stateReady))
	return nil
}

// CurrentSnapshot returns the current snapshot, lazily materializing the
// initial empty snapshot on first access. Never nil.
func (h *Host) CurrentSnapshot() *domain.Snapshot {
	h.snapMu.Lock()
	defer h.snapMu.Unlock()
	return h.currentLocked()
}

// currentLocked must be called with snapMu held.
func (h *Host) currentLocked() *domain.Snapshot {
	if h.snap == nil {
		h.snap = domain.NewEmptySnapshot(h.projectPath)
	}
	return h.snap
}

// GetContext returns the current aggregate context, waiting for any
// in-flight context work to finish.
func (h *Host) GetContext(ctx context.Context) (*ports.AggregateContext, error) {
	switch hostState(h.state.Load()) {
	case stateUninitialized:
		return nil, domain.ErrNotInitialized
	case stateUnloading, stateDisposed:
		return nil, domain.ErrDisposed
	default:
		return h.contexts.GetOrCreate(ctx)
	}
}

// GetConfiguredProject looks up the configured sub-project for a target
// inside the current context.
func (h *Host) GetConfiguredProject(ctx context.Context, tf domain.TargetFramework) (ports.ConfiguredProject, error) {
	agg, err := h.GetContext(ctx)
	if err != nil {
		return nil, err
	}
	project, ok := agg.ConfiguredProject(tf)
	if !ok {
		return nil, zerr.With(domain.ErrUnknownTarget, "target", tf.Moniker())
	}
	return project, nil
}

// SubmitChanges merges a producer's per-target change sets into the current
// snapshot and schedules a debounced notification when the merge produced a
// new instance. Implements ports.SubscriberSink.
func (h *Host) SubmitChanges(
	ctx context.Context,
	catalog *domain.Catalog,
	changes map[domain.TargetFramework]domain.ChangeSet,
) error {
	if h.isShuttingDown() {
		return nil
	}
	return h.merge(ctx, catalog, changes)
}

// HandleRename republishes the snapshot under a new project path and
// notifies listeners of the identity change.
func (h *Host) HandleRename(newPath string) {
	if h.isShuttingDown() {
		return
	}

	h.snapMu.Lock()
	oldPath := h.projectPath
	if oldPath == newPath {
		h.snapMu.Unlock()
		return
	}
	h.projectPath = newPath
	h.snap = h.currentLocked().WithProjectPath(newPath)
	h.snapMu.Unlock()

	for _, l := range h.snapshotListeners() {
		l.OnSnapshotRenamed(oldPath, newPath)
	}
	h.scheduleNotify()
}

// Unload tears the host down: it raises the unloading notification exactly
// once, releases all subscriptions and stops the context loop.
func (h *Host) Unload() {
	state := hostState(h.state.Load())
	if state == stateUnloading || state == stateDisposed {
		return
	}
	h.state.Store(int32(stateUnloading))

	h.unloadOnce.Do(func() {
		for _, l := range h.snapshotListeners() {
			l.OnUnloading()
		}

		for _, link := range h.providerLinks {
			if err := link.Dispose(); err != nil {
				h.logger.Error(zerr.Wrap(err, "failed to detach subtree provider"))
			}
		}
		h.providerLinks = nil

		h.registry.ReleaseAll()

		if agg := h.agg.Load(); agg != nil {
			agg.Dispose()
		}
		h.contexts.Stop()
	})
}

// Dispose releases the scheduler and lock resources. Further lifecycle
// calls are ignored.
func (h *Host) Dispose() {
	if hostState(h.state.Load()) == stateDisposed {
		return
	}
	h.Unload()
	h.scheduler.Dispose()
	h.state.Store(int32(stateDisposed))
}

// onConfigurationBatch handles evaluation changes for the tracked
// configuration properties. When target-framework-related properties
// changed it refreshes the context and, if the instance was replaced, tears
// down and rebuilds all subscriptions.
func (h *Host) onConfigurationBatch(ctx context.Context, batch ports.PropertyChangeBatch) error {
	if h.isShuttingDown() {
		return nil
	}

	if !batch.HasProperty(ports.PropertyTargetFrameworks) &&
		!batch.HasProperty(ports.PropertyActiveTarget) {
		return nil
	}

	res, err := h.contexts.Refresh(ctx)
	if err != nil {
		return zerr.Wrap(err, "context refresh failed")
	}
	if !res.Changed {
		return nil
	}

	h.registry.ReleaseAll()
	if res.Previous != nil {
		res.Previous.Dispose()
	}
	h.agg.Store(res.Context)

	return h.registry.AddSubscriptions(h.lifecycle.UnloadContext(), res.Context, h.onConfigurationBatch)
}

// onSubtreeChanged handles a subtree provider's change notification. An
// empty or unknown target name attributes the changes to the "any" target.
func (h *Host) onSubtreeChanged(targetName string, cs domain.ChangeSet) {
	if h.isShuttingDown() || cs.Empty() {
		return
	}

	tf := domain.AnyTarget()
	if targetName != "" {
		if resolved, ok := h.resolver.ResolveTarget(targetName); ok {
			tf = resolved
		}
	}

	changes := map[domain.TargetFramework]domain.ChangeSet{tf: cs}
	if err := h.merge(h.lifecycle.UnloadContext(), nil, changes); err != nil {
		h.logger.Error(zerr.Wrap(err, "failed to merge subtree changes"))
	}
}

func (h *Host) merge(
	ctx context.Context,
	catalog *domain.Catalog,
	changes map[domain.TargetFramework]domain.ChangeSet,
) error {
	_, span := h.tracer.Start(ctx, "MergeChanges",
		ports.WithAttribute("changed_targets", len(changes)))
	defer span.End()

	var active domain.TargetFramework
	if agg := h.agg.Load(); agg != nil {
		active = agg.ActiveTarget()
	}

	in := MergeInput{
		Changes:       changes,
		Catalog:       catalog,
		ActiveTarget:  active,
		Filters:       h.filters,
		ProviderKinds: h.providerKinds,
	}

	h.snapMu.Lock()
	prev := h.currentLocked()
	next, err := MergeChanges(prev, in)
	if err != nil {
		h.snapMu.Unlock()
		span.RecordError(err)
		return err
	}
	changed := next != prev
	if changed {
		h.snap = next
	}
	h.snapMu.Unlock()

	if changed {
		h.scheduleNotify()
	}
	return nil
}

// onTargetsRemoved reconciles the snapshot when a context replacement
// dropped targets.
func (h *Host) onTargetsRemoved(removed []domain.TargetFramework) {
	h.snapMu.Lock()
	prev := h.currentLocked()
	next := prev.RemoveTargets(removed...)
	changed := next != prev
	if changed {
		h.snap = next
	}
	h.snapMu.Unlock()

	if changed {
		h.scheduleNotify()
	}
}

func (h *Host) scheduleNotify() {
	h.scheduler.Schedule(h.lifecycle.UnloadContext(), func(ctx context.Context) {
		// Delivery runs under the lifecycle scope so an unload racing the
		// debounce window suppresses the notification.
		_ = h.lifecycle.WhileLoaded(ctx, func(ctx context.Context) error {
			snap := h.CurrentSnapshot()
			for _, l := range h.snapshotListeners() {
				l.OnSnapshotChanged(ctx, snap)
			}
			return nil
		})
	})
}

func (h *Host) snapshotListeners() []Listener {
	h.listenersMu.Lock()
	defer h.listenersMu.Unlock()
	listeners := make([]Listener, len(h.listeners))
	copy(listeners, h.listeners)
	return listeners
}

func (h *Host) isShuttingDown() bool {
	state := hostState(h.state.Load())
	return state == stateUnloading || state == stateDisposed
}
