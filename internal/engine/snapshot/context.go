package snapshot

import (
	"context"
	"sync"

	"go.trai.ch/depsnap/internal/core/domain"
	"go.trai.ch/depsnap/internal/core/ports"
	"go.trai.ch/zerr"
)

// RefreshResult is the outcome of one context refresh request.
type RefreshResult struct {
	// Context is the current aggregate context after the request.
	Context *ports.AggregateContext
	// Previous is the superseded context when Changed is true. The caller
	// disposes it after tearing down its subscriptions.
	Previous *ports.AggregateContext
	// Changed reports whether the context instance was replaced
	// (identity comparison).
	Changed bool
	// RemovedTargets lists the targets present in the previous context
	// but absent from the new one.
	RemovedTargets []domain.TargetFramework
}

type requestKind uint8

const (
	requestGet requestKind = iota
	requestRefresh
)

type contextRequest struct {
	kind    requestKind
	ctx     context.Context
	respond chan contextResponse
}

type contextResponse struct {
	result RefreshResult
	err    error
}

// ContextManager owns the single current aggregate project context. All
// creation, refresh and read operations are serialized by a dedicated
// coordination goroutine fed over a request/response channel: the protected
// work itself suspends on external calls (property reads, the foreground
// hand-off, the context provider), so a plain mutex would hold a scheduling
// thread across those waits. Concurrent callers await the in-flight result
// instead of racing to create duplicate contexts.
type ContextManager struct {
	provider   ports.ContextProvider
	config     ports.ConfigurationReader
	foreground ports.ForegroundRefresher
	resolver   ports.TargetResolver
	tracer     ports.Tracer
	logger     ports.Logger

	// onTargetsRemoved is invoked on the coordination goroutine when a
	// replacement dropped targets. The host uses it to reconcile the
	// snapshot and schedule a debounced notification.
	onTargetsRemoved func(removed []domain.TargetFramework)

	requests  chan contextRequest
	startOnce sync.Once
	stopOnce  sync.Once
	stopped   chan struct{}

	// current is owned exclusively by the coordination goroutine.
	current *ports.AggregateContext
}

// NewContextManager creates a manager. Start must be called before any
// request is served.
func NewContextManager(
	provider ports.ContextProvider,
	config ports.ConfigurationReader,
	foreground ports.ForegroundRefresher,
	resolver ports.TargetResolver,
	tracer ports.Tracer,
	logger ports.Logger,
) *ContextManager {
	return &ContextManager{
		provider:   provider,
		config:     config,
		foreground: foreground,
		resolver:   resolver,
		tracer:     tracer,
		logger:     logger,
		requests:   make(chan contextRequest),
		stopped:    make(chan struct{}),
	}
}

// SetOnTargetsRemoved installs the removed-targets callback. Must be called
// before Start.
func (m *ContextManager) SetOnTargetsRemoved(fn func(removed []domain.TargetFramework)) {
	m.onTargetsRemoved = fn
}

// Start launches the coordination goroutine. It runs until ctx is cancelled
// or Stop is called. Duplicate starts are absorbed; exactly one loop ever
// serves the request channel.
func (m *ContextManager) Start(ctx context.Context) {
	m.startOnce.Do(func() {
		go m.run(ctx)
	})
}

// Stop shuts the coordination goroutine down. Pending and later requests
// fail with ErrContextManagerStopped.
func (m *ContextManager) Stop() {
	m.stopOnce.Do(func() {
		close(m.stopped)
	})
}

// GetOrCreate returns the current context, creating one if none exists yet.
// It never compares target sets.
func (m *ContextManager) GetOrCreate(ctx context.Context) (*ports.AggregateContext, error) {
	res, err := m.send(ctx, requestGet)
	if err != nil {
		return nil, err
	}
	return res.Context, nil
}

// Refresh recomputes the context if the project's declared target
// frameworks actually changed, returning whether the instance was replaced.
func (m *ContextManager) Refresh(ctx context.Context) (RefreshResult, error) {
	return m.send(ctx, requestRefresh)
}

func (m *ContextManager) send(ctx context.Context, kind requestKind) (RefreshResult, error) {
	req := contextRequest{
		kind:    kind,
		ctx:     ctx,
		respond: make(chan contextResponse, 1),
	}

	select {
	case m.requests <- req:
	case <-m.stopped:
		return RefreshResult{}, domain.ErrContextManagerStopped
	case <-ctx.Done():
		return RefreshResult{}, ctx.Err()
	}

	select {
	case res := <-req.respond:
		return res.result, res.err
	case <-ctx.Done():
		return RefreshResult{}, ctx.Err()
	}
}

func (m *ContextManager) run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			m.Stop()
			return
		case <-m.stopped:
			return
		case req := <-m.requests:
			res, err := m.handle(req)
			req.respond <- contextResponse{result: res, err: err}
		}
	}
}

func (m *ContextManager) handle(req contextRequest) (RefreshResult, error) {
	rctx, span := m.tracer.Start(req.ctx, "RefreshContext")
	defer span.End()

	// First creation is unconditional for both request kinds.
	if m.current == nil {
		created, err := m.create(rctx)
		if err != nil {
			span.RecordError(err)
			return RefreshResult{}, err
		}
		m.current = created
		span.SetAttribute("targets", len(created.Targets()))
		return RefreshResult{Context: created, Changed: true}, nil
	}

	if req.kind == requestGet {
		return RefreshResult{Context: m.current}, nil
	}

	changed, err := m.targetsChanged(rctx)
	if err != nil {
		span.RecordError(err)
		return RefreshResult{}, err
	}
	if !changed {
		return RefreshResult{Context: m.current}, nil
	}

	// The active configuration is tracked by the foreground resource;
	// refreshing it must complete before a new context is requested.
	if err := m.foreground.RefreshActiveConfiguration(rctx); err != nil {
		span.RecordError(err)
		return RefreshResult{}, zerr.Wrap(err, "failed to refresh active configuration")
	}

	created, err := m.create(rctx)
	if err != nil {
		// The previous context remains current; the caller observes
		// the failure on this operation only.
		span.RecordError(err)
		return RefreshResult{}, err
	}

	previous := m.current
	m.current = created

	removed := domain.SubtractTargets(previous.Targets(), created.Targets())
	if len(removed) > 0 && m.onTargetsRemoved != nil {
		m.onTargetsRemoved(removed)
	}

	span.SetAttribute("targets", len(created.Targets()))
	span.SetAttribute("removed_targets", len(removed))

	return RefreshResult{
		Context:        created,
		Previous:       previous,
		Changed:        true,
		RemovedTargets: removed,
	}, nil
}

func (m *ContextManager) create(ctx context.Context) (*ports.AggregateContext, error) {
	created, err := m.provider.CreateProjectContext(ctx)
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrContextCreateFailed.Error())
	}
	return created, nil
}

// targetsChanged decides whether the declared targeting configuration
// diverged from the current context. Unresolvable declarations report
// "changed" so the context is recreated rather than silently reused.
func (m *ContextManager) targetsChanged(ctx context.Context) (bool, error) {
	declared, err := m.config.DeclaredTargetNames(ctx)
	if err != nil {
		return false, zerr.Wrap(err, "failed to read declared targets")
	}

	if !m.current.IsCrossTargeting() {
		if len(declared) != 1 {
			return true, nil
		}
		tf, ok := m.resolver.ResolveTarget(declared[0])
		if !ok {
			return true, nil
		}
		return tf != m.current.ActiveTarget(), nil
	}

	known, err := m.config.KnownConfigurations(ctx)
	if err != nil {
		return false, zerr.Wrap(err, "failed to read known configurations")
	}

	targets := make([]domain.TargetFramework, 0, len(known))
	for _, cfg := range known {
		if !cfg.IsCrossTargeting {
			return true, nil
		}
		tf, ok := m.resolver.ResolveTarget(cfg.TargetName)
		if !ok {
			return true, nil
		}
		targets = append(targets, tf)
	}

	return !domain.SameTargetSet(m.current.Targets(), targets), nil
}
