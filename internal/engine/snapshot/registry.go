package snapshot

import (
	"context"
	"errors"
	"sync"

	"go.trai.ch/depsnap/internal/core/domain"
	"go.trai.ch/depsnap/internal/core/ports"
	"go.trai.ch/zerr"
)

// SubscriptionRegistry owns the set of live change-feed links plus the
// registered cross-target subscribers, and tears both down when the owning
// context is replaced. Its lock guards bookkeeping only and is distinct
// from the snapshot lock.
type SubscriptionRegistry struct {
	logger ports.Logger

	mu          sync.Mutex
	subscribers []ports.Subscriber
	links       []ports.Link
}

// NewSubscriptionRegistry creates an empty registry.
func NewSubscriptionRegistry(logger ports.Logger) *SubscriptionRegistry {
	return &SubscriptionRegistry{logger: logger}
}

// RegisterSubscriber initializes the subscriber with its sink and adds it to
// the registry. Called once per subscriber during host initialization.
func (r *SubscriptionRegistry) RegisterSubscriber(s ports.Subscriber, sink ports.SubscriberSink) {
	s.Initialize(sink)

	r.mu.Lock()
	defer r.mu.Unlock()
	r.subscribers = append(r.subscribers, s)
}

// AddSubscriptions opens one change-feed subscription per configured
// sub-project in the new context, filtered to project-configuration
// signals and routed to onConfigChange, then lets every registered
// subscriber attach its own subscriptions. Safe to call repeatedly after
// ReleaseAll as contexts are replaced.
func (r *SubscriptionRegistry) AddSubscriptions(
	ctx context.Context,
	agg *ports.AggregateContext,
	onConfigChange ports.BatchHandler,
) error {
	rules := []string{ports.RuleProjectConfiguration}

	links := make([]ports.Link, 0, len(agg.Targets()))
	for _, project := range agg.Projects() {
		link, err := project.Feed().Subscribe(ctx, rules, onConfigChange)
		if err != nil {
			disposeLinks(links, r.logger)
			return zerr.With(
				errors.Join(domain.ErrSubscribeFailed, err),
				"target", project.TargetFramework().Moniker(),
			)
		}
		links = append(links, link)
	}

	r.mu.Lock()
	r.links = append(r.links, links...)
	subscribers := r.subscribers
	r.mu.Unlock()

	for _, s := range subscribers {
		s.AddSubscriptions(agg)
	}
	return nil
}

// ReleaseAll lets every subscriber discard its per-target state, then
// disposes every held link and clears the set. Idempotent; no link survives
// a replace cycle.
func (r *SubscriptionRegistry) ReleaseAll() {
	r.mu.Lock()
	links := r.links
	r.links = nil
	subscribers := r.subscribers
	r.mu.Unlock()

	for _, s := range subscribers {
		s.ReleaseSubscriptions()
	}
	disposeLinks(links, r.logger)
}

// LinkCount returns the number of currently held links.
func (r *SubscriptionRegistry) LinkCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.links)
}

func disposeLinks(links []ports.Link, logger ports.Logger) {
	for _, link := range links {
		if err := link.Dispose(); err != nil && logger != nil {
			logger.Error(zerr.Wrap(err, "failed to dispose change-feed link"))
		}
	}
}
