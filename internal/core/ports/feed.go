package ports

import (
	"context"

	"go.trai.ch/depsnap/internal/core/domain"
)

//go:generate mockgen -source=feed.go -destination=mocks/mock_feed.go -package=mocks

// Rule and property names delivered over change feeds.
const (
	// RuleProjectConfiguration is the rule carrying targeting properties.
	RuleProjectConfiguration = "project-configuration"
	// PropertyTargetFrameworks is the declared target frameworks property.
	PropertyTargetFrameworks = "targetFrameworks"
	// PropertyActiveTarget is the active target framework property.
	PropertyActiveTarget = "activeTarget"
	// PropertyProjectPath is the project file path property.
	PropertyProjectPath = "projectPath"
)

// PropertyChangeBatch is one versioned batch of changed properties delivered
// by a change feed.
type PropertyChangeBatch struct {
	// Version increases monotonically per link; handlers drop batches
	// older than the last one they observed after a rebuild.
	Version int64
	// Rule names the property group the batch belongs to.
	Rule string
	// ChangedProperties lists the property names that changed.
	ChangedProperties []string
	// Target is the target framework the batch applies to, zero for
	// project-level batches.
	Target domain.TargetFramework
}

// HasProperty reports whether the batch includes the given property.
func (b PropertyChangeBatch) HasProperty(name string) bool {
	for _, p := range b.ChangedProperties {
		if p == name {
			return true
		}
	}
	return false
}

// BatchHandler consumes property-change batches. Handlers run on the feed's
// worker; returning an error aborts only the delivery of that batch.
type BatchHandler func(ctx context.Context, batch PropertyChangeBatch) error

// ChangeFeed hands out live subscriptions to property-change batches.
type ChangeFeed interface {
	// Subscribe registers a handler for batches matching the given rule
	// names. The returned link stops future callbacks when disposed.
	Subscribe(ctx context.Context, rules []string, handler BatchHandler) (Link, error)
}

// Link is an opaque handle for one active change-feed registration.
// Disposing it must stop future callbacks. Dispose is idempotent.
type Link interface {
	Dispose() error
}

// SubscriberSink receives the per-target change sets a subscriber produced.
// The snapshot host implements it.
type SubscriberSink interface {
	// SubmitChanges merges the given change sets into the current
	// snapshot. The catalog may be nil when the producer has no item-spec
	// data for this batch.
	SubmitChanges(ctx context.Context, catalog *domain.Catalog, changes map[domain.TargetFramework]domain.ChangeSet) error
}

// Subscriber is a cross-target change producer managed by the subscription
// registry across context replace cycles.
type Subscriber interface {
	// Initialize hands the subscriber the sink it reports changes to.
	// Called once, before the first AddSubscriptions.
	Initialize(sink SubscriberSink)

	// AddSubscriptions lets the subscriber attach its own feed
	// subscriptions against a freshly created context.
	AddSubscriptions(agg *AggregateContext)

	// ReleaseSubscriptions discards the subscriber's per-target state and
	// subscriptions before the owning context is replaced or unloaded.
	ReleaseSubscriptions()
}

// SubtreeHandler consumes a subtree provider's change notification. The
// target name may be empty or unknown, in which case the host attributes the
// changes to the "any" sentinel target.
type SubtreeHandler func(targetName string, changes domain.ChangeSet)

// SubtreeProvider computes one provider-specific subtree of the dependency
// graph and notifies the host when its slice changes.
type SubtreeProvider interface {
	// Kind returns the provider type identifier (e.g. "package").
	Kind() string

	// Attach registers a change listener and returns its link.
	Attach(handler SubtreeHandler) Link
}
