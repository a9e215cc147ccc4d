package snapshot_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/depsnap/internal/core/domain"
	"go.trai.ch/depsnap/internal/core/ports"
	"go.trai.ch/depsnap/internal/core/ports/mocks"
	"go.trai.ch/depsnap/internal/engine/snapshot"
	"go.uber.org/mock/gomock"
)

// feedAggregate builds an aggregate context whose sub-projects subscribe
// against the given mock links.
func feedAggregate(ctrl *gomock.Controller, links map[string]*mocks.MockLink) *ports.AggregateContext {
	projects := make([]ports.ConfiguredProject, 0, len(links))
	var active domain.TargetFramework
	for moniker, link := range links {
		feed := mocks.NewMockChangeFeed(ctrl)
		feed.EXPECT().
			Subscribe(gomock.Any(), []string{ports.RuleProjectConfiguration}, gomock.Any()).
			Return(link, nil).
			AnyTimes()

		p := mocks.NewMockConfiguredProject(ctrl)
		p.EXPECT().TargetFramework().Return(domain.NewTargetFramework(moniker)).AnyTimes()
		p.EXPECT().Feed().Return(feed).AnyTimes()
		projects = append(projects, p)
		if active.IsZero() {
			active = domain.NewTargetFramework(moniker)
		}
	}
	return ports.NewAggregateContext(active, projects)
}

func TestSubscriptionRegistry_AddSubscriptions_OpensOneLinkPerTarget(t *testing.T) {
	ctrl := gomock.NewController(t)
	logger := mocks.NewMockLogger(ctrl)

	links := map[string]*mocks.MockLink{
		"net6.0": mocks.NewMockLink(ctrl),
		"net7.0": mocks.NewMockLink(ctrl),
	}
	agg := feedAggregate(ctrl, links)

	r := snapshot.NewSubscriptionRegistry(logger)
	err := r.AddSubscriptions(context.Background(), agg, func(context.Context, ports.PropertyChangeBatch) error {
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 2, r.LinkCount())
}

func TestSubscriptionRegistry_ReleaseAll_DisposesEveryLink(t *testing.T) {
	ctrl := gomock.NewController(t)
	logger := mocks.NewMockLogger(ctrl)

	link6 := mocks.NewMockLink(ctrl)
	link7 := mocks.NewMockLink(ctrl)
	link6.EXPECT().Dispose().Return(nil).Times(1)
	link7.EXPECT().Dispose().Return(nil).Times(1)

	agg := feedAggregate(ctrl, map[string]*mocks.MockLink{
		"net6.0": link6,
		"net7.0": link7,
	})

	r := snapshot.NewSubscriptionRegistry(logger)
	require.NoError(t, r.AddSubscriptions(context.Background(), agg, nil))
	require.Equal(t, 2, r.LinkCount())

	r.ReleaseAll()
	assert.Equal(t, 0, r.LinkCount())

	// Idempotent; the links are not disposed twice.
	r.ReleaseAll()
}

func TestSubscriptionRegistry_ReplaceCycle_NoLinkSurvives(t *testing.T) {
	ctrl := gomock.NewController(t)
	logger := mocks.NewMockLogger(ctrl)

	oldLink := mocks.NewMockLink(ctrl)
	oldLink.EXPECT().Dispose().Return(nil).Times(1)
	newLink := mocks.NewMockLink(ctrl)

	oldAgg := feedAggregate(ctrl, map[string]*mocks.MockLink{"net6.0": oldLink})
	newAgg := feedAggregate(ctrl, map[string]*mocks.MockLink{"net7.0": newLink})

	r := snapshot.NewSubscriptionRegistry(logger)
	require.NoError(t, r.AddSubscriptions(context.Background(), oldAgg, nil))

	r.ReleaseAll()
	require.NoError(t, r.AddSubscriptions(context.Background(), newAgg, nil))

	// Only the new context's link is held.
	assert.Equal(t, 1, r.LinkCount())
}

func TestSubscriptionRegistry_AddSubscriptions_RollsBackOnError(t *testing.T) {
	ctrl := gomock.NewController(t)
	logger := mocks.NewMockLogger(ctrl)

	okLink := mocks.NewMockLink(ctrl)
	okLink.EXPECT().Dispose().Return(nil).Times(1)

	okFeed := mocks.NewMockChangeFeed(ctrl)
	okFeed.EXPECT().Subscribe(gomock.Any(), gomock.Any(), gomock.Any()).Return(okLink, nil)

	failFeed := mocks.NewMockChangeFeed(ctrl)
	failFeed.EXPECT().Subscribe(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("feed gone"))

	okProject := mocks.NewMockConfiguredProject(ctrl)
	okProject.EXPECT().TargetFramework().Return(domain.NewTargetFramework("net6.0")).AnyTimes()
	okProject.EXPECT().Feed().Return(okFeed).AnyTimes()

	failProject := mocks.NewMockConfiguredProject(ctrl)
	failProject.EXPECT().TargetFramework().Return(domain.NewTargetFramework("net7.0")).AnyTimes()
	failProject.EXPECT().Feed().Return(failFeed).AnyTimes()

	agg := ports.NewAggregateContext(
		domain.NewTargetFramework("net6.0"),
		[]ports.ConfiguredProject{okProject, failProject},
	)

	r := snapshot.NewSubscriptionRegistry(logger)
	err := r.AddSubscriptions(context.Background(), agg, nil)
	require.Error(t, err)
	require.ErrorContains(t, err, domain.ErrSubscribeFailed.Error())
	require.ErrorContains(t, err, "feed gone")
	assert.Equal(t, 0, r.LinkCount())
}

func TestSubscriptionRegistry_SubscribersFollowReplaceCycle(t *testing.T) {
	ctrl := gomock.NewController(t)
	logger := mocks.NewMockLogger(ctrl)

	link := mocks.NewMockLink(ctrl)
	link.EXPECT().Dispose().Return(nil).AnyTimes()
	agg := feedAggregate(ctrl, map[string]*mocks.MockLink{"net6.0": link})

	sink := mocks.NewMockSubscriberSink(ctrl)
	sub := mocks.NewMockSubscriber(ctrl)
	gomock.InOrder(
		sub.EXPECT().Initialize(sink),
		sub.EXPECT().AddSubscriptions(agg),
		sub.EXPECT().ReleaseSubscriptions(),
		sub.EXPECT().AddSubscriptions(agg),
	)

	r := snapshot.NewSubscriptionRegistry(logger)
	r.RegisterSubscriber(sub, sink)

	require.NoError(t, r.AddSubscriptions(context.Background(), agg, nil))
	r.ReleaseAll()
	require.NoError(t, r.AddSubscriptions(context.Background(), agg, nil))
}

func TestSubscriptionRegistry_ReleaseAll_LogsDisposeFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	logger := mocks.NewMockLogger(ctrl)
	logger.EXPECT().Error(gomock.Any()).Times(1)

	link := mocks.NewMockLink(ctrl)
	link.EXPECT().Dispose().Return(errors.New("already gone"))
	agg := feedAggregate(ctrl, map[string]*mocks.MockLink{"net6.0": link})

	r := snapshot.NewSubscriptionRegistry(logger)
	require.NoError(t, r.AddSubscriptions(context.Background(), agg, nil))
	r.ReleaseAll()
}
