package manifest_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/depsnap/internal/adapters/manifest"
	"go.trai.ch/depsnap/internal/core/domain"
	"go.trai.ch/depsnap/internal/core/ports"
	"go.trai.ch/depsnap/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func newTestService(t *testing.T, content string) *manifest.Service {
	t.Helper()
	ctrl := gomock.NewController(t)
	logger := mocks.NewMockLogger(ctrl)
	logger.EXPECT().Info(gomock.Any()).AnyTimes()
	logger.EXPECT().Warn(gomock.Any()).AnyTimes()
	logger.EXPECT().Error(gomock.Any()).AnyTimes()

	path := writeManifest(t, t.TempDir(), content)
	return manifest.NewService(path, logger)
}

func TestService_CreateProjectContext(t *testing.T) {
	svc := newTestService(t, sampleManifest)

	agg, err := svc.CreateProjectContext(context.Background())
	require.NoError(t, err)

	assert.Equal(t, domain.NewTargetFramework("net7.0"), agg.ActiveTarget())
	assert.True(t, agg.IsCrossTargeting())
	require.Equal(t, []domain.TargetFramework{
		domain.NewTargetFramework("net6.0"),
		domain.NewTargetFramework("net7.0"),
	}, agg.Targets())

	project, ok := agg.ConfiguredProject(domain.NewTargetFramework("net6.0"))
	require.True(t, ok)
	assert.Equal(t, domain.NewTargetFramework("net6.0"), project.TargetFramework())
	assert.NotNil(t, project.Feed())
}

func TestService_ConfigurationReader(t *testing.T) {
	svc := newTestService(t, sampleManifest)

	names, err := svc.DeclaredTargetNames(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"net6.0", "net7.0"}, names)

	configs, err := svc.KnownConfigurations(context.Background())
	require.NoError(t, err)
	require.Len(t, configs, 2)
	for _, cfg := range configs {
		assert.True(t, cfg.IsCrossTargeting)
	}
}

func TestService_ResolveTarget(t *testing.T) {
	svc := newTestService(t, sampleManifest)

	tf, ok := svc.ResolveTarget("net6.0")
	require.True(t, ok)
	assert.Equal(t, domain.NewTargetFramework("net6.0"), tf)

	tf, ok = svc.ResolveTarget("any")
	require.True(t, ok)
	assert.True(t, tf.IsAny())

	_, ok = svc.ResolveTarget("net9.0")
	assert.False(t, ok)
}

func TestService_Project(t *testing.T) {
	svc := newTestService(t, sampleManifest)

	project, err := svc.Project()
	require.NoError(t, err)
	assert.Equal(t, "my-app", project)
}

func TestService_Subscriber_PushesDeclaredDependencies(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := newTestService(t, sampleManifest)

	agg, err := svc.CreateProjectContext(context.Background())
	require.NoError(t, err)

	var submitted map[domain.TargetFramework]domain.ChangeSet
	sink := mocks.NewMockSubscriberSink(ctrl)
	sink.EXPECT().SubmitChanges(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, catalog *domain.Catalog, changes map[domain.TargetFramework]domain.ChangeSet) error {
			require.NotNil(t, catalog)
			submitted = changes
			return nil
		},
	).Times(1)

	svc.Initialize(sink)
	svc.AddSubscriptions(agg)

	require.Len(t, submitted, 2)
	net6 := submitted[domain.NewTargetFramework("net6.0")]
	require.Len(t, net6.Changes, 1)
	assert.Equal(t, domain.ChangeAdd, net6.Changes[0].Kind)
	assert.Equal(t, "Newtonsoft.Json", net6.Changes[0].Dependency.ItemSpec)

	anyCS := submitted[domain.AnyTarget()]
	require.Len(t, anyCS.Changes, 1)
	assert.Equal(t, "StyleCop.Analyzers", anyCS.Changes[0].Dependency.ItemSpec)

	// A second pass over the same context pushes nothing: the declared
	// sets did not change.
	svc.AddSubscriptions(agg)
}

func TestService_Subscriber_ReleaseRepushesFullSets(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := newTestService(t, sampleManifest)

	agg, err := svc.CreateProjectContext(context.Background())
	require.NoError(t, err)

	sink := mocks.NewMockSubscriberSink(ctrl)
	// Once for the initial attach, once after the release/rebuild cycle.
	sink.EXPECT().SubmitChanges(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).Times(2)

	svc.Initialize(sink)
	svc.AddSubscriptions(agg)

	svc.ReleaseSubscriptions()
	svc.AddSubscriptions(agg)
}

func TestService_Subscriber_NoSinkIsSafe(t *testing.T) {
	svc := newTestService(t, sampleManifest)

	agg, err := svc.CreateProjectContext(context.Background())
	require.NoError(t, err)

	// No Initialize call; attaching must not panic.
	svc.AddSubscriptions(agg)
}

func TestService_FeedSubscriptionLinkDispose(t *testing.T) {
	svc := newTestService(t, sampleManifest)

	agg, err := svc.CreateProjectContext(context.Background())
	require.NoError(t, err)

	project, ok := agg.ConfiguredProject(domain.NewTargetFramework("net6.0"))
	require.True(t, ok)

	link, err := project.Feed().Subscribe(context.Background(), []string{ports.RuleProjectConfiguration},
		func(context.Context, ports.PropertyChangeBatch) error { return nil })
	require.NoError(t, err)

	require.NoError(t, link.Dispose())
	// Idempotent.
	require.NoError(t, link.Dispose())
}
