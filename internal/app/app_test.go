package app_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/depsnap/internal/adapters/manifest"
	"go.trai.ch/depsnap/internal/app"
	"go.trai.ch/depsnap/internal/core/ports"
	"go.trai.ch/depsnap/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

const testManifest = `project: my-app
targets:
  - net6.0
  - net7.0
activeTarget: net7.0
dependencies:
  net6.0:
    - name: Newtonsoft.Json
      version: 13.0.1
  any:
    - name: StyleCop.Analyzers
      version: 1.2.0
`

// newTestApp builds an App over a real manifest service with permissive
// logger and tracer mocks.
func newTestApp(t *testing.T, content string) *app.App {
	t.Helper()
	ctrl := gomock.NewController(t)

	logger := mocks.NewMockLogger(ctrl)
	logger.EXPECT().Info(gomock.Any()).AnyTimes()
	logger.EXPECT().Warn(gomock.Any()).AnyTimes()
	logger.EXPECT().Error(gomock.Any()).AnyTimes()

	span := mocks.NewMockSpan(ctrl)
	span.EXPECT().End().AnyTimes()
	span.EXPECT().RecordError(gomock.Any()).AnyTimes()
	span.EXPECT().SetAttribute(gomock.Any(), gomock.Any()).AnyTimes()
	tracer := mocks.NewMockTracer(ctrl)
	tracer.EXPECT().Start(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, _ string, _ ...ports.SpanOption) (context.Context, ports.Span) {
			return ctx, span
		},
	).AnyTimes()

	path := filepath.Join(t.TempDir(), manifest.FileName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	return app.New(manifest.NewService(path, logger), logger, tracer)
}

func TestApp_Show(t *testing.T) {
	a := newTestApp(t, testManifest)

	var buf bytes.Buffer
	require.NoError(t, a.Show(context.Background(), &buf))

	out := buf.String()
	assert.Contains(t, out, "project: my-app")
	assert.Contains(t, out, "fingerprint: ")
	assert.Contains(t, out, "net6.0")
	assert.Contains(t, out, "net7.0")
	assert.Contains(t, out, "package/Newtonsoft.Json 13.0.1")
	assert.Contains(t, out, "package/StyleCop.Analyzers 1.2.0")
}

func TestApp_Show_MissingManifest(t *testing.T) {
	ctrl := gomock.NewController(t)
	logger := mocks.NewMockLogger(ctrl)
	tracer := mocks.NewMockTracer(ctrl)

	svc := manifest.NewService(filepath.Join(t.TempDir(), manifest.FileName), logger)
	a := app.New(svc, logger, tracer)

	err := a.Show(context.Background(), &bytes.Buffer{})
	require.Error(t, err)
	require.ErrorContains(t, err, "failed to load project manifest")
}

func TestApp_Watch_StopsOnCancel(t *testing.T) {
	a := newTestApp(t, testManifest)

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() {
		errCh <- a.Watch(ctx)
	}()

	// Let the watcher reach its event loop before cancelling.
	time.Sleep(100 * time.Millisecond)
	cancel()

	select {
	case err := <-errCh:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("Watch did not return after context cancellation")
	}
}
