// Package app implements the application layer for depsnap.
package app

import (
	"context"
	"fmt"
	"io"

	"go.trai.ch/depsnap/internal/adapters/manifest"
	"go.trai.ch/depsnap/internal/core/domain"
	"go.trai.ch/depsnap/internal/core/ports"
	"go.trai.ch/depsnap/internal/engine/snapshot"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

const (
	declaredItemFilterOrder  = 0
	knownProviderFilterOrder = 100
)

// App represents the main application logic.
type App struct {
	service *manifest.Service
	logger  ports.Logger
	tracer  ports.Tracer
}

// New creates a new App instance.
func New(service *manifest.Service, log ports.Logger, tracer ports.Tracer) *App {
	return &App{
		service: service,
		logger:  log,
		tracer:  tracer,
	}
}

// Watch loads the project snapshot and keeps it synchronized with manifest
// edits until the context is cancelled.
func (a *App) Watch(ctx context.Context) error {
	host, lifetime, err := a.buildHost(ctx)
	if err != nil {
		return err
	}
	defer host.Dispose()
	defer lifetime.Unload()

	host.AttachListener(&logListener{logger: a.logger})

	snap := host.CurrentSnapshot()
	a.logger.Info(fmt.Sprintf(
		"watching %s (%d targets, %d dependencies)",
		snap.ProjectPath(), len(snap.Targets()), snap.DependencyCount(),
	))

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return a.service.Watch(gctx)
	})
	g.Go(func() error {
		<-gctx.Done()
		lifetime.Unload()
		host.Unload()
		return nil
	})
	return g.Wait()
}

// Show loads the project snapshot once and writes a summary to w.
func (a *App) Show(ctx context.Context, w io.Writer) error {
	host, lifetime, err := a.buildHost(ctx)
	if err != nil {
		return err
	}
	defer host.Dispose()
	defer lifetime.Unload()

	snap := host.CurrentSnapshot()
	fmt.Fprintf(w, "project: %s\n", snap.ProjectPath())
	fmt.Fprintf(w, "fingerprint: %016x\n", snap.Fingerprint())
	fmt.Fprintf(w, "targets:\n")
	for _, tf := range snap.Targets() {
		fmt.Fprintf(w, "  %-12s %d dependencies\n", tf.Moniker(), len(snap.Dependencies(tf)))
		for _, dep := range snap.Dependencies(tf) {
			fmt.Fprintf(w, "    %s %s\n", dep.ID(), dep.Version)
		}
	}
	return nil
}

// buildHost assembles the snapshot host around the manifest service. The
// initial dependency sets are merged synchronously during Load, so callers
// see a populated snapshot as soon as this returns.
func (a *App) buildHost(ctx context.Context) (*snapshot.Host, *Lifetime, error) {
	project, err := a.service.Project()
	if err != nil {
		return nil, nil, zerr.Wrap(err, "failed to load project manifest")
	}

	lifetime := NewLifetime(ctx)
	contexts := snapshot.NewContextManager(
		a.service,
		a.service,
		a.service,
		a.service,
		a.tracer,
		a.logger,
	)

	host := snapshot.NewHost(snapshot.HostConfig{
		ProjectPath: project,
		Contexts:    contexts,
		Lifecycle:   lifetime,
		Resolver:    a.service,
		Tracer:      a.tracer,
		Logger:      a.logger,
		Filters: []ports.SnapshotFilter{
			snapshot.NewDeclaredItemFilter(declaredItemFilterOrder),
			snapshot.NewKnownProviderFilter(knownProviderFilterOrder),
		},
		Subscribers: []ports.Subscriber{a.service},
	})
	a.service.SetOnRename(host.HandleRename)

	if err := host.Load(ctx); err != nil {
		lifetime.Unload()
		host.Dispose()
		return nil, nil, zerr.Wrap(err, "failed to load snapshot host")
	}
	return host, lifetime, nil
}

// logListener reports snapshot activity through the application logger.
type logListener struct {
	logger ports.Logger
}

var _ snapshot.Listener = (*logListener)(nil)

func (l *logListener) OnSnapshotChanged(_ context.Context, snap *domain.Snapshot) {
	l.logger.Info(fmt.Sprintf(
		"snapshot updated (%d targets, %d dependencies, fingerprint %016x)",
		len(snap.Targets()), snap.DependencyCount(), snap.Fingerprint(),
	))
}

func (l *logListener) OnSnapshotRenamed(oldPath, newPath string) {
	l.logger.Info(fmt.Sprintf("project renamed %s -> %s", oldPath, newPath))
}

func (l *logListener) OnUnloading() {
	l.logger.Info("project unloading")
}
