package manifest

import (
	"context"
	"path/filepath"
	"slices"

	"github.com/fsnotify/fsnotify"
	"go.trai.ch/depsnap/internal/core/domain"
	"go.trai.ch/depsnap/internal/core/ports"
	"go.trai.ch/zerr"
)

// Watch runs the manifest file pump until ctx is cancelled. Every edit of
// the manifest reloads it, delivers property-change batches for targeting
// changes and submits dependency diffs through the subscriber sink.
func (s *Service) Watch(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return zerr.Wrap(err, domain.ErrWatcherStartFailed.Error())
	}
	defer func() {
		_ = watcher.Close()
	}()

	if err := watcher.Add(filepath.Dir(s.path)); err != nil {
		return zerr.Wrap(err, domain.ErrWatcherStartFailed.Error())
	}

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != s.path {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			s.handleManifestEdit(ctx)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			s.logger.Error(zerr.Wrap(err, "manifest watcher error"))
		}
	}
}

// handleManifestEdit reloads the manifest and fans the observed differences
// out to feed subscriptions and the subscriber sink.
func (s *Service) handleManifestEdit(ctx context.Context) {
	s.mu.Lock()
	old := s.current
	s.mu.Unlock()

	updated, err := s.reload()
	if err != nil {
		// Editors often produce transient truncated writes; keep the
		// previous manifest until a parseable one lands.
		s.logger.Error(zerr.Wrap(err, "failed to reload manifest"))
		return
	}

	if old == nil {
		s.pushDependencies(ctx, updated, declaredTargets(updated))
		return
	}

	changedProps := diffConfiguration(old, updated)
	if slices.Contains(changedProps, ports.PropertyProjectPath) && s.onRename != nil {
		s.onRename(updated.Project)
	}
	if len(changedProps) > 0 {
		s.deliverBatch(ctx, ports.RuleProjectConfiguration, changedProps)
	}

	s.pushDependencies(ctx, updated, declaredTargets(updated))
}

// deliverBatch delivers one versioned batch to every live subscription
// whose rule filter matches.
func (s *Service) deliverBatch(ctx context.Context, rule string, props []string) {
	version := s.version.Add(1)

	s.subsMu.Lock()
	subs := make([]*subscription, 0, len(s.subs))
	for sub := range s.subs {
		if sub.matches(rule) {
			subs = append(subs, sub)
		}
	}
	s.subsMu.Unlock()

	for _, sub := range subs {
		if sub.disposed.Load() {
			continue
		}
		batch := ports.PropertyChangeBatch{
			Version:           version,
			Rule:              rule,
			ChangedProperties: props,
			Target:            sub.tf,
		}
		if err := sub.handler(ctx, batch); err != nil {
			s.logger.Error(zerr.Wrap(err, "change-feed handler failed"))
		}
	}
}

// diffConfiguration returns the configuration property names that differ
// between two manifests.
func diffConfiguration(old, updated *Manifest) []string {
	var props []string
	if !slices.Equal(old.Targets, updated.Targets) {
		props = append(props, ports.PropertyTargetFrameworks)
	}
	if old.ActiveTarget != updated.ActiveTarget {
		props = append(props, ports.PropertyActiveTarget)
	}
	if old.Project != updated.Project {
		props = append(props, ports.PropertyProjectPath)
	}
	return props
}

func declaredTargets(m *Manifest) []domain.TargetFramework {
	targets := make([]domain.TargetFramework, 0, len(m.Targets))
	for _, moniker := range m.Targets {
		targets = append(targets, domain.NewTargetFramework(moniker))
	}
	return targets
}
