package app

import (
	"context"

	"go.trai.ch/depsnap/internal/core/ports"
)

// Lifetime implements ports.Lifecycle for one project load. Unload cancels
// the context handed to every deferred notification.
type Lifetime struct {
	ctx    context.Context
	cancel context.CancelFunc
}

var _ ports.Lifecycle = (*Lifetime)(nil)

// NewLifetime creates a lifetime scoped to the given parent context.
func NewLifetime(parent context.Context) *Lifetime {
	ctx, cancel := context.WithCancel(parent)
	return &Lifetime{ctx: ctx, cancel: cancel}
}

// UnloadContext returns the context cancelled when the project unloads.
func (l *Lifetime) UnloadContext() context.Context {
	return l.ctx
}

// WhileLoaded runs fn unless the project has begun unloading. The function
// observes cancellation if unload happens while it runs.
func (l *Lifetime) WhileLoaded(ctx context.Context, fn func(context.Context) error) error {
	if err := l.ctx.Err(); err != nil {
		return err
	}

	scoped, cancel := context.WithCancel(ctx)
	defer cancel()
	stop := context.AfterFunc(l.ctx, cancel)
	defer stop()

	return fn(scoped)
}

// Unload cancels the lifetime. Idempotent.
func (l *Lifetime) Unload() {
	l.cancel()
}
