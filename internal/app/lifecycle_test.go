package app_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/depsnap/internal/app"
)

func TestLifetime_WhileLoaded_RunsWhileLoaded(t *testing.T) {
	l := app.NewLifetime(context.Background())

	ran := false
	err := l.WhileLoaded(context.Background(), func(ctx context.Context) error {
		ran = true
		return ctx.Err()
	})
	require.NoError(t, err)
	assert.True(t, ran)
}

func TestLifetime_WhileLoaded_RejectsAfterUnload(t *testing.T) {
	l := app.NewLifetime(context.Background())
	l.Unload()

	err := l.WhileLoaded(context.Background(), func(context.Context) error {
		t.Fatal("must not run after unload")
		return nil
	})
	require.ErrorIs(t, err, context.Canceled)
}

func TestLifetime_WhileLoaded_CancelsRunningFunction(t *testing.T) {
	l := app.NewLifetime(context.Background())

	err := l.WhileLoaded(context.Background(), func(ctx context.Context) error {
		l.Unload()
		<-ctx.Done()
		return ctx.Err()
	})
	require.ErrorIs(t, err, context.Canceled)
}

func TestLifetime_UnloadContext_FollowsParent(t *testing.T) {
	parent, cancel := context.WithCancel(context.Background())
	l := app.NewLifetime(parent)

	require.NoError(t, l.UnloadContext().Err())
	cancel()
	require.ErrorIs(t, l.UnloadContext().Err(), context.Canceled)

	// Unload stays idempotent after the parent is gone.
	l.Unload()
	l.Unload()
}
