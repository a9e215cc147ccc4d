package domain

import "go.trai.ch/zerr"

var (
	// ErrDisposed is returned when an operation is attempted after the
	// snapshot host began unloading.
	ErrDisposed = zerr.New("snapshot host is disposed")

	// ErrNotInitialized is returned when a query requires the host to
	// have completed its first load.
	ErrNotInitialized = zerr.New("snapshot host is not initialized")

	// ErrUnknownTarget is returned when a target framework is not part of
	// the current aggregate context.
	ErrUnknownTarget = zerr.New("target framework not found in current context")

	// ErrNoTargetsDeclared is returned when the project manifest declares
	// no target frameworks.
	ErrNoTargetsDeclared = zerr.New("project declares no target frameworks")

	// ErrContextCreateFailed is returned when the external context
	// provider fails to produce an aggregate context.
	ErrContextCreateFailed = zerr.New("failed to create aggregate project context")

	// ErrContextManagerStopped is returned when a context request arrives
	// after the coordination loop has shut down.
	ErrContextManagerStopped = zerr.New("context manager is stopped")

	// ErrFilterFailed is returned when a snapshot filter fails while a
	// change batch is being merged.
	ErrFilterFailed = zerr.New("snapshot filter failed")

	// ErrSubscribeFailed is returned when a change-feed subscription
	// cannot be opened.
	ErrSubscribeFailed = zerr.New("failed to open change-feed subscription")

	// ErrManifestNotFound is returned when no project manifest exists in
	// the working directory.
	ErrManifestNotFound = zerr.New("could not find depsnap.yaml")

	// ErrManifestReadFailed is returned when the manifest cannot be read.
	ErrManifestReadFailed = zerr.New("failed to read project manifest")

	// ErrManifestParseFailed is returned when the manifest cannot be
	// parsed.
	ErrManifestParseFailed = zerr.New("failed to parse project manifest")

	// ErrWatcherStartFailed is returned when the manifest watcher cannot
	// be started.
	ErrWatcherStartFailed = zerr.New("failed to start manifest watcher")
)
