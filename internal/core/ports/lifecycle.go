package ports

import "context"

//go:generate mockgen -source=lifecycle.go -destination=mocks/mock_lifecycle.go -package=mocks

// Lifecycle supplies the project's unload cancellation signal and a scoped
// "run while the project is loaded" execution primitive.
type Lifecycle interface {
	// UnloadContext returns a context that is cancelled when the project
	// begins unloading. Deferred notifications derive from it.
	UnloadContext() context.Context

	// WhileLoaded runs fn unless the project has begun unloading. A
	// cancelled project surfaces as context.Canceled, never as a panic or
	// a run on torn-down state.
	WhileLoaded(ctx context.Context, fn func(context.Context) error) error
}
