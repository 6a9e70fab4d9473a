// Package fetch abstracts the "fetch a fully-rendered page" capability
// the extractors depend on. The production engine drives a shared
// headless Chrome instance; tests substitute the mock package
package fetch

import "context"

// Session is a single rendered-page browsing session (one tab).
// Sessions are not safe for concurrent use; each collection cycle
// acquires and releases its own
type Session interface {
	// Navigate loads the given URL and waits for the document body
	Navigate(ctx context.Context, url string) error

	// WaitVisible blocks until the selector matches a visible element,
	// bounded by the engine's per-operation timeout
	WaitVisible(ctx context.Context, selector string) error

	// HTML returns the rendered document markup
	HTML(ctx context.Context) (string, error)

	// Close releases the session's resources
	Close() error
}

// Engine provisions browsing sessions over a shared browser runtime
type Engine interface {
	// Acquire opens a new browsing session
	Acquire(ctx context.Context) (Session, error)
}
