package fetch

import (
	"log/slog"
	"time"
)

type ChromeOption func(e *ChromeEngine)

// WithLogger specifies the logger for the engine
func WithLogger(l *slog.Logger) ChromeOption {
	return func(e *ChromeEngine) {
		e.logger = l
	}
}

// WithUserAgent overrides the browser user agent.
// The source pages gate headless traffic on the default UA
func WithUserAgent(ua string) ChromeOption {
	return func(e *ChromeEngine) {
		e.userAgent = ua
	}
}

// WithOpTimeout specifies the per-operation timeout for
// navigation, waits and evaluation. Defaults to 45s
func WithOpTimeout(d time.Duration) ChromeOption {
	return func(e *ChromeEngine) {
		if d > 0 {
			e.opTimeout = d
		}
	}
}
