package pen

import (
	"io"
	"log/slog"
	"time"
)

var noopLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

// sourceOptions are shared across both page sources
type sourceOptions struct {
	logger   *slog.Logger
	attempts int
	backoff  time.Duration
}

func defaultSourceOptions() sourceOptions {
	return sourceOptions{
		logger:   noopLogger,
		attempts: defaultRetryAttempts,
		backoff:  defaultRetryBackoff,
	}
}

type SourceOption func(o *sourceOptions)

// WithSourceLogger specifies the logger for the source
func WithSourceLogger(l *slog.Logger) SourceOption {
	return func(o *sourceOptions) {
		o.logger = l
	}
}

// WithRetryAttempts specifies how many times navigation and the
// structural wait are attempted. Defaults to 3
func WithRetryAttempts(n int) SourceOption {
	return func(o *sourceOptions) {
		if n > 0 {
			o.attempts = n
		}
	}
}

// WithRetryBackoff specifies the base backoff between retries.
// Defaults to 2s
func WithRetryBackoff(d time.Duration) SourceOption {
	return func(o *sourceOptions) {
		if d > 0 {
			o.backoff = d
		}
	}
}
