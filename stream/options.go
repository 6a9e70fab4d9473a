package stream

import "log/slog"

type Option func(h *Hub)

// WithLogger specifies the logger for the hub
func WithLogger(l *slog.Logger) Option {
	return func(h *Hub) {
		h.logger = l
	}
}

// WithSendBuffer specifies the per-client send queue size.
// A client that falls this many frames behind is dropped.
// Defaults to 32
func WithSendBuffer(n int) Option {
	return func(h *Hub) {
		if n > 0 {
			h.sendBuffer = n
		}
	}
}
