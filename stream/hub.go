// Package stream fans completed cycle samples out to connected
// dashboard clients over WebSocket. A client receives the full
// current-day history once on connect ("boot"), then one frame per
// completed cycle ("tick")
package stream

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
	"github.com/rs/xid"

	"github.com/sig-0/penrates/rates"
)

// Stream event kinds
const (
	EventBoot = "boot"
	EventTick = "tick"
)

const defaultSendBuffer = 32

var noopLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

// Event is a single frame on the live stream
type Event struct {
	Event string `json:"event"`
	Data  any    `json:"data"`
}

// Store is the sample history the hub replays to new clients and
// commits completed cycles into
type Store interface {
	Append(*rates.Sample)
	Snapshot() []*rates.Sample
}

// Hub owns the set of connected stream clients.
// Commits and subscriptions share one lock, so a connecting client
// sees every sample exactly once: either in its boot snapshot or as
// a later tick, never both
type Hub struct {
	logger *slog.Logger
	store  Store

	upgrader   websocket.Upgrader
	sendBuffer int

	clients map[xid.ID]*client
	mu      sync.Mutex
}

// NewHub creates a new stream hub over the given sample store
func NewHub(store Store, opts ...Option) *Hub {
	h := &Hub{
		logger:     noopLogger,
		store:      store,
		sendBuffer: defaultSendBuffer,
		clients:    make(map[xid.ID]*client),
	}

	// Apply the options
	for _, opt := range opts {
		opt(h)
	}

	h.upgrader = websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin: func(_ *http.Request) bool {
			return true // origin policy is enforced by the CORS layer
		},
	}

	return h
}

// Append commits the sample to the history and broadcasts it as a
// tick to every connected client. Broadcast is fire-and-forget: a
// client whose send queue is full is dropped instead of slowing the
// cycle
func (h *Hub) Append(sample *rates.Sample) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.store.Append(sample)

	msg, err := json.Marshal(Event{
		Event: EventTick,
		Data:  sample,
	})
	if err != nil {
		h.logger.Error(
			"unable to marshal tick event",
			"err", err,
		)

		return
	}

	for id, c := range h.clients {
		select {
		case c.send <- msg:
		default:
			// Slow consumer
			h.logger.Warn(
				"dropping slow stream client",
				"id", id.String(),
			)

			h.dropLocked(c)
		}
	}
}

// Handler returns the WebSocket endpoint handler
func (h *Hub) Handler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		conn, err := h.upgrader.Upgrade(w, r, nil)
		if err != nil {
			h.logger.Debug(
				"unable to upgrade stream connection",
				"err", err,
			)

			return
		}

		c := &client{
			id:   xid.New(),
			conn: conn,
			send: make(chan []byte, h.sendBuffer),
		}

		if err := h.register(c); err != nil {
			h.logger.Error(
				"unable to register stream client",
				"err", err,
			)

			_ = conn.Close()

			return
		}

		go c.writeLoop(h.logger)
		go c.readLoop(h)
	}
}

// ClientCount returns the number of connected stream clients
func (h *Hub) ClientCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()

	return len(h.clients)
}

// register queues the boot snapshot and adds the client to the
// broadcast set
func (h *Hub) register(c *client) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	boot, err := json.Marshal(Event{
		Event: EventBoot,
		Data:  h.store.Snapshot(),
	})
	if err != nil {
		return fmt.Errorf("unable to marshal boot event: %w", err)
	}

	// The send queue is empty at this point, so the boot event is
	// always the first frame out
	c.send <- boot

	h.clients[c.id] = c

	h.logger.Info(
		"stream client connected",
		"id", c.id.String(),
	)

	return nil
}

// unregister removes the client from the broadcast set
func (h *Hub) unregister(c *client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.dropLocked(c)
}

// dropLocked removes the client and closes its send queue.
// Callers must hold h.mu
func (h *Hub) dropLocked(c *client) {
	if _, ok := h.clients[c.id]; !ok {
		return
	}

	delete(h.clients, c.id)
	close(c.send)
}
