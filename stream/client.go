package stream

import (
	"log/slog"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/xid"
)

const writeWait = time.Second * 10

// client is a single connected stream subscriber
type client struct {
	id   xid.ID
	conn *websocket.Conn
	send chan []byte
}

// writeLoop pushes queued frames to the connection until the send
// queue closes or a write fails
func (c *client) writeLoop(logger *slog.Logger) {
	defer func() {
		_ = c.conn.Close()
	}()

	for msg := range c.send {
		_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))

		if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
			logger.Debug(
				"stream write failed",
				"id", c.id.String(),
				"err", err,
			)

			return
		}
	}

	// The hub closed the queue, say goodbye
	_ = c.conn.WriteControl(
		websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
		time.Now().Add(writeWait),
	)
}

// readLoop discards inbound frames (the stream is one-way).
// It exists to detect client disconnects
func (c *client) readLoop(h *Hub) {
	defer h.unregister(c)

	c.conn.SetReadLimit(512)

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			return
		}
	}
}
