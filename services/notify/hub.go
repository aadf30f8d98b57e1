// Package notifysvc pushes in-app notifications to connected dashboards over websockets.
package notifysvc

import (
	"encoding/json"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/smartschool/connect/core"
	"github.com/smartschool/connect/core/session"
)

const (
	writeWait      = 10 * time.Second    // time allowed to write a message
	pongWait       = 60 * time.Second    // time allowed to read the next pong
	pingPeriod     = (pongWait * 9) / 10 // must be less than pongWait
	maxMessageSize = 512                 // clients only send control frames
	sendBufferSize = 16
)

var ErrHubClosed = errors.New("notification hub closed")

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
}

type (
	client struct {
		hub  *Hub
		conn *websocket.Conn
		role session.Role
		send chan []byte
	}

	envelope struct {
		audience session.Role
		payload  []byte
	}

	// Hub tracks the connected clients and fans notifications out to them.
	Hub struct {
		clients    map[*client]bool
		broadcast  chan envelope
		register   chan *client
		unregister chan *client
		done       chan struct{}
		closeOnce  sync.Once
		count      int64
		logger     *zap.Logger
	}
)

var _ core.NotificationService = (*Hub)(nil)

func NewHub(logger *zap.Logger) *Hub {
	return &Hub{
		clients:    make(map[*client]bool),
		broadcast:  make(chan envelope),
		register:   make(chan *client),
		unregister: make(chan *client),
		done:       make(chan struct{}),
		logger:     logger,
	}
}

// Run is the hub's main loop. It returns once Close is called.
func (h *Hub) Run() {
	defer func() {
		for c := range h.clients {
			h.drop(c)
		}
	}()

	for {
		select {
		case c := <-h.register:
			h.clients[c] = true
			atomic.AddInt64(&h.count, 1)
		case c := <-h.unregister:
			if _, ok := h.clients[c]; ok {
				h.drop(c)
			}
		case env := <-h.broadcast:
			for c := range h.clients {
				if env.audience != "" && c.role != env.audience {
					continue
				}
				select {
				case c.send <- env.payload:
				default:
					// slow client
					h.drop(c)
				}
			}
		case <-h.done:
			return
		}
	}
}

func (h *Hub) drop(c *client) {
	delete(h.clients, c)
	close(c.send)
	atomic.AddInt64(&h.count, -1)
}

// Close stops the hub & disconnects its clients.
func (h *Hub) Close() {
	h.closeOnce.Do(func() { close(h.done) })
}

// Clients returns the number of connected clients.
func (h *Hub) Clients() int {
	return int(atomic.LoadInt64(&h.count))
}

// Publish sends n to the connected clients of n.Audience (all clients when empty).
func (h *Hub) Publish(n core.Notification) error {
	if n.SentAt.IsZero() {
		n.SentAt = time.Now().UTC()
	}
	payload, err := json.Marshal(n)
	if err != nil {
		return errors.Wrap(err, "encoding notification")
	}

	select {
	case <-h.done:
		return ErrHubClosed
	default:
	}
	select {
	case h.broadcast <- envelope{audience: session.Role(n.Audience), payload: payload}:
		return nil
	case <-h.done:
		return ErrHubClosed
	}
}

// ServeWs upgrades the request to a websocket receiving the notifications of role.
func (h *Hub) ServeWs(w http.ResponseWriter, r *http.Request, role session.Role) error {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		// the upgrader already replied to the client
		h.logger.Warn("upgrading connection", zap.Error(err))
		return nil
	}

	c := &client{hub: h, conn: conn, role: role, send: make(chan []byte, sendBufferSize)}
	select {
	case h.register <- c:
	case <-h.done:
		_ = conn.Close()
		return ErrHubClosed
	}
	h.logger.Debug("client connected", zap.String("role", string(role)))

	go c.writePump()
	go c.readPump()
	return nil
}

// readPump discards client messages; it keeps the read deadline fresh and detects disconnections.
func (c *client) readPump() {
	defer func() {
		select {
		case c.hub.unregister <- c:
		case <-c.hub.done:
		}
		_ = c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				c.hub.logger.Error("unexpected close error", zap.Error(err))
			}
			return
		}
	}
}

func (c *client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = c.conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				// the hub closed the channel
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}
		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
