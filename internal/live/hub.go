package live

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gorilla/websocket"
)

const (
	writeWait  = 5 * time.Second
	sendBuffer = 8
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

type envelope struct {
	Event string `json:"event"`
	Data  any    `json:"data"`
}

// client owns one connection. Only its write pump writes to conn.
type client struct {
	conn   *websocket.Conn
	remote string
	send   chan []byte
	once   sync.Once
}

func newClient(conn *websocket.Conn, remote string) *client {
	return &client{conn: conn, remote: remote, send: make(chan []byte, sendBuffer)}
}

func (c *client) stop() {
	c.once.Do(func() { close(c.send) })
}

// Hub fans broadcast messages out to every connected websocket client and
// replays the most recent message to clients as they connect.
type Hub struct {
	logger    *log.Logger
	authorize func(*http.Request) bool

	mu      sync.Mutex
	clients map[*client]struct{}
	latest  []byte
}

// NewHub returns a hub. authorize may be nil to accept every upgrade.
func NewHub(logger *log.Logger, authorize func(*http.Request) bool) *Hub {
	return &Hub{
		logger:    logger,
		authorize: authorize,
		clients:   make(map[*client]struct{}),
	}
}

// Broadcast queues {event, data} for every client without blocking on the
// network. A client whose queue is full is disconnected.
func (h *Hub) Broadcast(event string, payload any) error {
	msg, err := json.Marshal(envelope{Event: event, Data: payload})
	if err != nil {
		return err
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	h.latest = msg
	for c := range h.clients {
		select {
		case c.send <- msg:
		default:
			h.logger.Warn("dropping slow websocket client", "remote", c.remote)
			delete(h.clients, c)
			c.stop()
		}
	}
	return nil
}

func (h *Hub) Clients() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

func (h *Hub) register(c *client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.latest != nil {
		c.send <- h.latest
	}
	h.clients[c] = struct{}{}
}

func (h *Hub) unregister(c *client) {
	h.mu.Lock()
	delete(h.clients, c)
	h.mu.Unlock()
	c.stop()
}

// writePump drains c.send until it is closed, then sends a close frame.
func (h *Hub) writePump(c *client) {
	defer c.conn.Close()

	for msg := range c.send {
		_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
			h.logger.Warn("websocket write failed", "remote", c.remote, "err", err)
			return
		}
	}

	_ = c.conn.WriteControl(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseGoingAway, "server shutting down"),
		time.Now().Add(writeWait))
}

func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if h.authorize != nil && !h.authorize(r) {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Error("websocket upgrade failed", "err", err)
		return
	}

	c := newClient(conn, r.RemoteAddr)
	h.register(c)
	defer h.unregister(c)

	go h.writePump(c)

	h.logger.Debug("websocket client connected", "remote", c.remote)

	// Clients only listen; reading keeps control frames flowing and detects close.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			h.logger.Debug("websocket client disconnected", "remote", c.remote, "err", err)
			return
		}
	}
}

// Close disconnects every client.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for c := range h.clients {
		delete(h.clients, c)
		c.stop()
	}
}
