package api

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/coder/websocket"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/worldmind/worldmind/pkg/events"
)

// wsWriteTimeout bounds each WebSocket send so a stalled client cannot block
// its pump goroutine indefinitely.
const wsWriteTimeout = 10 * time.Second

// ConnectionManager bridges WebSocket connections onto the event bus. Each
// subscribe opens a bus subscription drained by a dedicated pump goroutine;
// writes to a socket are serialized by a per-connection lock.
type ConnectionManager struct {
	bus *events.Bus

	mu          sync.RWMutex
	connections map[string]*wsConnection
}

// wsConnection is a single WebSocket client.
//
// subs is accessed without a lock: subscribe, unsubscribe, and the deferred
// cleanup all run on the one goroutine that owns the read loop. Pump
// goroutines never touch it.
type wsConnection struct {
	id   string
	sock *websocket.Conn

	writeMu sync.Mutex
	subs    map[string]*events.Subscription
	pumps   sync.WaitGroup
}

// NewConnectionManager creates a connection manager over the given bus.
func NewConnectionManager(bus *events.Bus) *ConnectionManager {
	return &ConnectionManager{
		bus:         bus,
		connections: make(map[string]*wsConnection),
	}
}

// HandleConnection manages the lifecycle of a single WebSocket connection.
// Called by the HTTP handler after upgrade; blocks until the connection
// closes.
func (m *ConnectionManager) HandleConnection(ctx context.Context, sock *websocket.Conn) {
	c := &wsConnection{
		id:   uuid.New().String(),
		sock: sock,
		subs: make(map[string]*events.Subscription),
	}

	m.mu.Lock()
	m.connections[c.id] = c
	m.mu.Unlock()

	defer func() {
		for channel, sub := range c.subs {
			sub.Close()
			delete(c.subs, channel)
		}
		c.pumps.Wait()

		m.mu.Lock()
		delete(m.connections, c.id)
		m.mu.Unlock()
		slog.Debug("WebSocket connection closed", "connection_id", c.id)
	}()

	m.sendJSON(ctx, c, map[string]string{
		"type":          "connection.established",
		"connection_id": c.id,
	})

	for {
		_, data, err := sock.Read(ctx)
		if err != nil {
			return
		}

		var msg events.ClientMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			m.sendJSON(ctx, c, map[string]string{
				"type":    "error",
				"message": "invalid message format",
			})
			continue
		}
		m.handleClientMessage(ctx, c, msg)
	}
}

func (m *ConnectionManager) handleClientMessage(ctx context.Context, c *wsConnection, msg events.ClientMessage) {
	switch msg.Action {
	case "subscribe":
		if msg.Channel == "" {
			m.sendJSON(ctx, c, map[string]string{"type": "error", "message": "channel is required for subscribe"})
			return
		}
		if _, exists := c.subs[msg.Channel]; exists {
			m.sendJSON(ctx, c, map[string]string{"type": "subscription.confirmed", "channel": msg.Channel})
			return
		}

		sub := m.bus.Subscribe(msg.Channel)
		c.subs[msg.Channel] = sub
		c.pumps.Add(1)
		go m.pump(ctx, c, sub)

		m.sendJSON(ctx, c, map[string]string{
			"type":    "subscription.confirmed",
			"channel": msg.Channel,
		})

	case "unsubscribe":
		if msg.Channel == "" {
			m.sendJSON(ctx, c, map[string]string{"type": "error", "message": "channel is required for unsubscribe"})
			return
		}
		if sub, exists := c.subs[msg.Channel]; exists {
			sub.Close()
			delete(c.subs, msg.Channel)
		}

	case "ping":
		m.sendJSON(ctx, c, map[string]string{"type": "pong"})

	default:
		m.sendJSON(ctx, c, map[string]string{"type": "error", "message": "unknown action " + msg.Action})
	}
}

// pump forwards bus events to the socket until the subscription closes,
// either by unsubscribe, connection teardown, or the mission finishing.
func (m *ConnectionManager) pump(ctx context.Context, c *wsConnection, sub *events.Subscription) {
	defer c.pumps.Done()
	for data := range sub.C {
		if err := m.write(ctx, c, data); err != nil {
			return
		}
	}
	// Topic cleared at mission end. The client's subs entry is left in
	// place; it is reaped with the connection.
	m.sendJSON(ctx, c, map[string]string{
		"type":    "subscription.closed",
		"channel": sub.Channel,
	})
}

func (m *ConnectionManager) write(ctx context.Context, c *wsConnection, data []byte) error {
	writeCtx, cancel := context.WithTimeout(ctx, wsWriteTimeout)
	defer cancel()

	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	return c.sock.Write(writeCtx, websocket.MessageText, data)
}

func (m *ConnectionManager) sendJSON(ctx context.Context, c *wsConnection, payload any) {
	data, err := json.Marshal(payload)
	if err != nil {
		slog.Error("Failed to marshal WebSocket message", "error", err)
		return
	}
	if err := m.write(ctx, c, data); err != nil {
		slog.Debug("WebSocket write failed", "connection_id", c.id, "error", err)
	}
}

// ConnectionCount returns the number of open WebSocket connections.
func (m *ConnectionManager) ConnectionCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.connections)
}

// handleWebSocket upgrades the HTTP connection and delegates to the
// connection manager.
func (s *Server) handleWebSocket(c *gin.Context) {
	sock, err := websocket.Accept(c.Writer, c.Request, &websocket.AcceptOptions{
		// Origin validation is left to the fronting proxy.
		InsecureSkipVerify: true,
	})
	if err != nil {
		slog.Warn("WebSocket upgrade failed", "error", err)
		return
	}

	s.connManager.HandleConnection(c.Request.Context(), sock)
	sock.Close(websocket.StatusNormalClosure, "")
}
