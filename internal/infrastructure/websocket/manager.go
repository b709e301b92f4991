package websocket

import (
	"context"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"skillswap/pkg/logger"
)

// FloodLimiter gates inbound client frames per user.
type FloodLimiter interface {
	Allow(userID, action string) (bool, time.Duration)
}

// Client represents a WebSocket connection client
type Client struct {
	UserID string
	Conn   *websocket.Conn
	Send   chan []byte
}

// Manager manages all active WebSocket connections and room membership
type Manager struct {
	clients    map[string]*Client
	rooms      map[string]map[string]bool // room -> set of user ids
	Register   chan *Client
	Unregister chan *Client
	broadcast  chan []byte
	limiter    FloodLimiter
	mutex      sync.RWMutex
}

// SetFloodLimiter installs the limiter consulted for every inbound frame.
func (m *Manager) SetFloodLimiter(limiter FloodLimiter) {
	m.limiter = limiter
}

// NewManager creates a new WebSocket connection manager
func NewManager() *Manager {
	return &Manager{
		clients:    make(map[string]*Client),
		rooms:      make(map[string]map[string]bool),
		Register:   make(chan *Client),
		Unregister: make(chan *Client),
		broadcast:  make(chan []byte),
	}
}

// Start runs the manager's main loop in a goroutine
func (m *Manager) Start(ctx context.Context) {
	go func() {
		for {
			select {
			case client := <-m.Register:
				m.mutex.Lock()
				m.clients[client.UserID] = client
				m.mutex.Unlock()
				logger.Info("WebSocket client registered: %s", client.UserID)

			case client := <-m.Unregister:
				m.mutex.Lock()
				if _, ok := m.clients[client.UserID]; ok {
					delete(m.clients, client.UserID)
					for _, members := range m.rooms {
						delete(members, client.UserID)
					}
					close(client.Send)
				}
				m.mutex.Unlock()
				logger.Info("WebSocket client unregistered: %s", client.UserID)

			case message := <-m.broadcast:
				m.mutex.RLock()
				for _, client := range m.clients {
					select {
					case client.Send <- message:
					default:
					}
				}
				m.mutex.RUnlock()

			case <-ctx.Done():
				return
			}
		}
	}()
}

// JoinRoom adds a user to a room
func (m *Manager) JoinRoom(room, userID string) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	if m.rooms[room] == nil {
		m.rooms[room] = make(map[string]bool)
	}
	m.rooms[room][userID] = true
}

// LeaveRoom removes a user from a room
func (m *Manager) LeaveRoom(room, userID string) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	if members, ok := m.rooms[room]; ok {
		delete(members, userID)
		if len(members) == 0 {
			delete(m.rooms, room)
		}
	}
}

// SendToUser sends a message to a specific user
func (m *Manager) SendToUser(userID string, message []byte) {
	m.mutex.RLock()
	client, ok := m.clients[userID]
	m.mutex.RUnlock()

	if ok {
		select {
		case client.Send <- message:
		default:
		}
	}
}

// IsOnline reports whether the user has an active connection
func (m *Manager) IsOnline(userID string) bool {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	_, ok := m.clients[userID]
	return ok
}

// BroadcastToRoom sends a message to every connected member of a room,
// optionally skipping one user (usually the sender).
func (m *Manager) BroadcastToRoom(room string, message []byte, excludeUserID string) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	members, ok := m.rooms[room]
	if !ok {
		return
	}

	for userID := range members {
		if userID == excludeUserID {
			continue
		}
		if client, ok := m.clients[userID]; ok {
			select {
			case client.Send <- message:
			default:
			}
		}
	}
}

// ReadPump reads messages from the WebSocket connection
func (c *Client) ReadPump(m *Manager, handle func(client *Client, message []byte)) {
	defer func() {
		m.Unregister <- c
		c.Conn.Close()
	}()

	for {
		_, message, err := c.Conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				logger.Error("WebSocket read error: %v", err)
			}
			break
		}

		handle(c, message)
	}
}

// WritePump sends messages to the WebSocket connection
func (c *Client) WritePump() {
	defer c.Conn.Close()

	for {
		message, ok := <-c.Send
		if !ok {
			c.Conn.WriteMessage(websocket.CloseMessage, []byte{})
			return
		}

		if err := c.Conn.WriteMessage(websocket.TextMessage, message); err != nil {
			logger.Error("WebSocket write error: %v", err)
			return
		}
	}
}
