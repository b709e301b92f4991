package websocket

import (
	"encoding/json"

	"skillswap/pkg/logger"
)

const (
	MessageTypeJoinRoom  = "join_room"
	MessageTypeLeaveRoom = "leave_room"
	MessageTypePing      = "ping"
	MessageTypePong      = "pong"
	MessageTypeError     = "error"

	// Server-pushed event types
	EventBidUpdate        = "bid_update"
	EventProjectUpdate    = "project_update"
	EventNewMessage       = "new_message"
	EventNotification     = "notification"
	EventDashboardRefresh = "dashboard_refresh"
)

type WSMessage struct {
	Type string      `json:"type"`
	Data interface{} `json:"data,omitempty"`
}

type RoomData struct {
	Room string `json:"room"`
}

// HandleMessage dispatches an inbound client frame.
func (m *Manager) HandleMessage(client *Client, raw []byte) {
	if m.limiter != nil {
		if allowed, retryAfter := m.limiter.Allow(client.UserID, "ws_message"); !allowed {
			logger.Warn("WebSocket: dropping frame from %s, over budget for %s", client.UserID, retryAfter)
			m.sendErrorToClient(client, "Too many messages, slow down")
			return
		}
	}

	var msg WSMessage
	if err := json.Unmarshal(raw, &msg); err != nil {
		m.sendErrorToClient(client, "Invalid message format")
		return
	}

	switch msg.Type {
	case MessageTypeJoinRoom:
		room, ok := roomFromData(msg.Data)
		if !ok {
			m.sendErrorToClient(client, "Invalid join room data")
			return
		}
		m.JoinRoom(room, client.UserID)
		logger.Debug("WebSocket: client %s joined room %s", client.UserID, room)

	case MessageTypeLeaveRoom:
		room, ok := roomFromData(msg.Data)
		if !ok {
			m.sendErrorToClient(client, "Invalid leave room data")
			return
		}
		m.LeaveRoom(room, client.UserID)
		logger.Debug("WebSocket: client %s left room %s", client.UserID, room)

	case MessageTypePing:
		m.sendToClient(client, WSMessage{Type: MessageTypePong})

	default:
		m.sendErrorToClient(client, "Unknown message type")
	}
}

// PushEvent serializes an event and broadcasts it to a room.
func (m *Manager) PushEvent(room, eventType string, data interface{}, excludeUserID string) {
	payload, err := json.Marshal(WSMessage{Type: eventType, Data: data})
	if err != nil {
		logger.Error("Failed to marshal websocket event: %v", err)
		return
	}
	m.BroadcastToRoom(room, payload, excludeUserID)
}

// PushToUser serializes an event and sends it to one user.
func (m *Manager) PushToUser(userID, eventType string, data interface{}) {
	payload, err := json.Marshal(WSMessage{Type: eventType, Data: data})
	if err != nil {
		logger.Error("Failed to marshal websocket event: %v", err)
		return
	}
	m.SendToUser(userID, payload)
}

func roomFromData(data interface{}) (string, bool) {
	raw, err := json.Marshal(data)
	if err != nil {
		return "", false
	}

	var roomData RoomData
	if err := json.Unmarshal(raw, &roomData); err != nil || roomData.Room == "" {
		return "", false
	}

	return roomData.Room, true
}

func (m *Manager) sendToClient(client *Client, msg WSMessage) {
	payload, err := json.Marshal(msg)
	if err != nil {
		return
	}
	select {
	case client.Send <- payload:
	default:
	}
}

func (m *Manager) sendErrorToClient(client *Client, message string) {
	m.sendToClient(client, WSMessage{Type: MessageTypeError, Data: map[string]string{"message": message}})
}
