package websocket

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"skillswap/internal/infrastructure/ratelimit"
)

type stubLimiter struct {
	allowed bool
}

func (s stubLimiter) Allow(string, string) (bool, time.Duration) {
	return s.allowed, time.Second
}

func receive(t *testing.T, client *Client) WSMessage {
	t.Helper()
	select {
	case raw := <-client.Send:
		var msg WSMessage
		require.NoError(t, json.Unmarshal(raw, &msg))
		return msg
	case <-time.After(time.Second):
		t.Fatal("no frame received")
		return WSMessage{}
	}
}

func TestHandleMessagePingPong(t *testing.T) {
	m := NewManager()
	client := &Client{UserID: "user1", Send: make(chan []byte, 4)}

	m.HandleMessage(client, []byte(`{"type":"ping"}`))

	msg := receive(t, client)
	assert.Equal(t, MessageTypePong, msg.Type)
}

func TestHandleMessageFloodDropped(t *testing.T) {
	m := NewManager()
	m.SetFloodLimiter(stubLimiter{allowed: false})
	client := &Client{UserID: "user1", Send: make(chan []byte, 4)}

	m.HandleMessage(client, []byte(`{"type":"ping"}`))

	msg := receive(t, client)
	assert.Equal(t, MessageTypeError, msg.Type)

	select {
	case <-client.Send:
		t.Fatal("dropped frame should not be processed")
	default:
	}
}

func TestHandleMessageFloodBudget(t *testing.T) {
	m := NewManager()
	m.SetFloodLimiter(ratelimit.NewRateLimiter())
	client := &Client{UserID: "user1", Send: make(chan []byte, 128)}

	// The per-user frame budget admits a burst of 60, then refuses.
	for i := 0; i < 60; i++ {
		m.HandleMessage(client, []byte(`{"type":"ping"}`))
		msg := receive(t, client)
		require.Equal(t, MessageTypePong, msg.Type)
	}

	m.HandleMessage(client, []byte(`{"type":"ping"}`))
	msg := receive(t, client)
	assert.Equal(t, MessageTypeError, msg.Type)

	// A different user is unaffected.
	other := &Client{UserID: "user2", Send: make(chan []byte, 4)}
	m.HandleMessage(other, []byte(`{"type":"ping"}`))
	assert.Equal(t, MessageTypePong, receive(t, other).Type)
}
