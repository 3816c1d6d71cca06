package websocket

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"givebridge-be/internal/pkg/logger"
)

func newTestHub(t *testing.T) *Hub {
	t.Helper()
	log := logger.NewZapLogger(filepath.Join(t.TempDir(), "test.log"), false)
	h := NewHub(nil, log)
	go h.Run()
	return h
}

func registeredClient(t *testing.T, h *Hub, userId uuid.UUID, buffer int) *Client {
	t.Helper()
	client := &Client{hub: h, userId: userId, send: make(chan []byte, buffer)}
	h.register <- client
	require.Eventually(t, func() bool {
		h.mu.RLock()
		defer h.mu.RUnlock()
		for _, c := range h.clients[userId] {
			if c == client {
				return true
			}
		}
		return false
	}, time.Second, 10*time.Millisecond)
	return client
}

func TestSlowConsumerIsDroppedOnce(t *testing.T) {
	h := newTestHub(t)
	userId := uuid.New()
	client := registeredClient(t, h, userId, 1)

	h.Push(userId, map[string]string{"message": "first"})
	// The buffer is full now; the next push drops the client.
	h.Push(userId, map[string]string{"message": "second"})

	assert.Eventually(t, func() bool {
		h.mu.RLock()
		defer h.mu.RUnlock()
		return len(h.clients[userId]) == 0
	}, time.Second, 10*time.Millisecond)

	// Closing again must be a no-op, the unregister path and the drop path
	// can both reach it.
	assert.NotPanics(t, func() { client.closeSend() })
	assert.True(t, client.trySend([]byte("ignored")), "closed client swallows sends")

	// The hub must still be serving after the drop.
	replacement := registeredClient(t, h, userId, 4)
	h.Push(userId, map[string]string{"message": "third"})

	select {
	case msg := <-replacement.send:
		assert.Contains(t, string(msg), "third")
	case <-time.After(time.Second):
		t.Fatal("push after a dropped client never arrived")
	}
}

func TestPushFansOutToEveryConnection(t *testing.T) {
	h := newTestHub(t)
	userId := uuid.New()
	first := registeredClient(t, h, userId, 4)
	second := registeredClient(t, h, userId, 4)
	other := registeredClient(t, h, uuid.New(), 4)

	h.Push(userId, map[string]string{"message": "hello"})

	for _, client := range []*Client{first, second} {
		select {
		case msg := <-client.send:
			assert.Contains(t, string(msg), "notification")
		case <-time.After(time.Second):
			t.Fatal("connection never received the push")
		}
	}

	select {
	case <-other.send:
		t.Fatal("push leaked to another user's connection")
	case <-time.After(50 * time.Millisecond):
	}
}

func TestUnregisterClosesSendChannel(t *testing.T) {
	h := newTestHub(t)
	userId := uuid.New()
	client := registeredClient(t, h, userId, 1)

	h.unregister <- client

	select {
	case _, ok := <-client.send:
		assert.False(t, ok, "unregister should close the outbound queue")
	case <-time.After(time.Second):
		t.Fatal("send channel was not closed on unregister")
	}
}
