package websocket

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"givebridge-be/internal/pkg/logger"
)

// clusterChannel carries pushes between instances when Redis is configured,
// so a user connected to one instance still receives pushes triggered on
// another.
const clusterChannel = "ws:pushes"

type clusterPush struct {
	TargetUserId string          `json:"target_user_id"`
	Message      json.RawMessage `json:"message"`
}

// Hub tracks live websocket clients per user and fans pushes out to them.
// It satisfies the notification service's Pusher interface.
type Hub struct {
	clients    map[uuid.UUID][]*Client
	register   chan *Client
	unregister chan *Client
	mu         sync.RWMutex

	rdb    *redis.Client
	logger logger.ILogger
}

func NewHub(rdb *redis.Client, log logger.ILogger) *Hub {
	return &Hub{
		clients:    make(map[uuid.UUID][]*Client),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		rdb:        rdb,
		logger:     log,
	}
}

// Run processes register and unregister requests. Call it once, on its own
// goroutine, before the server starts.
func (h *Hub) Run() {
	if h.rdb != nil {
		go h.subscribeCluster()
	}

	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client.userId] = append(h.clients[client.userId], client)
			h.mu.Unlock()
			h.logger.Info("websocket", "client connected", map[string]interface{}{"user_id": client.userId.String()})

		case client := <-h.unregister:
			h.mu.Lock()
			if clients, ok := h.clients[client.userId]; ok {
				for i, c := range clients {
					if c == client {
						h.clients[client.userId] = append(clients[:i], clients[i+1:]...)
						client.closeSend()
						break
					}
				}
				if len(h.clients[client.userId]) == 0 {
					delete(h.clients, client.userId)
				}
			}
			h.mu.Unlock()
		}
	}
}

// Push delivers the payload to every connection the user holds. With Redis
// configured, delivery goes through the cluster channel so every instance,
// this one included, fans out to its own local clients exactly once. Without
// Redis, delivery is local only.
func (h *Hub) Push(userId uuid.UUID, payload interface{}) {
	data, err := json.Marshal(map[string]interface{}{
		"type": "notification",
		"data": payload,
	})
	if err != nil {
		h.logger.Warn("websocket", "failed to encode push", map[string]interface{}{"error": err.Error()})
		return
	}

	if h.rdb == nil {
		h.deliverLocal(userId, data)
		return
	}

	raw, _ := json.Marshal(clusterPush{
		TargetUserId: userId.String(),
		Message:      data,
	})
	if err := h.rdb.Publish(context.Background(), clusterChannel, raw).Err(); err != nil {
		h.logger.Warn("websocket", "failed to publish cluster push, delivering locally", map[string]interface{}{"error": err.Error()})
		h.deliverLocal(userId, data)
	}
}

func (h *Hub) deliverLocal(userId uuid.UUID, data []byte) {
	h.mu.RLock()
	clients := append([]*Client(nil), h.clients[userId]...)
	h.mu.RUnlock()

	for _, client := range clients {
		if !client.trySend(data) {
			// Slow consumer. Drop the connection rather than block the hub.
			h.logger.Warn("websocket", "send buffer full, dropping client", map[string]interface{}{"user_id": userId.String()})
			client.closeSend()
			h.unregister <- client
		}
	}
}

func (h *Hub) subscribeCluster() {
	ctx := context.Background()
	pubsub := h.rdb.Subscribe(ctx, clusterChannel)
	defer pubsub.Close()

	for msg := range pubsub.Channel() {
		var push clusterPush
		if err := json.Unmarshal([]byte(msg.Payload), &push); err != nil {
			h.logger.Warn("websocket", "malformed cluster push", map[string]interface{}{"error": err.Error()})
			continue
		}

		userId, err := uuid.Parse(push.TargetUserId)
		if err != nil {
			continue
		}
		h.deliverLocal(userId, push.Message)
	}
}
