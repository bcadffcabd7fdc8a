package chat

import (
	"carexpert-service/internal/pkg/dto/responses"
	"sync"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

// Event is the frame exchanged over a chat websocket. Inbound frames carry
// Type plus the fields the type needs; outbound frames additionally carry the
// persisted message.
type Event struct {
	Type       string                 `json:"type"`
	Room       string                 `json:"room,omitempty"`
	ReceiverID string                 `json:"receiverId,omitempty"`
	Content    string                 `json:"content,omitempty"`
	Message    *responses.ChatMessage `json:"message,omitempty"`
	Error      string                 `json:"error,omitempty"`
}

// Inbound event types.
const (
	EventJoinRoom    = "joinRoom"
	EventRoomMessage = "roomMessage"
	EventJoinDm      = "joinDmRoom"
	EventDmMessage   = "dmMessage"
)

// Outbound event types.
const (
	EventMessage = "message"
	EventNotice  = "notice"
	EventError   = "error"
)

// Hub tracks connected chat clients by topic. A topic is either a room name
// or a DM conversation ID prefixed with "dm:".
type Hub struct {
	mu      sync.RWMutex
	clients map[string]map[*Client]struct{}
	all     map[*Client]struct{}
	log     *zap.Logger
}

func NewHub(log *zap.Logger) *Hub {
	return &Hub{
		clients: make(map[string]map[*Client]struct{}),
		all:     make(map[*Client]struct{}),
		log:     log,
	}
}

func (h *Hub) Register(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.all[client] = struct{}{}
}

// Unregister removes a client from every topic and closes its send channel.
func (h *Hub) Unregister(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.all[client]; !ok {
		return
	}
	for topic := range client.topics {
		if subscribers, ok := h.clients[topic]; ok {
			delete(subscribers, client)
			if len(subscribers) == 0 {
				delete(h.clients, topic)
			}
		}
	}
	delete(h.all, client)
	close(client.send)
}

func (h *Hub) Subscribe(client *Client, topic string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.clients[topic] == nil {
		h.clients[topic] = make(map[*Client]struct{})
	}
	h.clients[topic][client] = struct{}{}
	client.topics[topic] = struct{}{}
}

// Broadcast fans an event out to every subscriber of the topic. Slow clients
// are skipped rather than blocking the sender.
func (h *Hub) Broadcast(topic string, event Event) {
	data, err := json.Marshal(event)
	if err != nil {
		h.log.Error("chat.Hub.Broadcast marshal failed", zap.Error(err))
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()

	for client := range h.clients[topic] {
		select {
		case client.send <- data:
		default:
		}
	}
}

func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.all)
}

func (h *Hub) TopicCount(topic string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients[topic])
}
