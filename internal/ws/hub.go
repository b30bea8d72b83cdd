package ws

import (
	"encoding/json"
	"log/slog"
	"sync"
)

// Hub maintains the set of active clients and routes messages. It doubles as
// the connection registry: clients are addressable by connection ID, and a
// reconnecting client may register under its previous ID, replacing the old
// entry without triggering a disconnect for that identity.
type Hub struct {
	Clients    map[*Client]bool
	Register   chan *Client
	Unregister chan *Client
	Incoming   chan *ClientMessage

	byID map[string]*Client
	mu   sync.RWMutex

	// OnMessage is called for each incoming client message.
	OnMessage func(cm *ClientMessage)
	// OnDisconnect is called exactly once when a connection identity goes away.
	OnDisconnect func(client *Client)
}

// NewHub creates a new Hub.
func NewHub() *Hub {
	return &Hub{
		Clients:    make(map[*Client]bool),
		Register:   make(chan *Client),
		Unregister: make(chan *Client),
		Incoming:   make(chan *ClientMessage, 256),
		byID:       make(map[string]*Client),
	}
}

// Run starts the hub's main loop.
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.Register:
			h.mu.Lock()
			h.Clients[client] = true
			h.byID[client.ID] = client
			h.mu.Unlock()
			slog.Info("client connected", "client", client.ID)

		case client := <-h.Unregister:
			h.mu.Lock()
			current := false
			if _, ok := h.Clients[client]; ok {
				delete(h.Clients, client)
				close(client.Send)
				if h.byID[client.ID] == client {
					delete(h.byID, client.ID)
					current = true
				}
			}
			h.mu.Unlock()
			// A replaced connection (same ID re-registered) closes without
			// ending the identity, so no disconnect callback for it.
			if current {
				slog.Info("client disconnected", "client", client.ID)
				if h.OnDisconnect != nil {
					h.OnDisconnect(client)
				}
			}

		case cm := <-h.Incoming:
			if h.OnMessage != nil {
				h.OnMessage(cm)
			}
		}
	}
}

// Send delivers a message to the connection with the given ID.
// Returns false if no such connection is registered. The read lock is held
// across the channel push: Run closes Send under the write lock, so callers
// on other goroutines (the reaper, grace timers) can never race the close.
func (h *Hub) Send(id string, msg Message) bool {
	data, err := json.Marshal(msg)
	if err != nil {
		slog.Error("failed to marshal message", "error", err)
		return false
	}

	h.mu.RLock()
	defer h.mu.RUnlock()
	client := h.byID[id]
	if client == nil {
		return false
	}
	select {
	case client.Send <- data:
	default:
		slog.Warn("client send buffer full, dropping message", "client", client.ID)
	}
	return true
}

// IsConnected reports whether a connection with the given ID is live.
func (h *Hub) IsConnected(id string) bool {
	h.mu.RLock()
	defer h.mu.RUnlock()
	_, ok := h.byID[id]
	return ok
}

// ClientCount returns the number of connected clients.
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.Clients)
}
