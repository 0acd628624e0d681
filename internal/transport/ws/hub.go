package ws

import (
	"encoding/json"
	"log"

	"github.com/google/uuid"
)

// Hub manages all active WebSocket clients for the post feed.
type Hub struct {
	// clients maps userID → client.
	clients map[uuid.UUID]*Client

	register   chan *Client
	unregister chan *Client
	broadcast  chan []byte
}

func NewHub() *Hub {
	return &Hub{
		clients:    make(map[uuid.UUID]*Client),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan []byte, 256),
	}
}

// Run starts the Hub's main event loop. Call this in a goroutine.
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.clients[client.userID] = client
			log.Printf("ws hub: user %s connected (%d total)", client.userID, len(h.clients))

		case client := <-h.unregister:
			if _, ok := h.clients[client.userID]; ok {
				delete(h.clients, client.userID)
				close(client.send)
				close(client.done)
				log.Printf("ws hub: user %s disconnected (%d total)", client.userID, len(h.clients))
			}

		case data := <-h.broadcast:
			for _, client := range h.clients {
				select {
				case client.send <- data:
				default:
					// Slow consumer, drop the event rather than block the hub.
				}
			}
		}
	}
}

// Broadcast sends an event to every connected client. The feed is global;
// there is no per-channel subscription model.
func (h *Hub) Broadcast(evt *Event) {
	data, err := json.Marshal(evt)
	if err != nil {
		log.Printf("ws hub: marshal error: %v", err)
		return
	}
	h.broadcast <- data
}
