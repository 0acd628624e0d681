package ws

import (
	"log"

	"github.com/google/uuid"

	"github.com/inkwell-press/inkwell/internal/domain"
)

// HubNotifier implements service.Notifier using the WebSocket Hub.
type HubNotifier struct {
	hub *Hub
}

func NewHubNotifier(hub *Hub) *HubNotifier {
	return &HubNotifier{hub: hub}
}

func (n *HubNotifier) NotifyPostCreated(post *domain.Post) {
	n.broadcast(EventTypePostCreated, PostPayload{Post: *post})
}

func (n *HubNotifier) NotifyPostUpdated(post *domain.Post) {
	n.broadcast(EventTypePostUpdated, PostPayload{Post: *post})
}

func (n *HubNotifier) NotifyPostDeleted(postID uuid.UUID) {
	n.broadcast(EventTypePostDeleted, PostDeletedPayload{ID: postID})
}

func (n *HubNotifier) broadcast(eventType string, payload any) {
	evt, err := NewEvent(eventType, payload)
	if err != nil {
		log.Printf("ws notifier: marshal error: %v", err)
		return
	}
	n.hub.Broadcast(evt)
}
