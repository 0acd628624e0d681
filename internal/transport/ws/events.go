package ws

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/inkwell-press/inkwell/internal/domain"
)

// Event types - Client → Server
const (
	EventTypePing = "ping"
)

// Event types - Server → Client
const (
	EventTypePostCreated = "post.created"
	EventTypePostUpdated = "post.updated"
	EventTypePostDeleted = "post.deleted"
	EventTypePong        = "pong"
	EventTypeError       = "error"
)

// Event is the base envelope for all WebSocket messages.
type Event struct {
	Type      string          `json:"type"`
	Payload   json.RawMessage `json:"payload,omitempty"`
	Timestamp int64           `json:"ts,omitempty"`
}

type PostPayload struct {
	Post domain.Post `json:"post"`
}

type PostDeletedPayload struct {
	ID uuid.UUID `json:"id"`
}

type ErrorPayload struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// NewEvent builds an Event with a marshaled payload and current timestamp.
func NewEvent(eventType string, payload any) (*Event, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return &Event{
		Type:      eventType,
		Payload:   data,
		Timestamp: time.Now().UnixMilli(),
	}, nil
}
