package models

import (
	"fmt"
	"time"
)

// Message directions.
const (
	DirectionIncoming = "incoming"
	DirectionOutgoing = "outgoing"
)

// Message statuses.
const (
	MessageStatusPending   = "pending"
	MessageStatusSent      = "sent"
	MessageStatusDelivered = "delivered"
	MessageStatusRead      = "read"
	MessageStatusFailed    = "failed"
)

// Message types.
const (
	MessageTypeText        = "text"
	MessageTypeImage       = "image"
	MessageTypeAudio       = "audio"
	MessageTypeDocument    = "document"
	MessageTypeLocation    = "location"
	MessageTypeInteractive = "interactive"
	MessageTypeTemplate    = "template"
)

const localIDPrefix = "local-"

// Message represents one message in a chat. A durable ID is assigned by
// the backend; optimistically inserted messages carry a client-generated
// timestamp-based ID until the server echo replaces them.
type Message struct {
	ID        string    `json:"id"`
	Phone     string    `json:"phone"`
	Direction string    `json:"direction"`
	Type      string    `json:"type"`
	Content   string    `json:"content"`
	MediaURL  string    `json:"media_url,omitempty"`
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}

// NewPendingMessage builds the optimistic local copy of an outgoing text
// message, inserted before server confirmation.
func NewPendingMessage(phone, content string) Message {
	now := time.Now()
	return Message{
		ID:        fmt.Sprintf("%s%d", localIDPrefix, now.UnixNano()),
		Phone:     phone,
		Direction: DirectionOutgoing,
		Type:      MessageTypeText,
		Content:   content,
		Status:    MessageStatusPending,
		Timestamp: now,
	}
}

// IsLocal reports whether the message still carries a client-generated
// ID, i.e. has not been confirmed by the server yet.
func (m Message) IsLocal() bool {
	return len(m.ID) > len(localIDPrefix) && m.ID[:len(localIDPrefix)] == localIDPrefix
}

// SendMessageRequest is the payload for POST /api/messages/send.
type SendMessageRequest struct {
	To      string `json:"to"`
	Content string `json:"content"`
}

// SendTemplateRequest is the payload for POST /api/messages/template.
type SendTemplateRequest struct {
	To       string            `json:"to"`
	Template string            `json:"template"`
	Language string            `json:"language"`
	Params   map[string]string `json:"params,omitempty"`
}
