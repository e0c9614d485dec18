package models

import "time"

// Chat statuses as reported by the backend.
const (
	ChatStatusOpen     = "open"
	ChatStatusPending  = "pending"
	ChatStatusResolved = "resolved"
)

// Chat represents a conversation thread keyed by the customer's phone
// number. The backend is authoritative; this is a local projection.
type Chat struct {
	Phone         string    `json:"phone"`
	CustomerName  string    `json:"customer_name"`
	LastMessage   string    `json:"last_message"`
	LastMessageAt time.Time `json:"last_message_at"`
	UnreadCount   int       `json:"unread_count"`
	Labels        LabelList `json:"labels"`
	Status        string    `json:"status"`
}

// ChatUpdate is the payload for PUT /api/chats/{phone}. Nil fields are
// left untouched by the backend.
type ChatUpdate struct {
	Status      *string    `json:"status,omitempty"`
	Labels      *LabelList `json:"labels,omitempty"`
	UnreadCount *int       `json:"unread_count,omitempty"`
}
