package state

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"

	"whatsapp-dashboard/pkg/models"
)

// ErrEmptyMessage is returned by SendText for blank input; no backend
// call is made and local state is untouched.
var ErrEmptyMessage = errors.New("message body is empty")

// MessageStore holds per-chat message lists keyed by phone number. Each
// list stays ordered by timestamp; merge discards messages whose
// durable ID is already present.
type MessageStore struct {
	mu      sync.RWMutex
	byPhone map[string][]models.Message
}

func NewMessageStore() *MessageStore {
	return &MessageStore{byPhone: make(map[string][]models.Message)}
}

// Replace swaps in a freshly loaded message list for a chat.
func (s *MessageStore) Replace(phone string, messages []models.Message) {
	s.mu.Lock()
	defer s.mu.Unlock()
	list := append([]models.Message(nil), messages...)
	sort.SliceStable(list, func(i, j int) bool {
		return list[i].Timestamp.Before(list[j].Timestamp)
	})
	s.byPhone[phone] = list
}

// Merge appends a message to its chat unless one with the same durable
// ID already exists. Returns true when the message was added.
func (s *MessageStore) Merge(msg models.Message) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	list := s.byPhone[msg.Phone]
	for _, existing := range list {
		if existing.ID == msg.ID {
			return false
		}
	}
	list = append(list, msg)
	// Polls deliver in chronological order; only re-sort when they don't.
	if n := len(list); n > 1 && list[n-1].Timestamp.Before(list[n-2].Timestamp) {
		sort.SliceStable(list, func(i, j int) bool {
			return list[i].Timestamp.Before(list[j].Timestamp)
		})
	}
	s.byPhone[msg.Phone] = list
	return true
}

// Confirm replaces the optimistic local copy (matched by client ID)
// with the server-confirmed message. If the local copy is gone the
// confirmed message is merged instead.
func (s *MessageStore) Confirm(phone, clientID string, confirmed models.Message) {
	s.mu.Lock()
	list := s.byPhone[phone]
	for i := range list {
		if list[i].ID == clientID {
			list[i] = confirmed
			s.mu.Unlock()
			return
		}
	}
	s.mu.Unlock()
	s.Merge(confirmed)
}

// MarkFailed flags the optimistic local copy after a failed send.
func (s *MessageStore) MarkFailed(phone, clientID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	list := s.byPhone[phone]
	for i := range list {
		if list[i].ID == clientID {
			list[i].Status = models.MessageStatusFailed
			return
		}
	}
}

// List returns a copy of a chat's message list.
func (s *MessageStore) List(phone string) []models.Message {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Message(nil), s.byPhone[phone]...)
}

func (s *MessageStore) Len(phone string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.byPhone[phone])
}

// --- Flows ---

// LoadMessages reloads a chat's history from the backend.
func (c *Container) LoadMessages(ctx context.Context, phone string) ([]models.Message, error) {
	messages, err := c.backend.ListMessages(ctx, phone)
	if err != nil {
		return nil, err
	}
	c.Messages.Replace(phone, messages)
	return c.Messages.List(phone), nil
}

// SendText optimistically inserts a pending local copy, persists the
// send, and reconciles with the server echo. Blank bodies are rejected
// before anything happens.
func (c *Container) SendText(ctx context.Context, phone, content string) (models.Message, error) {
	if strings.TrimSpace(content) == "" {
		return models.Message{}, ErrEmptyMessage
	}

	pending := models.NewPendingMessage(phone, content)
	c.Messages.Merge(pending)

	confirmed, err := c.backend.SendMessage(ctx, models.SendMessageRequest{To: phone, Content: content})
	if err != nil {
		c.Messages.MarkFailed(phone, pending.ID)
		return pending, err
	}

	c.Messages.Confirm(phone, pending.ID, confirmed)
	return confirmed, nil
}

// SendTemplate sends a template message. No optimistic insert: the
// rendered body is only known once the server responds.
func (c *Container) SendTemplate(ctx context.Context, req models.SendTemplateRequest) (models.Message, error) {
	msg, err := c.backend.SendTemplate(ctx, req)
	if err != nil {
		return models.Message{}, err
	}
	c.Messages.Merge(msg)
	return msg, nil
}
