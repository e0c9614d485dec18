package state

import (
	"context"
	"sync"

	"whatsapp-dashboard/pkg/models"
)

// QuickReplyStore holds the operator's canned responses.
type QuickReplyStore struct {
	mu      sync.RWMutex
	replies []models.QuickReply
}

func NewQuickReplyStore() *QuickReplyStore {
	return &QuickReplyStore{}
}

func (s *QuickReplyStore) Replace(replies []models.QuickReply) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.replies = append([]models.QuickReply(nil), replies...)
}

func (s *QuickReplyStore) Add(reply models.QuickReply) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.replies = append(s.replies, reply)
}

func (s *QuickReplyStore) Remove(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.replies {
		if s.replies[i].ID == id {
			s.replies = append(s.replies[:i], s.replies[i+1:]...)
			return
		}
	}
}

func (s *QuickReplyStore) List() []models.QuickReply {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.QuickReply(nil), s.replies...)
}

// --- Flows ---

func (c *Container) LoadQuickReplies(ctx context.Context) ([]models.QuickReply, error) {
	replies, err := c.backend.ListQuickReplies(ctx)
	if err != nil {
		return nil, err
	}
	c.QuickReplies.Replace(replies)
	return c.QuickReplies.List(), nil
}

func (c *Container) CreateQuickReply(ctx context.Context, req models.CreateQuickReplyRequest) (models.QuickReply, error) {
	reply, err := c.backend.CreateQuickReply(ctx, req)
	if err != nil {
		return models.QuickReply{}, err
	}
	c.QuickReplies.Add(reply)
	return reply, nil
}

// DeleteQuickReply removes the canned response locally only after the
// backend confirms the delete.
func (c *Container) DeleteQuickReply(ctx context.Context, id string) error {
	if err := c.backend.DeleteQuickReply(ctx, id); err != nil {
		return err
	}
	c.QuickReplies.Remove(id)
	return nil
}
