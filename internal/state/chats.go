package state

import (
	"context"
	"sort"
	"sync"
	"time"

	"whatsapp-dashboard/pkg/models"
)

// ChatStore holds the chat list for the current view, ordered descending
// by last-message timestamp. Chats are never deleted locally, only
// replaced by reload or upserted by the synchronizer.
type ChatStore struct {
	mu    sync.RWMutex
	chats []models.Chat
}

func NewChatStore() *ChatStore {
	return &ChatStore{}
}

// Replace swaps in a freshly loaded chat list.
func (s *ChatStore) Replace(chats []models.Chat) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.chats = append([]models.Chat(nil), chats...)
	s.sortLocked()
}

// Upsert replaces the entry matching the chat's phone in place, or
// prepends it as new, then re-sorts the collection. Equal timestamps
// keep their relative order (stable sort).
func (s *ChatStore) Upsert(chat models.Chat) {
	s.mu.Lock()
	defer s.mu.Unlock()
	replaced := false
	for i := range s.chats {
		if s.chats[i].Phone == chat.Phone {
			s.chats[i] = chat
			replaced = true
			break
		}
	}
	if !replaced {
		s.chats = append([]models.Chat{chat}, s.chats...)
	}
	s.sortLocked()
}

// List returns a copy of the chat collection.
func (s *ChatStore) List() []models.Chat {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Chat(nil), s.chats...)
}

// Get returns the chat for a phone number, if present.
func (s *ChatStore) Get(phone string) (models.Chat, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, chat := range s.chats {
		if chat.Phone == phone {
			return chat, true
		}
	}
	return models.Chat{}, false
}

func (s *ChatStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.chats)
}

func (s *ChatStore) sortLocked() {
	sort.SliceStable(s.chats, func(i, j int) bool {
		return s.chats[i].LastMessageAt.After(s.chats[j].LastMessageAt)
	})
}

// --- Flows ---

// LoadChats reloads the full chat list from the backend.
func (c *Container) LoadChats(ctx context.Context) ([]models.Chat, error) {
	chats, err := c.backend.ListChats(ctx, time.Time{})
	if err != nil {
		return nil, err
	}
	c.Chats.Replace(chats)
	return c.Chats.List(), nil
}

// GetChat returns the local copy of a chat, fetching it from the
// backend when it is not cached yet.
func (c *Container) GetChat(ctx context.Context, phone string) (models.Chat, error) {
	if chat, ok := c.Chats.Get(phone); ok {
		return chat, nil
	}
	chat, err := c.backend.GetChat(ctx, phone)
	if err != nil {
		return models.Chat{}, err
	}
	c.Chats.Upsert(chat)
	return chat, nil
}

// UpdateChat persists a chat update and merges the confirmed result.
func (c *Container) UpdateChat(ctx context.Context, phone string, update models.ChatUpdate) (models.Chat, error) {
	chat, err := c.backend.UpdateChat(ctx, phone, update)
	if err != nil {
		return models.Chat{}, err
	}
	c.Chats.Upsert(chat)
	return chat, nil
}

// AddChatLabel computes the union of the chat's label set and the new
// label, persists it, and only then applies it locally. An add that
// leaves the set unchanged short-circuits without a backend call.
func (c *Container) AddChatLabel(ctx context.Context, phone, label string) (models.Chat, error) {
	return c.mutateChatLabels(ctx, phone, func(labels models.LabelList) models.LabelList {
		return labels.Add(label)
	})
}

// RemoveChatLabel computes the set difference and persists it the same
// way.
func (c *Container) RemoveChatLabel(ctx context.Context, phone, label string) (models.Chat, error) {
	return c.mutateChatLabels(ctx, phone, func(labels models.LabelList) models.LabelList {
		return labels.Remove(label)
	})
}

func (c *Container) mutateChatLabels(ctx context.Context, phone string, apply func(models.LabelList) models.LabelList) (models.Chat, error) {
	chat, err := c.GetChat(ctx, phone)
	if err != nil {
		return models.Chat{}, err
	}

	next := apply(chat.Labels)
	if next.Equal(chat.Labels) {
		return chat, nil
	}

	// Persist first; local state stays untouched when the call fails.
	updated, err := c.backend.UpdateChat(ctx, phone, models.ChatUpdate{Labels: &next})
	if err != nil {
		return chat, err
	}
	c.Chats.Upsert(updated)
	return updated, nil
}
