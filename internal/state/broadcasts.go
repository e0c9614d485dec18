package state

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"whatsapp-dashboard/pkg/models"
)

var (
	ErrEmptyBroadcast   = errors.New("broadcast body is empty")
	ErrBroadcastTooLong = fmt.Errorf("broadcast body exceeds %d characters", models.MaxBroadcastBody)
)

// BroadcastStore holds the campaign list, newest first.
type BroadcastStore struct {
	mu         sync.RWMutex
	broadcasts []models.Broadcast
}

func NewBroadcastStore() *BroadcastStore {
	return &BroadcastStore{}
}

func (s *BroadcastStore) Replace(broadcasts []models.Broadcast) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.broadcasts = append([]models.Broadcast(nil), broadcasts...)
}

// Upsert overwrites the entry matching the broadcast's ID, or prepends
// it as new.
func (s *BroadcastStore) Upsert(broadcast models.Broadcast) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.broadcasts {
		if s.broadcasts[i].ID == broadcast.ID {
			s.broadcasts[i] = broadcast
			return
		}
	}
	s.broadcasts = append([]models.Broadcast{broadcast}, s.broadcasts...)
}

func (s *BroadcastStore) List() []models.Broadcast {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Broadcast(nil), s.broadcasts...)
}

// --- Flows ---

func (c *Container) LoadBroadcasts(ctx context.Context) ([]models.Broadcast, error) {
	broadcasts, err := c.backend.ListBroadcasts(ctx)
	if err != nil {
		return nil, err
	}
	c.Broadcasts.Replace(broadcasts)
	return c.Broadcasts.List(), nil
}

// CreateBroadcast validates and persists a campaign. Without a schedule
// time the backend stores it as a draft; with one it is scheduled.
func (c *Container) CreateBroadcast(ctx context.Context, req models.CreateBroadcastRequest) (models.Broadcast, error) {
	if strings.TrimSpace(req.Body) == "" {
		return models.Broadcast{}, ErrEmptyBroadcast
	}
	if len(req.Body) > models.MaxBroadcastBody {
		return models.Broadcast{}, ErrBroadcastTooLong
	}

	broadcast, err := c.backend.CreateBroadcast(ctx, req)
	if err != nil {
		return models.Broadcast{}, err
	}
	c.Broadcasts.Upsert(broadcast)
	return broadcast, nil
}

// EstimateRecipients returns the live recipient count for the given
// targeting criteria. Any failure yields 0 rather than a stale prior
// estimate.
func (c *Container) EstimateRecipients(ctx context.Context, target models.BroadcastTarget) int {
	count, err := c.backend.EstimateBroadcast(ctx, target)
	if err != nil {
		c.log.Debugw("broadcast estimate failed", "error", err)
		return 0
	}
	return count
}

// SendBroadcastNow triggers immediate delivery of a draft campaign.
func (c *Container) SendBroadcastNow(ctx context.Context, id string) (models.Broadcast, error) {
	broadcast, err := c.backend.SendBroadcast(ctx, id)
	if err != nil {
		return models.Broadcast{}, err
	}
	c.Broadcasts.Upsert(broadcast)
	return broadcast, nil
}
