package poller

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"whatsapp-dashboard/internal/backend"
	"whatsapp-dashboard/pkg/models"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// DefaultInterval is the poll cadence used when none is configured.
const DefaultInterval = 5 * time.Second

// Callbacks receive the items discovered by a successful poll tick.
// OnIncomingMessage fires only for incoming messages; the dashboard
// already knows about its own sends. OnChatUpdate fires for every chat
// in the update batch.
type Callbacks struct {
	OnIncomingMessage func(models.Message)
	OnChatUpdate      func(models.Chat)
}

// Synchronizer approximates server push with a fixed-cadence pull: each
// tick fetches messages and chat updates since the last successful poll
// and dispatches callbacks for the new items. Poll failures are
// swallowed and retried on the next tick; that is the only recovery
// behavior. A tick never overlaps a still-running previous poll.
type Synchronizer struct {
	backend  *backend.Client
	cb       Callbacks
	interval time.Duration
	log      *zap.SugaredLogger

	mu     sync.Mutex // lifecycle
	cancel context.CancelFunc
	done   chan struct{}

	stateMu       sync.Mutex
	lastMessageAt time.Time
	lastChatAt    time.Time

	connected atomic.Bool
	busy      atomic.Bool
}

func New(client *backend.Client, interval time.Duration, cb Callbacks, log *zap.SugaredLogger) *Synchronizer {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Synchronizer{
		backend:  client,
		cb:       cb,
		interval: interval,
		log:      log,
	}
}

// Start initializes both watermarks to now, polls immediately, then
// arms the repeating timer. Calling Start while running is a no-op.
func (s *Synchronizer) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cancel != nil {
		return
	}

	now := time.Now()
	s.stateMu.Lock()
	s.lastMessageAt = now
	s.lastChatAt = now
	s.stateMu.Unlock()

	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel
	s.done = make(chan struct{})
	s.log.Infow("poller started", "interval", s.interval)

	go s.run(ctx, s.done)
}

// Stop disarms the timer and waits for any in-flight poll to finish.
// Calling Stop while stopped is a no-op.
func (s *Synchronizer) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cancel == nil {
		return
	}
	s.cancel()
	<-s.done
	s.cancel = nil
	s.done = nil
	s.log.Infow("poller stopped")
}

// Running reports whether the timer is armed.
func (s *Synchronizer) Running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cancel != nil
}

// Connected reports whether the most recent poll succeeded.
func (s *Synchronizer) Connected() bool {
	return s.connected.Load()
}

// LastMessageAt returns the current message watermark.
func (s *Synchronizer) LastMessageAt() time.Time {
	s.stateMu.Lock()
	defer s.stateMu.Unlock()
	return s.lastMessageAt
}

// LastChatAt returns the current chat watermark.
func (s *Synchronizer) LastChatAt() time.Time {
	s.stateMu.Lock()
	defer s.stateMu.Unlock()
	return s.lastChatAt
}

func (s *Synchronizer) run(ctx context.Context, done chan struct{}) {
	defer close(done)

	s.PollOnce(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.PollOnce(ctx)
		}
	}
}

// PollOnce performs one fetch-and-dispatch cycle. The message and chat
// fetches run in parallel; if either fails the whole tick is discarded,
// the connected flag drops, and nothing is dispatched. A tick that
// finds a previous poll still in flight is skipped entirely.
func (s *Synchronizer) PollOnce(ctx context.Context) {
	if !s.busy.CompareAndSwap(false, true) {
		s.log.Debugw("poll skipped, previous poll still in flight")
		return
	}
	defer s.busy.Store(false)

	s.stateMu.Lock()
	sinceMessage := s.lastMessageAt
	sinceChat := s.lastChatAt
	s.stateMu.Unlock()

	var messages []models.Message
	var chats []models.Chat

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		messages, err = s.backend.RecentMessages(gctx, sinceMessage)
		return err
	})
	g.Go(func() error {
		var err error
		chats, err = s.backend.ListChats(gctx, sinceChat)
		return err
	})
	if err := g.Wait(); err != nil {
		s.connected.Store(false)
		s.log.Debugw("poll failed", "error", err)
		return
	}
	s.connected.Store(true)

	// Empty batches leave the watermarks unchanged; advances never move
	// a watermark backwards.
	if len(messages) > 0 {
		s.advance(&s.lastMessageAt, messages[len(messages)-1].Timestamp)
	}
	if len(chats) > 0 {
		latest := chats[0].LastMessageAt
		for _, chat := range chats[1:] {
			if chat.LastMessageAt.After(latest) {
				latest = chat.LastMessageAt
			}
		}
		s.advance(&s.lastChatAt, latest)
	}

	for _, msg := range messages {
		if msg.Direction == models.DirectionIncoming && s.cb.OnIncomingMessage != nil {
			s.cb.OnIncomingMessage(msg)
		}
	}
	for _, chat := range chats {
		if s.cb.OnChatUpdate != nil {
			s.cb.OnChatUpdate(chat)
		}
	}
}

func (s *Synchronizer) advance(watermark *time.Time, to time.Time) {
	s.stateMu.Lock()
	defer s.stateMu.Unlock()
	if to.After(*watermark) {
		*watermark = to
	}
}
