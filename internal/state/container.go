package state

import (
	"whatsapp-dashboard/internal/backend"

	"go.uber.org/zap"
)

// Container owns the in-memory entity stores backing the dashboard and
// the flows that mutate them. All server state is authoritative on the
// backend; the stores hold transient projections refreshed by explicit
// reload or by the polling synchronizer. The container is constructed
// once at startup and injected wherever state is needed.
type Container struct {
	backend *backend.Client
	log     *zap.SugaredLogger

	Chats        *ChatStore
	Messages     *MessageStore
	Customers    *CustomerStore
	Orders       *OrderStore
	Broadcasts   *BroadcastStore
	QuickReplies *QuickReplyStore
}

func NewContainer(client *backend.Client, log *zap.SugaredLogger) *Container {
	return &Container{
		backend:      client,
		log:          log,
		Chats:        NewChatStore(),
		Messages:     NewMessageStore(),
		Customers:    NewCustomerStore(),
		Orders:       NewOrderStore(),
		Broadcasts:   NewBroadcastStore(),
		QuickReplies: NewQuickReplyStore(),
	}
}
