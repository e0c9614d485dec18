package state

import (
	"context"
	"sync"

	"whatsapp-dashboard/pkg/models"
)

// OrderStore holds the order list for the current view.
type OrderStore struct {
	mu     sync.RWMutex
	orders []models.Order
}

func NewOrderStore() *OrderStore {
	return &OrderStore{}
}

func (s *OrderStore) Replace(orders []models.Order) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.orders = append([]models.Order(nil), orders...)
}

func (s *OrderStore) Upsert(order models.Order) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.orders {
		if s.orders[i].ID == order.ID {
			s.orders[i] = order
			return
		}
	}
	s.orders = append(s.orders, order)
}

func (s *OrderStore) List() []models.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Order(nil), s.orders...)
}

func (s *OrderStore) Get(id string) (models.Order, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, order := range s.orders {
		if order.ID == id {
			return order, true
		}
	}
	return models.Order{}, false
}

// --- Flows ---

func (c *Container) LoadOrders(ctx context.Context, status string) ([]models.Order, error) {
	orders, err := c.backend.ListOrders(ctx, status)
	if err != nil {
		return nil, err
	}
	c.Orders.Replace(orders)
	return c.Orders.List(), nil
}

// UpdateOrder submits whatever the operator selected; there is no
// client-side transition table, the backend enforces validity. The
// local copy is overwritten with the confirmed order on success.
func (c *Container) UpdateOrder(ctx context.Context, id string, update models.OrderUpdate) (models.Order, error) {
	order, err := c.backend.UpdateOrder(ctx, id, update)
	if err != nil {
		return models.Order{}, err
	}
	c.Orders.Upsert(order)
	return order, nil
}
