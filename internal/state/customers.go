package state

import (
	"context"
	"sync"

	"whatsapp-dashboard/pkg/models"
)

// CustomerStore holds the customer list for the current view.
type CustomerStore struct {
	mu        sync.RWMutex
	customers []models.Customer
}

func NewCustomerStore() *CustomerStore {
	return &CustomerStore{}
}

func (s *CustomerStore) Replace(customers []models.Customer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.customers = append([]models.Customer(nil), customers...)
}

// Upsert overwrites the entry matching the customer's phone, or appends
// it as new.
func (s *CustomerStore) Upsert(customer models.Customer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.customers {
		if s.customers[i].Phone == customer.Phone {
			s.customers[i] = customer
			return
		}
	}
	s.customers = append(s.customers, customer)
}

func (s *CustomerStore) List() []models.Customer {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Customer(nil), s.customers...)
}

func (s *CustomerStore) Get(phone string) (models.Customer, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, customer := range s.customers {
		if customer.Phone == phone {
			return customer, true
		}
	}
	return models.Customer{}, false
}

// --- Flows ---

func (c *Container) LoadCustomers(ctx context.Context, search string) ([]models.Customer, error) {
	customers, err := c.backend.ListCustomers(ctx, search)
	if err != nil {
		return nil, err
	}
	c.Customers.Replace(customers)
	return c.Customers.List(), nil
}

func (c *Container) GetCustomer(ctx context.Context, phone string) (models.Customer, error) {
	if customer, ok := c.Customers.Get(phone); ok {
		return customer, nil
	}
	customer, err := c.backend.GetCustomer(ctx, phone)
	if err != nil {
		return models.Customer{}, err
	}
	c.Customers.Upsert(customer)
	return customer, nil
}

// SaveCustomer persists an edit and overwrites the local copy with the
// confirmed record. No optimistic merge: the local copy changes only on
// success.
func (c *Container) SaveCustomer(ctx context.Context, phone string, update models.CustomerUpdate) (models.Customer, error) {
	customer, err := c.backend.UpdateCustomer(ctx, phone, update)
	if err != nil {
		return models.Customer{}, err
	}
	c.Customers.Upsert(customer)
	return customer, nil
}
