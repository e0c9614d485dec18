package models

import "time"

// Order statuses. Transitions are operator-driven; the backend is the
// enforcement point, the dashboard submits whatever was selected.
const (
	OrderStatusPending    = "pending"
	OrderStatusConfirmed  = "confirmed"
	OrderStatusProcessing = "processing"
	OrderStatusShipped    = "shipped"
	OrderStatusDelivered  = "delivered"
	OrderStatusCancelled  = "cancelled"
)

// Payment statuses.
const (
	PaymentStatusUnpaid   = "unpaid"
	PaymentStatusPaid     = "paid"
	PaymentStatusRefunded = "refunded"
)

// OrderItem is one line of an order.
type OrderItem struct {
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}

// Order represents a customer order.
type Order struct {
	ID            string      `json:"id"`
	Phone         string      `json:"phone"`
	CustomerName  string      `json:"customer_name"`
	Status        string      `json:"status"`
	PaymentStatus string      `json:"payment_status"`
	Items         []OrderItem `json:"items"`
	Subtotal      float64     `json:"subtotal"`
	Shipping      float64     `json:"shipping"`
	Total         float64     `json:"total"`
	Notes         string      `json:"notes"`
	CreatedAt     time.Time   `json:"created_at"`
	UpdatedAt     time.Time   `json:"updated_at"`
}

// OrderUpdate is the payload for PUT /api/orders/{id}.
type OrderUpdate struct {
	Status        *string `json:"status,omitempty"`
	PaymentStatus *string `json:"payment_status,omitempty"`
	Notes         *string `json:"notes,omitempty"`
}
