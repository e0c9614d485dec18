package models

import "time"

// Customer represents a customer record keyed by phone number.
type Customer struct {
	Phone      string    `json:"phone"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Address    string    `json:"address"`
	City       string    `json:"city"`
	PostalCode string    `json:"postal_code"`
	Segment    string    `json:"segment"`
	Labels     LabelList `json:"labels"`
	OrderCount int       `json:"order_count"`
	TotalSpend float64   `json:"total_spend"`
	Notes      string    `json:"notes"`
	CreatedAt  time.Time `json:"created_at"`
}

// CustomerUpdate is the payload for PUT /api/customers/{phone}.
// Aggregates (segment, order count, spend) are backend-computed and not
// editable from the dashboard.
type CustomerUpdate struct {
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Address    string    `json:"address"`
	City       string    `json:"city"`
	PostalCode string    `json:"postal_code"`
	Labels     LabelList `json:"labels"`
	Notes      string    `json:"notes"`
}

// Segment is a backend-computed customer classification.
type Segment struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Count int    `json:"count"`
}
