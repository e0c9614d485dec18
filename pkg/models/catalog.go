package models

import "time"

// QuickReply is a canned response the operator can insert into a chat.
type QuickReply struct {
	ID        string    `json:"id"`
	Shortcut  string    `json:"shortcut"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}

// CreateQuickReplyRequest is the payload for POST /api/quick-replies.
type CreateQuickReplyRequest struct {
	Shortcut string `json:"shortcut"`
	Text     string `json:"text"`
}

// Product is a catalog item, read-only in the dashboard.
type Product struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Stock    int     `json:"stock"`
	ImageURL string  `json:"image_url,omitempty"`
	Active   bool    `json:"active"`
}

// Stats is the headline dashboard summary from GET /api/stats.
type Stats struct {
	TotalChats     int     `json:"total_chats"`
	UnreadChats    int     `json:"unread_chats"`
	MessagesToday  int     `json:"messages_today"`
	TotalCustomers int     `json:"total_customers"`
	PendingOrders  int     `json:"pending_orders"`
	RevenueToday   float64 `json:"revenue_today"`
}

// SeriesPoint is one bucket of a time series.
type SeriesPoint struct {
	Date  string  `json:"date"`
	Value float64 `json:"value"`
}

// Analytics is the payload of GET /api/analytics.
type Analytics struct {
	Messages    []SeriesPoint `json:"messages"`
	Orders      []SeriesPoint `json:"orders"`
	Revenue     []SeriesPoint `json:"revenue"`
	TopProducts []Product     `json:"top_products"`
}
