package backend

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"whatsapp-dashboard/pkg/models"
)

// --- Dashboard ---

func (c *Client) GetStats(ctx context.Context) (models.Stats, error) {
	var stats models.Stats
	err := c.sendRequest(ctx, http.MethodGet, "/api/stats", nil, nil, &stats)
	return stats, err
}

func (c *Client) GetAnalytics(ctx context.Context, days int) (models.Analytics, error) {
	query := url.Values{}
	if days > 0 {
		query.Set("days", strconv.Itoa(days))
	}
	var analytics models.Analytics
	err := c.sendRequest(ctx, http.MethodGet, "/api/analytics", query, nil, &analytics)
	return analytics, err
}

func (c *Client) ListProducts(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	err := c.sendRequest(ctx, http.MethodGet, "/api/products", nil, nil, &products)
	return products, err
}

// --- Chats ---

// ListChats fetches chats, optionally restricted to those updated since
// the given instant (zero means no filter).
func (c *Client) ListChats(ctx context.Context, updatedSince time.Time) ([]models.Chat, error) {
	query := url.Values{}
	if !updatedSince.IsZero() {
		query.Set("updated_since", updatedSince.UTC().Format(time.RFC3339Nano))
	}
	var chats []models.Chat
	err := c.sendRequest(ctx, http.MethodGet, "/api/chats", query, nil, &chats)
	return chats, err
}

func (c *Client) GetChat(ctx context.Context, phone string) (models.Chat, error) {
	var chat models.Chat
	err := c.sendRequest(ctx, http.MethodGet, "/api/chats/"+url.PathEscape(phone), nil, nil, &chat)
	return chat, err
}

func (c *Client) UpdateChat(ctx context.Context, phone string, update models.ChatUpdate) (models.Chat, error) {
	var chat models.Chat
	err := c.sendRequest(ctx, http.MethodPut, "/api/chats/"+url.PathEscape(phone), nil, update, &chat)
	return chat, err
}

// --- Messages ---

func (c *Client) ListMessages(ctx context.Context, phone string) ([]models.Message, error) {
	var messages []models.Message
	err := c.sendRequest(ctx, http.MethodGet, "/api/messages/"+url.PathEscape(phone), nil, nil, &messages)
	return messages, err
}

// RecentMessages fetches messages created since the given instant.
func (c *Client) RecentMessages(ctx context.Context, since time.Time) ([]models.Message, error) {
	query := url.Values{}
	if !since.IsZero() {
		query.Set("since", since.UTC().Format(time.RFC3339Nano))
	}
	var messages []models.Message
	err := c.sendRequest(ctx, http.MethodGet, "/api/messages/recent", query, nil, &messages)
	return messages, err
}

func (c *Client) SendMessage(ctx context.Context, req models.SendMessageRequest) (models.Message, error) {
	var msg models.Message
	err := c.sendRequest(ctx, http.MethodPost, "/api/messages/send", nil, req, &msg)
	return msg, err
}

func (c *Client) SendTemplate(ctx context.Context, req models.SendTemplateRequest) (models.Message, error) {
	var msg models.Message
	err := c.sendRequest(ctx, http.MethodPost, "/api/messages/template", nil, req, &msg)
	return msg, err
}

// --- Customers ---

func (c *Client) ListCustomers(ctx context.Context, search string) ([]models.Customer, error) {
	query := url.Values{}
	if search != "" {
		query.Set("search", search)
	}
	var customers []models.Customer
	err := c.sendRequest(ctx, http.MethodGet, "/api/customers", query, nil, &customers)
	return customers, err
}

func (c *Client) GetCustomer(ctx context.Context, phone string) (models.Customer, error) {
	var customer models.Customer
	err := c.sendRequest(ctx, http.MethodGet, "/api/customers/"+url.PathEscape(phone), nil, nil, &customer)
	return customer, err
}

func (c *Client) UpdateCustomer(ctx context.Context, phone string, update models.CustomerUpdate) (models.Customer, error) {
	var customer models.Customer
	err := c.sendRequest(ctx, http.MethodPut, "/api/customers/"+url.PathEscape(phone), nil, update, &customer)
	return customer, err
}

func (c *Client) CustomerLabels(ctx context.Context) ([]string, error) {
	var labels []string
	err := c.sendRequest(ctx, http.MethodGet, "/api/customers/labels", nil, nil, &labels)
	return labels, err
}

func (c *Client) CustomerSegments(ctx context.Context) ([]models.Segment, error) {
	var segments []models.Segment
	err := c.sendRequest(ctx, http.MethodGet, "/api/customers/segments", nil, nil, &segments)
	return segments, err
}

// ExportCustomers returns the backend's customer CSV export verbatim.
func (c *Client) ExportCustomers(ctx context.Context) ([]byte, error) {
	return c.fetchBlob(ctx, "/api/customers/export")
}

// --- Orders ---

func (c *Client) ListOrders(ctx context.Context, status string) ([]models.Order, error) {
	query := url.Values{}
	if status != "" {
		query.Set("status", status)
	}
	var orders []models.Order
	err := c.sendRequest(ctx, http.MethodGet, "/api/orders", query, nil, &orders)
	return orders, err
}

func (c *Client) UpdateOrder(ctx context.Context, id string, update models.OrderUpdate) (models.Order, error) {
	var order models.Order
	err := c.sendRequest(ctx, http.MethodPut, "/api/orders/"+url.PathEscape(id), nil, update, &order)
	return order, err
}

func (c *Client) ExportOrders(ctx context.Context) ([]byte, error) {
	return c.fetchBlob(ctx, "/api/orders/export")
}

// --- Quick replies ---

func (c *Client) ListQuickReplies(ctx context.Context) ([]models.QuickReply, error) {
	var replies []models.QuickReply
	err := c.sendRequest(ctx, http.MethodGet, "/api/quick-replies", nil, nil, &replies)
	return replies, err
}

func (c *Client) CreateQuickReply(ctx context.Context, req models.CreateQuickReplyRequest) (models.QuickReply, error) {
	var reply models.QuickReply
	err := c.sendRequest(ctx, http.MethodPost, "/api/quick-replies", nil, req, &reply)
	return reply, err
}

func (c *Client) DeleteQuickReply(ctx context.Context, id string) error {
	return c.sendRequest(ctx, http.MethodDelete, "/api/quick-replies/"+url.PathEscape(id), nil, nil, nil)
}

// --- Broadcasts ---

func (c *Client) ListBroadcasts(ctx context.Context) ([]models.Broadcast, error) {
	var broadcasts []models.Broadcast
	err := c.sendRequest(ctx, http.MethodGet, "/api/broadcasts", nil, nil, &broadcasts)
	return broadcasts, err
}

func (c *Client) CreateBroadcast(ctx context.Context, req models.CreateBroadcastRequest) (models.Broadcast, error) {
	var broadcast models.Broadcast
	err := c.sendRequest(ctx, http.MethodPost, "/api/broadcasts", nil, req, &broadcast)
	return broadcast, err
}

// EstimateBroadcast asks the backend how many recipients the given
// targeting criteria would reach.
func (c *Client) EstimateBroadcast(ctx context.Context, target models.BroadcastTarget) (int, error) {
	var resp models.EstimateResponse
	err := c.sendRequest(ctx, http.MethodPost, "/api/broadcasts/estimate", nil, target, &resp)
	return resp.Count, err
}

func (c *Client) SendBroadcast(ctx context.Context, id string) (models.Broadcast, error) {
	var broadcast models.Broadcast
	err := c.sendRequest(ctx, http.MethodPost, "/api/broadcasts/"+url.PathEscape(id)+"/send", nil, nil, &broadcast)
	return broadcast, err
}
