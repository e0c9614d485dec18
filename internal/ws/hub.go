package ws

import (
	"encoding/json"
	"net/http"
	"sync"

	"whatsapp-dashboard/pkg/models"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // the dashboard UI may be served from another origin
	},
}

// Client represents a connected dashboard browser.
type Client struct {
	hub  *Hub
	conn *websocket.Conn
	send chan []byte
}

// eventBuffer bounds the queue of pending push events. A push to a
// full queue drops the event instead of blocking the producer; clients
// re-sync through the REST endpoints anyway.
const eventBuffer = 256

// Hub maintains the set of connected dashboard clients and pushes poll
// events to them. The client count doubles as the visibility signal:
// OnClientCount lets the caller stop polling while nobody is watching
// and resume when a browser connects. Pushes never block, so the hook
// may stop the producer directly even while a push is in flight.
type Hub struct {
	clients    map[*Client]bool
	broadcast  chan []byte
	register   chan *Client
	unregister chan *Client
	mu         sync.Mutex
	log        *zap.SugaredLogger

	// OnClientCount, when set, is invoked with the new client count
	// after every register/unregister. Set before Run.
	OnClientCount func(count int)
}

func NewHub(log *zap.SugaredLogger) *Hub {
	return &Hub{
		broadcast:  make(chan []byte, eventBuffer),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		clients:    make(map[*Client]bool),
		log:        log,
	}
}

func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client] = true
			count := len(h.clients)
			h.mu.Unlock()
			h.log.Debugw("dashboard client connected", "clients", count)
			if h.OnClientCount != nil {
				h.OnClientCount(count)
			}
		case client := <-h.unregister:
			h.mu.Lock()
			count := len(h.clients)
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
				count = len(h.clients)
			}
			h.mu.Unlock()
			h.log.Debugw("dashboard client disconnected", "clients", count)
			if h.OnClientCount != nil {
				h.OnClientCount(count)
			}
		case message := <-h.broadcast:
			h.mu.Lock()
			for client := range h.clients {
				select {
				case client.send <- message:
				default:
					close(client.send)
					delete(h.clients, client)
				}
			}
			h.mu.Unlock()
		}
	}
}

// ClientCount returns the number of connected dashboard clients.
func (h *Hub) ClientCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

type event struct {
	Type string      `json:"type"`
	Data interface{} `json:"data"`
}

func (h *Hub) broadcastEvent(eventType string, data interface{}) {
	payload, err := json.Marshal(event{Type: eventType, Data: data})
	if err != nil {
		h.log.Warnw("failed to marshal ws event", "type", eventType, "error", err)
		return
	}
	select {
	case h.broadcast <- payload:
	default:
		h.log.Debugw("ws event dropped, queue full", "type", eventType)
	}
}

// NotifyMessage pushes a newly polled incoming message to all clients.
func (h *Hub) NotifyMessage(msg models.Message) {
	h.broadcastEvent("new_message", msg)
}

// NotifyChat pushes a chat update to all clients.
func (h *Hub) NotifyChat(chat models.Chat) {
	h.broadcastEvent("chat_update", chat)
}

func (h *Hub) ServeWs(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.log.Warnw("websocket upgrade failed", "error", err)
		return
	}
	client := &Client{hub: h, conn: conn, send: make(chan []byte, 256)}
	h.register <- client

	go client.writePump()
	go client.readPump()
}

func (c *Client) readPump() {
	defer func() {
		c.hub.unregister <- c
		c.conn.Close()
	}()
	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			break
		}
		// Clients only listen; inbound frames are heartbeats at most.
	}
}

func (c *Client) writePump() {
	defer c.conn.Close()
	for message := range c.send {
		if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
			return
		}
	}
	c.conn.WriteMessage(websocket.CloseMessage, []byte{})
}
