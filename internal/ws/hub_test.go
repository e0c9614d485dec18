package ws

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"whatsapp-dashboard/internal/backend"
	"whatsapp-dashboard/internal/poller"
	"whatsapp-dashboard/pkg/models"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func newTestHub(t *testing.T) (*Hub, string) {
	t.Helper()
	hub := NewHub(zap.NewNop().Sugar())
	server := httptest.NewServer(http.HandlerFunc(hub.ServeWs))
	t.Cleanup(server.Close)
	return hub, "ws" + strings.TrimPrefix(server.URL, "http")
}

func dial(t *testing.T, url string) *websocket.Conn {
	t.Helper()
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("websocket dial failed: %v", err)
	}
	return conn
}

func waitCount(t *testing.T, counts <-chan int) int {
	t.Helper()
	select {
	case n := <-counts:
		return n
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for a client count change")
		return -1
	}
}

func TestHub_ClientCountHookFiresOnConnectAndDisconnect(t *testing.T) {
	hub, url := newTestHub(t)
	counts := make(chan int, 4)
	hub.OnClientCount = func(n int) { counts <- n }
	go hub.Run()

	conn := dial(t, url)
	assert.Equal(t, 1, waitCount(t, counts))
	assert.Equal(t, 1, hub.ClientCount())

	conn.Close()
	assert.Equal(t, 0, waitCount(t, counts))
	assert.Equal(t, 0, hub.ClientCount())
}

func TestHub_NotifyMessageReachesClient(t *testing.T) {
	hub, url := newTestHub(t)
	counts := make(chan int, 4)
	hub.OnClientCount = func(n int) { counts <- n }
	go hub.Run()

	conn := dial(t, url)
	defer conn.Close()
	waitCount(t, counts)

	hub.NotifyMessage(models.Message{ID: "m1", Phone: "123", Direction: models.DirectionIncoming})

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, payload, err := conn.ReadMessage()
	assert.NoError(t, err)

	var evt struct {
		Type string         `json:"type"`
		Data models.Message `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(payload, &evt))
	assert.Equal(t, "new_message", evt.Type)
	assert.Equal(t, "m1", evt.Data.ID)
}

func TestHub_NotifyNeverBlocksSender(t *testing.T) {
	hub := NewHub(zap.NewNop().Sugar())

	// No Run loop draining the queue: a stalled hub must never stall
	// whoever is pushing events into it.
	done := make(chan struct{})
	go func() {
		for i := 0; i < eventBuffer*2; i++ {
			hub.NotifyMessage(models.Message{ID: "m1"})
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("notify blocked with nothing reading the event queue")
	}
}

// Exercises the production wiring: the client count hook starts the
// synchronizer on the first connection and stops it on the last
// disconnect, from inside the hub loop, while polls are dispatching
// events back into the hub.
func TestHub_ClientCountDrivesSynchronizer(t *testing.T) {
	backendSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/messages/recent":
			json.NewEncoder(w).Encode([]models.Message{
				{ID: "m1", Phone: "123", Direction: models.DirectionIncoming, Timestamp: time.Now()},
			})
		case "/api/chats":
			json.NewEncoder(w).Encode([]models.Chat{})
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(backendSrv.Close)

	hub, url := newTestHub(t)
	client := backend.NewClient(backendSrv.URL, nil, 5*time.Second, zap.NewNop().Sugar())
	synchronizer := poller.New(client, 10*time.Millisecond, poller.Callbacks{
		OnIncomingMessage: hub.NotifyMessage,
		OnChatUpdate:      hub.NotifyChat,
	}, zap.NewNop().Sugar())
	hub.OnClientCount = func(count int) {
		if count == 0 {
			synchronizer.Stop()
		} else {
			synchronizer.Start()
		}
	}
	go hub.Run()

	conn := dial(t, url)
	assert.Eventually(t, synchronizer.Running, 2*time.Second, 5*time.Millisecond)
	assert.Eventually(t, synchronizer.Connected, 2*time.Second, 5*time.Millisecond)

	// Polls are now pushing new_message events into the hub. Dropping
	// the last client stops the synchronizer from the hub loop; that
	// stop must complete even with a poll mid-dispatch, and the loop
	// must come back to serve new connections.
	conn.Close()
	assert.Eventually(t, func() bool { return !synchronizer.Running() }, 2*time.Second, 5*time.Millisecond)

	conn2 := dial(t, url)
	defer conn2.Close()
	assert.Eventually(t, synchronizer.Running, 2*time.Second, 5*time.Millisecond)
}
