package state

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"whatsapp-dashboard/internal/backend"

	"go.uber.org/zap"
)

// requestCounter records every request the fake backend receives, keyed
// by "METHOD /path".
type requestCounter struct {
	mu     sync.Mutex
	counts map[string]int
}

func (rc *requestCounter) inc(key string) {
	rc.mu.Lock()
	defer rc.mu.Unlock()
	rc.counts[key]++
}

func (rc *requestCounter) get(key string) int {
	rc.mu.Lock()
	defer rc.mu.Unlock()
	return rc.counts[key]
}

func (rc *requestCounter) total() int {
	rc.mu.Lock()
	defer rc.mu.Unlock()
	sum := 0
	for _, n := range rc.counts {
		sum += n
	}
	return sum
}

// newTestContainer wires a container against a fake backend server.
func newTestContainer(t *testing.T, handler http.HandlerFunc) (*Container, *requestCounter) {
	t.Helper()
	counter := &requestCounter{counts: make(map[string]int)}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		counter.inc(r.Method + " " + r.URL.Path)
		handler(w, r)
	}))
	t.Cleanup(server.Close)

	client := backend.NewClient(server.URL, nil, 5*time.Second, zap.NewNop().Sugar())
	return NewContainer(client, zap.NewNop().Sugar()), counter
}

// deadContainer returns a container whose backend URL refuses
// connections, for simulating network errors.
func deadContainer(t *testing.T) *Container {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	client := backend.NewClient(server.URL, nil, time.Second, zap.NewNop().Sugar())
	return NewContainer(client, zap.NewNop().Sugar())
}

func ts(sec int64) time.Time {
	return time.Unix(sec, 0).UTC()
}
