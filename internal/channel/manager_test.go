package channel

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/askohli/hunt/internal/events"
)

// collector records bus events for assertions.
type collector struct {
	mu     sync.Mutex
	events []events.Event
}

func (c *collector) handler() events.Handler {
	return func(e events.Event) {
		c.mu.Lock()
		defer c.mu.Unlock()
		c.events = append(c.events, e)
	}
}

func (c *collector) types() []events.EventType {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]events.EventType, len(c.events))
	for i, e := range c.events {
		out[i] = e.Type
	}
	return out
}

func (c *collector) snapshot() []events.Event {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]events.Event, len(c.events))
	copy(out, c.events)
	return out
}

func (c *collector) count(t events.EventType) int {
	n := 0
	for _, et := range c.types() {
		if et == t {
			n++
		}
	}
	return n
}

func sseServer(t *testing.T, frames []string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/events", r.URL.Path)
		w.Header().Set("Content-Type", "text/event-stream")
		w.WriteHeader(http.StatusOK)
		flusher := w.(http.Flusher)
		for _, frame := range frames {
			fmt.Fprint(w, frame)
			flusher.Flush()
		}
	}))
}

func TestManager_ReceivesEventsInOrder(t *testing.T) {
	srv := sseServer(t, []string{
		"event: connected\ndata: {\"message\":\"ready\"}\n\n",
		"event: thought\ndata: {\"agent\":\"System\",\"message\":\"working\"}\n\n",
		"event: search_started\ndata: {\"message\":\"go\",\"job_role\":\"AI Engineer\",\"location\":\"Pune\"}\n\n",
	})
	defer srv.Close()

	bus := events.NewBus()
	col := &collector{}
	bus.Subscribe(col.handler())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	m := NewManager(bus, Config{BaseAddress: srv.URL, ReconnectDelay: 5 * time.Millisecond, MaxReconnectAttempts: 1})
	require.NoError(t, m.Start(ctx))

	require.Eventually(t, func() bool {
		return col.count(events.SearchStarted) == 1
	}, time.Second, 5*time.Millisecond)

	snap := col.snapshot()
	got := []events.EventType{snap[0].Type, snap[1].Type, snap[2].Type}
	assert.Equal(t, []events.EventType{events.Connected, events.Thought, events.SearchStarted}, got)

	for _, e := range snap[:3] {
		assert.False(t, e.ReceivedAt.IsZero(), "receipt timestamp must be stamped")
	}
}

func TestManager_DropsMalformedEvents(t *testing.T) {
	srv := sseServer(t, []string{
		"event: thought\ndata: {\"agent\":\"A\"}\n\n",              // missing message
		"event: mystery\ndata: {}\n\n",                             // unknown name
		"data: {\"agent\":\"A\",\"message\":\"unnamed\"}\n\n",      // no event name
		"event: thought\ndata: {\"agent\":\"A\",\"message\":\"ok\"}\n\n",
	})
	defer srv.Close()

	bus := events.NewBus()
	col := &collector{}
	bus.Subscribe(col.handler())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	m := NewManager(bus, Config{BaseAddress: srv.URL, ReconnectDelay: 5 * time.Millisecond, MaxReconnectAttempts: 1})
	require.NoError(t, m.Start(ctx))

	require.Eventually(t, func() bool {
		return col.count(events.Thought) == 1
	}, time.Second, 5*time.Millisecond)

	assert.Equal(t, 1, col.count(events.Thought), "malformed events must be dropped, not emitted")
}

func TestManager_DisconnectSurfacesTransportError(t *testing.T) {
	srv := sseServer(t, []string{
		"event: connected\ndata: {\"message\":\"ready\"}\n\n",
	})
	defer srv.Close()

	bus := events.NewBus()
	col := &collector{}
	bus.Subscribe(col.handler())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	m := NewManager(bus, Config{BaseAddress: srv.URL, ReconnectDelay: time.Hour})
	require.NoError(t, m.Start(ctx))

	// Server closes the stream after one event; a disconnect must surface
	// and the manager must move into its (stalled) reconnect wait.
	require.Eventually(t, func() bool {
		return col.count(events.Disconnect) == 1 && col.count(events.ReconnectAttempt) == 1
	}, time.Second, 5*time.Millisecond)

	var terr *TransportError
	require.ErrorAs(t, m.LastError(), &terr)
	assert.Equal(t, StateReconnecting, m.State())
}

func TestManager_ReconnectExhaustionIsPermanent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	bus := events.NewBus()
	col := &collector{}
	bus.Subscribe(col.handler())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	m := NewManager(bus, Config{
		BaseAddress:          srv.URL,
		MaxReconnectAttempts: 3,
		ReconnectDelay:       time.Millisecond,
	})
	require.NoError(t, m.Start(ctx))

	select {
	case <-m.Done():
	case <-time.After(2 * time.Second):
		t.Fatal("manager did not give up")
	}

	assert.Equal(t, StateFailed, m.State())
	assert.Equal(t, 3, col.count(events.ReconnectAttempt))
	assert.Equal(t, 1, col.count(events.ReconnectFailed))
	assert.Contains(t, m.StatusLine(), "gave up")
}

func TestManager_ReconnectsAfterDrop(t *testing.T) {
	var mu sync.Mutex
	conns := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		conns++
		n := conns
		mu.Unlock()

		w.Header().Set("Content-Type", "text/event-stream")
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, "event: thought\ndata: {\"agent\":\"A\",\"message\":\"conn %d\"}\n\n", n)
		w.(http.Flusher).Flush()
		if n > 1 {
			// Keep the second connection open until the client goes away.
			<-r.Context().Done()
		}
	}))
	defer srv.Close()

	bus := events.NewBus()
	col := &collector{}
	bus.Subscribe(col.handler())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	m := NewManager(bus, Config{BaseAddress: srv.URL, ReconnectDelay: time.Millisecond})
	require.NoError(t, m.Start(ctx))

	require.Eventually(t, func() bool {
		return col.count(events.Thought) >= 2
	}, 2*time.Second, 5*time.Millisecond)

	assert.Equal(t, StateConnected, m.State())
	assert.GreaterOrEqual(t, col.count(events.ReconnectAttempt), 1)
}

func TestManager_StartTwice(t *testing.T) {
	bus := events.NewBus()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	srv := sseServer(t, nil)
	defer srv.Close()

	m := NewManager(bus, Config{BaseAddress: srv.URL, ReconnectDelay: time.Millisecond, MaxReconnectAttempts: 1})
	require.NoError(t, m.Start(ctx))
	require.Error(t, m.Start(ctx), "a manager owns exactly one connection")
}
