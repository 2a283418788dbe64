package channel

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/askohli/hunt/internal/events"
)

// State is the connection state derived from the latest lifecycle event.
type State string

const (
	StateConnecting   State = "connecting"
	StateConnected    State = "connected"
	StateDisconnected State = "disconnected"
	StateReconnecting State = "reconnecting"
	StateFailed       State = "failed"
)

// TransportError reports a recoverable channel failure. Workflow runs are
// never mutated on a transport error; they stay live until an explicit
// terminal event arrives or the caller starts a fresh run.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("channel %s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// DefaultReconnectAttempts bounds the reconnection loop.
const DefaultReconnectAttempts = 10

// DefaultReconnectDelay is the fixed inter-attempt delay. No jitter or backoff.
const DefaultReconnectDelay = 1000 * time.Millisecond

// Config holds channel manager settings.
type Config struct {
	// BaseAddress is the remote service root, e.g. "http://localhost:7860".
	BaseAddress string

	// Path is the event stream endpoint (default: "/events").
	Path string

	// MaxReconnectAttempts bounds reconnection (default: 10).
	MaxReconnectAttempts int

	// ReconnectDelay is the fixed delay between attempts (default: 1s).
	ReconnectDelay time.Duration

	// HTTPClient overrides the default client. The stream request itself
	// carries no timeout; it is expected to stay open indefinitely.
	HTTPClient *http.Client
}

// Manager owns the single persistent event-channel connection for the
// process. It decodes server-sent events at the boundary, stamps receipt
// timestamps via the bus, and drives bounded reconnection. After the attempt
// budget is exhausted the state is Failed permanently; recovering requires
// constructing a new Manager.
type Manager struct {
	cfg Config
	bus *events.Bus

	mu         sync.RWMutex
	state      State
	statusLine string
	attempts   int
	lastErr    error
	started    bool

	done chan struct{}
}

// NewManager creates a manager that will connect when Start is called.
func NewManager(bus *events.Bus, cfg Config) *Manager {
	if cfg.Path == "" {
		cfg.Path = "/events"
	}
	if cfg.MaxReconnectAttempts <= 0 {
		cfg.MaxReconnectAttempts = DefaultReconnectAttempts
	}
	if cfg.ReconnectDelay <= 0 {
		cfg.ReconnectDelay = DefaultReconnectDelay
	}
	if cfg.HTTPClient == nil {
		cfg.HTTPClient = &http.Client{}
	}

	return &Manager{
		cfg:        cfg,
		bus:        bus,
		state:      StateConnecting,
		statusLine: "waiting to connect",
		done:       make(chan struct{}),
	}
}

// Start establishes the connection and runs the read loop in a goroutine.
// A manager connects exactly once; calling Start twice is an error.
func (m *Manager) Start(ctx context.Context) error {
	m.mu.Lock()
	if m.started {
		m.mu.Unlock()
		return fmt.Errorf("channel manager already started")
	}
	m.started = true
	m.mu.Unlock()

	go m.run(ctx)
	return nil
}

// Done is closed when the read loop has exited, either because the context
// was cancelled or because reconnection attempts were exhausted.
func (m *Manager) Done() <-chan struct{} {
	return m.done
}

// State returns the current connection state.
func (m *Manager) State() State {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.state
}

// StatusLine returns the human-readable status for the latest transition.
func (m *Manager) StatusLine() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.statusLine
}

// LastError returns the most recent transport error, or nil.
func (m *Manager) LastError() error {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.lastErr
}

func (m *Manager) run(ctx context.Context) {
	defer close(m.done)

	m.transition(StateConnecting, "connecting to "+m.cfg.BaseAddress)

	for {
		body, err := m.dial(ctx)
		if err != nil {
			if ctx.Err() != nil {
				m.transition(StateDisconnected, "channel closed")
				return
			}
			m.setError(err)
			m.bus.Emit(events.Event{Type: events.ConnectError, Error: err.Error()})
			if !m.awaitReconnect(ctx) {
				return
			}
			continue
		}

		m.mu.Lock()
		m.attempts = 0
		m.mu.Unlock()
		m.transition(StateConnected, "connected to "+m.cfg.BaseAddress)

		err = m.readStream(ctx, body)
		body.Close()

		if ctx.Err() != nil {
			m.transition(StateDisconnected, "channel closed")
			return
		}

		terr := &TransportError{Op: "read", Err: err}
		m.setError(terr)
		m.transition(StateDisconnected, "connection lost")
		m.bus.Emit(events.Event{Type: events.Disconnect, Error: terr.Error()})

		if !m.awaitReconnect(ctx) {
			return
		}
	}
}

// awaitReconnect accounts one reconnection attempt and waits the fixed delay.
// Returns false when the budget is exhausted (state becomes Failed) or the
// context is cancelled.
func (m *Manager) awaitReconnect(ctx context.Context) bool {
	m.mu.Lock()
	m.attempts++
	attempt := m.attempts
	m.mu.Unlock()

	max := m.cfg.MaxReconnectAttempts
	if attempt > max {
		m.transition(StateFailed, fmt.Sprintf("gave up after %d reconnect attempts", max))
		m.bus.Emit(events.Event{
			Type:    events.ReconnectFailed,
			Error:   fmt.Sprintf("reconnect failed after %d attempts", max),
			Payload: events.ReconnectPayload{Attempt: max, Max: max},
		})
		return false
	}

	m.transition(StateReconnecting, fmt.Sprintf("reconnecting (attempt %d/%d)", attempt, max))
	m.bus.Emit(events.Event{
		Type:    events.ReconnectAttempt,
		Payload: events.ReconnectPayload{Attempt: attempt, Max: max},
	})

	select {
	case <-ctx.Done():
		m.transition(StateDisconnected, "channel closed")
		return false
	case <-time.After(m.cfg.ReconnectDelay):
		return true
	}
}

func (m *Manager) transition(s State, status string) {
	m.mu.Lock()
	m.state = s
	m.statusLine = status
	m.mu.Unlock()
}

func (m *Manager) setError(err error) {
	m.mu.Lock()
	m.lastErr = err
	m.mu.Unlock()
}
