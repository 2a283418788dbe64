package workflow

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/askohli/hunt/internal/events"
	"github.com/askohli/hunt/internal/search"
)

// Requester sends the initiating request/response call for a run. It returns
// an optional acknowledgement message for the log. Progress and the final
// result never come back through here; they arrive on the event channel.
type Requester[P any] func(ctx context.Context, params P) (ack string, err error)

// Validator is implemented by request parameter types.
type Validator interface {
	Validate() error
}

// Machine drives one search workflow from initiation to terminal outcome.
// It is generic over the parameter and result types; one instance exists per
// kind and owns all writes to that kind's log and stored result.
//
// The server echoes no correlation token, so channel events are attributed to
// the active run by kind alone. Request completions, which the client does
// control, carry the run token and are dropped when stale, so a superseded
// run can never fail or narrate its successor.
type Machine[P Validator, R any] struct {
	kind    search.Kind
	request Requester[P]
	commit  func(R)
	clear   func()

	mu     sync.Mutex
	status Status
	token  uint64
	log    []LogEntry
	result *R
	errMsg string
}

// NewMachine creates an idle machine. commit is invoked with the full result
// on a completed run; clear is invoked when a fresh run resets prior state.
// Either may be nil.
func NewMachine[P Validator, R any](kind search.Kind, request Requester[P], commit func(R), clear func()) *Machine[P, R] {
	return &Machine[P, R]{
		kind:    kind,
		request: request,
		commit:  commit,
		clear:   clear,
		status:  StatusIdle,
	}
}

// Kind returns the workflow kind this machine drives.
func (m *Machine[P, R]) Kind() search.Kind {
	return m.kind
}

// Start begins a fresh run. Invalid params fail fast with a ValidationError
// before any state is touched or any network call is made. Otherwise the
// prior run's log, result, and error are reset atomically, the run token is
// bumped, and the initiating request is dispatched; its completion arrives
// asynchronously.
func (m *Machine[P, R]) Start(ctx context.Context, params P) (uint64, error) {
	if err := params.Validate(); err != nil {
		return 0, err
	}

	m.mu.Lock()
	m.token++
	token := m.token
	m.status = StatusRequesting
	m.log = nil
	m.result = nil
	m.errMsg = ""
	m.mu.Unlock()

	if m.clear != nil {
		m.clear()
	}

	go func() {
		ack, err := m.request(ctx, params)
		if err != nil {
			m.failRequest(token, err.Error())
			return
		}
		if ack != "" {
			m.appendAck(token, ack)
		}
	}()

	return token, nil
}

// HandleEvent applies one channel event to the machine. Events for other
// kinds are ignored; events arriving outside an active run are dropped.
// Thought narration is appended to the log of an active run regardless of
// kind tagging.
func (m *Machine[P, R]) HandleEvent(e events.Event) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if e.Type == events.Thought {
		if !m.status.InProgress() {
			return
		}
		if p, ok := e.Payload.(events.ThoughtPayload); ok {
			m.log = append(m.log, LogEntry{Agent: p.Agent, Message: p.Message, ReceivedAt: e.ReceivedAt})
		}
		return
	}

	if e.Kind != m.kind || !m.status.InProgress() {
		return
	}

	switch {
	case e.IsTerminal() && !e.IsFailure():
		result, ok := e.Payload.(R)
		if !ok {
			return
		}
		if !CanTransition(m.status, StatusCompleted) {
			return
		}
		m.result = &result
		m.status = StatusCompleted
		if m.commit != nil {
			m.commit(result)
		}

	case e.IsTerminal():
		if !CanTransition(m.status, StatusFailed) {
			return
		}
		// Keep the partial log; only the status and message change.
		m.status = StatusFailed
		m.errMsg = e.Error

	default:
		if m.status == StatusRequesting {
			m.status = StatusStreaming
		}
		m.log = append(m.log, narrate(e))
	}
}

// Status returns the current run status.
func (m *Machine[P, R]) Status() Status {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.status
}

// Token returns the current run token.
func (m *Machine[P, R]) Token() uint64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.token
}

// Err returns the surfaced error message for the current run, if any.
func (m *Machine[P, R]) Err() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.errMsg
}

// Snapshot returns a copy of the current run.
func (m *Machine[P, R]) Snapshot() Run[R] {
	m.mu.Lock()
	defer m.mu.Unlock()

	log := make([]LogEntry, len(m.log))
	copy(log, m.log)

	run := Run[R]{
		Kind:   m.kind,
		Status: m.status,
		Token:  m.token,
		Log:    log,
		Err:    m.errMsg,
	}
	if m.result != nil {
		r := *m.result
		run.Result = &r
	}
	return run
}

// failRequest records a failed initiating call. Stale completions from a
// superseded run are dropped by token.
func (m *Machine[P, R]) failRequest(token uint64, msg string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if token != m.token || !m.status.InProgress() {
		return
	}
	m.status = StatusFailed
	m.errMsg = msg
}

// appendAck records the server's acknowledgement message, dropped when stale.
func (m *Machine[P, R]) appendAck(token uint64, ack string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if token != m.token || !m.status.InProgress() {
		return
	}
	m.log = append(m.log, LogEntry{Agent: "server", Message: ack, ReceivedAt: time.Now()})
}

// narrate converts a progress event payload into a log entry.
func narrate(e events.Event) LogEntry {
	entry := LogEntry{Agent: "server", ReceivedAt: e.ReceivedAt}

	switch p := e.Payload.(type) {
	case events.SearchStartedPayload:
		entry.Message = p.Message
	case events.SourceCompletedPayload:
		entry.Message = fmt.Sprintf("%s completed: %d jobs (%d total)", p.Source, p.JobCount, p.TotalSoFar)
	case events.InterviewStartedPayload:
		entry.Message = p.Message
	case events.QuestionPreviewPayload:
		entry.Message = "question found: " + p.Question
	case events.SolutionPreviewPayload:
		entry.Message = "solution ready: " + p.Solution
	default:
		entry.Message = string(e.Type)
	}
	return entry
}
