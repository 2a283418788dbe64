package events

import (
	"fmt"
	"strings"
	"time"

	"github.com/askohli/hunt/internal/search"
)

// Event is a single occurrence delivered over the event channel, already
// decoded into its typed payload. ReceivedAt is assigned from the local clock
// on receipt; server timestamps are never trusted for ordering.
type Event struct {
	// Type identifies what happened (the wire event name).
	Type EventType

	// Kind is the workflow the event is tagged for, derived from Type.
	// Empty for channel lifecycle and session events.
	Kind search.Kind

	// ReceivedAt is when the client received the event (set by the bus on emit).
	ReceivedAt time.Time

	// Payload contains event-specific data (type varies by event).
	Payload any

	// Error contains the error message if this is a failure event.
	Error string
}

// EventType is a string constant identifying the event category.
// Server-sent names match the remote service contract verbatim.
type EventType string

// Channel lifecycle events, synthesized client-side by the channel manager.
const (
	Disconnect       EventType = "disconnect"
	ConnectError     EventType = "connect_error"
	ReconnectAttempt EventType = "reconnect_attempt"
	ReconnectFailed  EventType = "reconnect_failed"
)

// Session events
const (
	// Connected is the server's session acknowledgement after the channel opens.
	Connected EventType = "connected"

	// Thought is free-form progress narration from a named agent. It is
	// appended to whichever run is active but is not itself a state transition.
	Thought EventType = "thought"
)

// Job workflow events
const (
	SearchStarted   EventType = "search_started"
	SourceCompleted EventType = "source_completed"
	SearchCompleted EventType = "search_completed"
	SearchFailed    EventType = "search_failed"
)

// Interview workflow events
const (
	InterviewSearchStarted   EventType = "interview_search_started"
	QuestionExtracted        EventType = "question_extracted"
	SolutionGenerated        EventType = "solution_generated"
	InterviewSearchCompleted EventType = "interview_search_completed"
	InterviewSearchFailed    EventType = "interview_search_failed"
)

// KindFor returns the workflow kind an event type is tagged for, or "" when
// the event is not scoped to a workflow.
func KindFor(t EventType) search.Kind {
	switch t {
	case SearchStarted, SourceCompleted, SearchCompleted, SearchFailed:
		return search.KindJob
	case InterviewSearchStarted, QuestionExtracted, SolutionGenerated,
		InterviewSearchCompleted, InterviewSearchFailed:
		return search.KindInterview
	}
	return ""
}

// IsTerminal returns true if this event ends a workflow run.
func (e Event) IsTerminal() bool {
	switch e.Type {
	case SearchCompleted, SearchFailed, InterviewSearchCompleted, InterviewSearchFailed:
		return true
	}
	return false
}

// IsFailure returns true if this is a failure event type.
func (e Event) IsFailure() bool {
	return strings.HasSuffix(string(e.Type), "_failed") || e.Type == ConnectError
}

// String returns a human-readable representation of the event.
func (e Event) String() string {
	var parts []string
	parts = append(parts, fmt.Sprintf("[%s]", e.Type))
	if e.Kind != "" {
		parts = append(parts, string(e.Kind))
	}
	if e.Error != "" {
		parts = append(parts, "error="+e.Error)
	}
	return strings.Join(parts, " ")
}

// SessionPayload is the payload of the "connected" session acknowledgement.
type SessionPayload struct {
	Message  string   `json:"message"`
	Features []string `json:"features,omitempty"`
}

// ThoughtPayload is the payload of a "thought" narration event.
type ThoughtPayload struct {
	Agent   string `json:"agent"`
	Message string `json:"message"`
}

// SearchStartedPayload announces a job search run on the server.
type SearchStartedPayload struct {
	Message  string `json:"message"`
	JobRole  string `json:"job_role"`
	Location string `json:"location"`
}

// SourceCompletedPayload reports partial counts as one source finishes.
type SourceCompletedPayload struct {
	Source     string `json:"source"`
	JobCount   int    `json:"job_count"`
	TotalSoFar int    `json:"total_so_far"`
}

// InterviewStartedPayload announces an interview-question search run.
type InterviewStartedPayload struct {
	Message     string `json:"message"`
	Domain      string `json:"domain"`
	Company     string `json:"company,omitempty"`
	Difficulty  string `json:"difficulty,omitempty"`
	TargetCount int    `json:"target_count,omitempty"`
}

// QuestionPreviewPayload is a preview of a question as it is extracted.
type QuestionPreviewPayload struct {
	Question   string `json:"question"`
	Source     string `json:"source,omitempty"`
	Company    string `json:"company,omitempty"`
	Difficulty string `json:"difficulty,omitempty"`
}

// SolutionPreviewPayload is a preview of a generated solution.
type SolutionPreviewPayload struct {
	QuestionID string `json:"question_id,omitempty"`
	Solution   string `json:"solution"`
}

// ReconnectPayload reports a bounded reconnection attempt.
type ReconnectPayload struct {
	Attempt int `json:"attempt"`
	Max     int `json:"max"`
}
