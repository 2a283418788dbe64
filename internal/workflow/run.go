package workflow

import (
	"time"

	"github.com/askohli/hunt/internal/search"
)

// LogEntry is one progress-narration event scoped to a run. The timestamp is
// the client-assigned receipt time; server clocks are not trusted for order.
type LogEntry struct {
	Agent      string
	Message    string
	ReceivedAt time.Time
}

// Run is an immutable snapshot of one workflow attempt.
type Run[R any] struct {
	Kind   search.Kind
	Status Status

	// Token is the client-side monotonic run token. Request completions are
	// filtered by it so a superseded run can never fail its successor.
	Token uint64

	// Log is the append-only event log for this run, in arrival order.
	Log []LogEntry

	// Result is set only when Status is Completed.
	Result *R

	// Err is the surfaced error message, verbatim from the server for
	// workflow failures. Cleared by the next start().
	Err string
}
