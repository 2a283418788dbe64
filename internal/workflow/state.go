package workflow

// Status represents the current state of a workflow run
type Status string

const (
	StatusIdle       Status = "idle"
	StatusRequesting Status = "requesting"
	StatusStreaming  Status = "streaming"
	StatusCompleted  Status = "completed"
	StatusFailed     Status = "failed"
)

// ValidTransitions defines allowed state transitions.
// A fresh start() is accepted from any state except mid-flight duplicates are
// superseded rather than rejected, so Requesting and Streaming also permit
// the restart transition.
var ValidTransitions = map[Status][]Status{
	StatusIdle:       {StatusRequesting},
	StatusRequesting: {StatusStreaming, StatusCompleted, StatusFailed, StatusRequesting},
	StatusStreaming:  {StatusStreaming, StatusCompleted, StatusFailed, StatusRequesting},
	StatusCompleted:  {StatusRequesting},
	StatusFailed:     {StatusRequesting},
}

// CanTransition checks if transitioning from one state to another is valid
func CanTransition(from, to Status) bool {
	for _, allowed := range ValidTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

// IsTerminal returns true if the status ends a run. Terminal states only
// leave via a fresh start().
func (s Status) IsTerminal() bool {
	return s == StatusCompleted || s == StatusFailed
}

// InProgress returns true while a run is waiting on the server.
func (s Status) InProgress() bool {
	return s == StatusRequesting || s == StatusStreaming
}

// String returns the string representation of the status
func (s Status) String() string {
	return string(s)
}
