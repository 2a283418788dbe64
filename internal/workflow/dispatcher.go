package workflow

import (
	"github.com/askohli/hunt/internal/events"
	"github.com/askohli/hunt/internal/search"
)

// Dispatcher routes channel events to the machine for their tagged kind.
// The two workflows are fully independent; both may stream concurrently over
// the one shared connection.
type Dispatcher struct {
	job       *JobMachine
	interview *InterviewMachine
}

// NewDispatcher creates a dispatcher over the two machines.
func NewDispatcher(job *JobMachine, interview *InterviewMachine) *Dispatcher {
	return &Dispatcher{job: job, interview: interview}
}

// Handler returns the bus handler. Kind-tagged events go to their machine;
// thought narration goes to every active run; channel lifecycle events are
// the channel manager's concern and pass through untouched.
func (d *Dispatcher) Handler() events.Handler {
	return func(e events.Event) {
		switch e.Kind {
		case search.KindJob:
			d.job.HandleEvent(e)
		case search.KindInterview:
			d.interview.HandleEvent(e)
		default:
			if e.Type == events.Thought {
				d.job.HandleEvent(e)
				d.interview.HandleEvent(e)
			}
		}
	}
}
