package events

import (
	"encoding/json"
	"fmt"

	"github.com/askohli/hunt/internal/search"
)

// ErrUnknownEvent is returned by Decode for event names outside the contract.
// The channel manager logs and drops these instead of trusting their shape.
var ErrUnknownEvent = fmt.Errorf("unknown event name")

// Decode parses a wire event into its typed payload. Every event name in the
// server contract has an explicit case; payloads with missing required fields
// are rejected. The caller stamps ReceivedAt via the bus.
func Decode(name string, data []byte) (Event, error) {
	t := EventType(name)
	e := Event{Type: t, Kind: KindFor(t)}

	switch t {
	case Connected:
		var p SessionPayload
		if err := unmarshal(data, &p); err != nil {
			return Event{}, err
		}
		if p.Message == "" {
			return Event{}, fmt.Errorf("connected: missing message")
		}
		e.Payload = p

	case Thought:
		var p ThoughtPayload
		if err := unmarshal(data, &p); err != nil {
			return Event{}, err
		}
		if p.Agent == "" || p.Message == "" {
			return Event{}, fmt.Errorf("thought: missing agent or message")
		}
		e.Payload = p

	case SearchStarted:
		var p SearchStartedPayload
		if err := unmarshal(data, &p); err != nil {
			return Event{}, err
		}
		if p.JobRole == "" {
			return Event{}, fmt.Errorf("search_started: missing job_role")
		}
		e.Payload = p

	case SourceCompleted:
		var p SourceCompletedPayload
		if err := unmarshal(data, &p); err != nil {
			return Event{}, err
		}
		if p.Source == "" {
			return Event{}, fmt.Errorf("source_completed: missing source")
		}
		e.Payload = p

	case SearchCompleted:
		var r search.JobResult
		if err := unmarshal(data, &r); err != nil {
			return Event{}, err
		}
		if r.Jobs == nil {
			return Event{}, fmt.Errorf("search_completed: missing all_jobs")
		}
		e.Payload = r

	case SearchFailed:
		var p struct {
			Error string `json:"error"`
		}
		if err := unmarshal(data, &p); err != nil {
			return Event{}, err
		}
		if p.Error == "" {
			return Event{}, fmt.Errorf("search_failed: missing error")
		}
		e.Error = p.Error

	case InterviewSearchStarted:
		var p InterviewStartedPayload
		if err := unmarshal(data, &p); err != nil {
			return Event{}, err
		}
		if p.Domain == "" {
			return Event{}, fmt.Errorf("interview_search_started: missing domain")
		}
		e.Payload = p

	case QuestionExtracted:
		var p QuestionPreviewPayload
		if err := unmarshal(data, &p); err != nil {
			return Event{}, err
		}
		if p.Question == "" {
			return Event{}, fmt.Errorf("question_extracted: missing question")
		}
		e.Payload = p

	case SolutionGenerated:
		var p SolutionPreviewPayload
		if err := unmarshal(data, &p); err != nil {
			return Event{}, err
		}
		if p.Solution == "" {
			return Event{}, fmt.Errorf("solution_generated: missing solution")
		}
		e.Payload = p

	case InterviewSearchCompleted:
		var r search.InterviewResult
		if err := unmarshal(data, &r); err != nil {
			return Event{}, err
		}
		if r.Domain == "" || r.Questions == nil {
			return Event{}, fmt.Errorf("interview_search_completed: missing domain or questions")
		}
		e.Payload = r

	case InterviewSearchFailed:
		var p struct {
			Error string `json:"error"`
		}
		if err := unmarshal(data, &p); err != nil {
			return Event{}, err
		}
		if p.Error == "" {
			return Event{}, fmt.Errorf("interview_search_failed: missing error")
		}
		e.Error = p.Error

	default:
		return Event{}, fmt.Errorf("%w: %q", ErrUnknownEvent, name)
	}

	return e, nil
}

func unmarshal(data []byte, v any) error {
	if len(data) == 0 {
		return fmt.Errorf("empty payload")
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}
	return nil
}
