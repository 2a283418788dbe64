package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/askohli/hunt/internal/events"
)

// Bridge connects the event bus to the bubbletea program
type Bridge struct {
	program *tea.Program
}

// NewBridge creates a new bridge for the given program
func NewBridge(program *tea.Program) *Bridge {
	return &Bridge{
		program: program,
	}
}

// Handler returns an event handler function for the event bus
func (b *Bridge) Handler() events.Handler {
	return func(evt events.Event) {
		msg := b.eventToMsg(evt)
		if msg != nil {
			b.program.Send(msg)
		}
	}
}

// eventToMsg converts an events.Event to a tea.Msg
func (b *Bridge) eventToMsg(evt events.Event) tea.Msg {
	switch evt.Type {
	case events.Connected:
		return ChannelMsg{State: "connected"}

	case events.Disconnect:
		return ChannelMsg{State: "disconnected", Detail: evt.Error}

	case events.ConnectError:
		return ChannelMsg{State: "disconnected", Detail: evt.Error}

	case events.ReconnectAttempt:
		detail := ""
		if p, ok := evt.Payload.(events.ReconnectPayload); ok {
			detail = attemptDetail(p)
		}
		return ChannelMsg{State: "reconnecting", Detail: detail}

	case events.ReconnectFailed:
		return ChannelMsg{State: "failed", Detail: evt.Error}

	case events.Thought:
		if p, ok := evt.Payload.(events.ThoughtPayload); ok {
			return NarrationMsg{Agent: p.Agent, Line: p.Message}
		}

	case events.SearchStarted:
		return PhaseMsg{Phase: "searching job sources"}

	case events.SourceCompleted:
		if p, ok := evt.Payload.(events.SourceCompletedPayload); ok {
			return SourceMsg{Source: p.Source, Count: p.JobCount, Total: p.TotalSoFar}
		}

	case events.InterviewSearchStarted:
		return PhaseMsg{Phase: "searching interview questions"}

	case events.QuestionExtracted:
		if p, ok := evt.Payload.(events.QuestionPreviewPayload); ok {
			preview := p.Question
			if len(preview) > 70 {
				preview = preview[:67] + "..."
			}
			return QuestionMsg{Preview: preview}
		}

	case events.SolutionGenerated:
		return SolutionMsg{}

	case events.SearchCompleted, events.InterviewSearchCompleted:
		return TerminalMsg{}

	case events.SearchFailed, events.InterviewSearchFailed:
		return TerminalMsg{Failed: true, Error: evt.Error}
	}

	return nil
}

func attemptDetail(p events.ReconnectPayload) string {
	if p.Max == 0 {
		return ""
	}
	return fmt.Sprintf("attempt %d/%d", p.Attempt, p.Max)
}

// SendDone sends a DoneMsg to the program
func (b *Bridge) SendDone() {
	b.program.Send(DoneMsg{})
}
