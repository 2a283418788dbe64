package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

// Update implements tea.Model
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			m.Quitting = true
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height

	case TickMsg:
		// Continue ticking for timer updates
		return m, tickCmd()

	case DoneMsg:
		m.Done = true
		return m, tea.Quit

	case ChannelMsg:
		m.ChannelState = msg.State
		m.ChannelDetail = msg.Detail

	case PhaseMsg:
		m.Phase = msg.Phase

	case NarrationMsg:
		line := msg.Line
		if msg.Agent != "" {
			line = msg.Agent + ": " + line
		}
		m.appendLog(line)

	case SourceMsg:
		m.JobsSoFar = msg.Total
		m.appendLog(fmt.Sprintf("%s completed: %d jobs (%d total)", msg.Source, msg.Count, msg.Total))

	case QuestionMsg:
		m.Questions++
		m.appendLog("question: " + msg.Preview)

	case SolutionMsg:
		m.Solutions++

	case TerminalMsg:
		m.Failed = msg.Failed
		m.ErrorMsg = msg.Error
		if msg.Failed {
			m.Phase = "failed"
		} else {
			m.Phase = "completed"
		}
	}

	return m, nil
}

func (m *Model) appendLog(line string) {
	m.LogLines = append(m.LogLines, line)
	if m.LogLimit > 0 && len(m.LogLines) > m.LogLimit {
		m.LogLines = m.LogLines[len(m.LogLines)-m.LogLimit:]
	}
}
