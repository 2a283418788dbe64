package tui

import (
	"fmt"
	"strings"
	"time"
)

// logWindow is how many recent log lines are rendered.
const logWindow = 12

// View implements tea.Model
func (m *Model) View() string {
	if m.Done || m.Quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(m.renderChannelLine())
	b.WriteString("\n")
	b.WriteString(m.renderPhaseLine())
	b.WriteString("\n\n")
	b.WriteString(m.renderLog())
	b.WriteString(m.renderFooter())

	return b.String()
}

// renderHeader renders the title line with timer and target address
func (m *Model) renderHeader() string {
	elapsed := time.Since(m.StartTime).Round(time.Second)
	timer := fmt.Sprintf("[%s]", formatDuration(elapsed))

	return fmt.Sprintf("%s  %s  %s",
		m.Styles.Title.Render("hunt "+m.Title),
		m.Styles.Timer.Render(timer),
		m.Styles.Addr.Render(m.BaseAddress),
	)
}

// renderChannelLine renders the event channel state
func (m *Model) renderChannelLine() string {
	var icon, state string
	switch m.ChannelState {
	case "connected":
		icon = m.Styles.ChannelUp.Render(IconUp)
		state = m.Styles.ChannelUp.Render(m.ChannelState)
	case "reconnecting":
		icon = m.Styles.ChannelRetrying.Render(IconDown)
		state = m.Styles.ChannelRetrying.Render(m.ChannelState)
	case "disconnected", "failed":
		icon = m.Styles.ChannelDown.Render(IconDown)
		state = m.Styles.ChannelDown.Render(m.ChannelState)
	default:
		icon = m.Styles.ChannelRetrying.Render(IconDown)
		state = m.ChannelState
	}

	line := fmt.Sprintf("  %s channel %s", icon, state)
	if m.ChannelDetail != "" {
		line += m.Styles.Addr.Render("  " + m.ChannelDetail)
	}
	return line
}

// renderPhaseLine renders the workflow phase plus running counters
func (m *Model) renderPhaseLine() string {
	var outcome string
	switch {
	case m.Failed:
		outcome = m.Styles.Failed.Render(IconFailed + " " + m.ErrorMsg)
	case m.Phase == "completed":
		outcome = m.Styles.Completed.Render(IconComplete + " completed")
	default:
		outcome = m.Styles.PhaseText.Render(m.Phase)
	}

	var counters []string
	if m.JobsSoFar > 0 {
		counters = append(counters, fmt.Sprintf("%d jobs", m.JobsSoFar))
	}
	if m.Questions > 0 {
		counters = append(counters, fmt.Sprintf("%d questions", m.Questions))
	}
	if m.Solutions > 0 {
		counters = append(counters, fmt.Sprintf("%d solutions", m.Solutions))
	}

	line := "  " + outcome
	if len(counters) > 0 {
		line += "  " + m.Styles.Counter.Render(strings.Join(counters, " | "))
	}
	return line
}

// renderLog renders the most recent narration lines
func (m *Model) renderLog() string {
	if len(m.LogLines) == 0 {
		return ""
	}

	lines := m.LogLines
	if len(lines) > logWindow {
		lines = lines[len(lines)-logWindow:]
	}

	var b strings.Builder
	for _, line := range lines {
		b.WriteString("  ")
		b.WriteString(m.Styles.LogLine.Render(line))
		b.WriteString("\n")
	}
	return b.String()
}

// renderFooter renders the help text
func (m *Model) renderFooter() string {
	key := m.Styles.FooterKey.Render("q")
	return m.Styles.Footer.Render(fmt.Sprintf("  Press %s to quit", key))
}

// formatDuration formats a duration as MM:SS
func formatDuration(d time.Duration) string {
	mins := d / time.Minute
	d -= mins * time.Minute
	secs := d / time.Second
	return fmt.Sprintf("%02d:%02d", mins, secs)
}
