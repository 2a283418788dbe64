package tui

import "github.com/charmbracelet/lipgloss"

// Styles contains all lipgloss styles for the TUI
type Styles struct {
	// Header styling
	Title lipgloss.Style
	Timer lipgloss.Style
	Addr  lipgloss.Style

	// Channel state
	ChannelUp       lipgloss.Style
	ChannelDown     lipgloss.Style
	ChannelRetrying lipgloss.Style

	// Phase line
	PhaseText lipgloss.Style

	// Counters
	Counter lipgloss.Style

	// Log area
	LogLine lipgloss.Style

	// Outcome
	Completed lipgloss.Style
	Failed    lipgloss.Style

	// Footer styling
	Footer    lipgloss.Style
	FooterKey lipgloss.Style
}

// DefaultStyles returns the default TUI styles
func DefaultStyles() Styles {
	return Styles{
		Title: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		Timer: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Addr:  lipgloss.NewStyle().Foreground(lipgloss.Color("245")),

		ChannelUp:       lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		ChannelDown:     lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
		ChannelRetrying: lipgloss.NewStyle().Foreground(lipgloss.Color("214")),

		PhaseText: lipgloss.NewStyle().Foreground(lipgloss.Color("250")).Italic(true),

		Counter: lipgloss.NewStyle().Foreground(lipgloss.Color("214")),

		LogLine: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),

		Completed: lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true),
		Failed:    lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),

		Footer:    lipgloss.NewStyle().Foreground(lipgloss.Color("245")).MarginTop(1),
		FooterKey: lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true),
	}
}

// Icons used in the TUI
const (
	IconUp       = "●"
	IconDown     = "○"
	IconComplete = "✓"
	IconFailed   = "✗"
)
