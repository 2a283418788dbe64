package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// Model is the bubbletea model for the live progress view
type Model struct {
	// Configuration
	Title       string
	BaseAddress string
	Styles      Styles

	// State
	ChannelState  string
	ChannelDetail string
	Phase         string
	JobsSoFar     int
	Questions     int
	Solutions     int
	LogLines      []string
	LogLimit      int
	StartTime     time.Time
	Width         int
	Height        int

	// Control
	Quitting bool
	Done     bool
	Failed   bool
	ErrorMsg string
}

// NewModel creates a new TUI model
func NewModel(title, baseAddress string) *Model {
	return &Model{
		Title:        title,
		BaseAddress:  baseAddress,
		Styles:       DefaultStyles(),
		ChannelState: "connecting",
		Phase:        "starting",
		LogLimit:     200,
		StartTime:    time.Now(),
	}
}

// Init implements tea.Model
func (m *Model) Init() tea.Cmd {
	return tickCmd()
}

// TickMsg is sent every second to update the timer
type TickMsg time.Time

// tickCmd returns a command that sends TickMsg every second
func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// DoneMsg signals the TUI should exit
type DoneMsg struct{}

// ChannelMsg reports an event channel state change
type ChannelMsg struct {
	State  string
	Detail string
}

// PhaseMsg reports a workflow phase change
type PhaseMsg struct {
	Phase string
}

// NarrationMsg appends one progress line to the log area
type NarrationMsg struct {
	Agent string
	Line  string
}

// SourceMsg reports per-source job counts
type SourceMsg struct {
	Source string
	Count  int
	Total  int
}

// QuestionMsg reports an extracted question preview
type QuestionMsg struct {
	Preview string
}

// SolutionMsg reports a generated solution
type SolutionMsg struct{}

// TerminalMsg reports the run's terminal outcome
type TerminalMsg struct {
	Failed bool
	Error  string
}
