package cli

import (
	"github.com/spf13/cobra"
)

// versionInfo holds build-time version metadata
type versionInfo struct {
	Version string
	Commit  string
	Date    string
}

// App represents the CLI application with all wired dependencies
type App struct {
	// Root command
	rootCmd *cobra.Command

	// Runtime state
	verbose bool
	noTUI   bool

	// Version information
	versionInfo versionInfo
}

// New creates a new CLI application
func New() *App {
	app := &App{}
	app.setupRootCmd()
	return app
}

// Execute runs the CLI application
func (a *App) Execute() error {
	return a.rootCmd.Execute()
}

// SetVersion sets the version string for the version command
func (a *App) SetVersion(version, commit, date string) {
	a.versionInfo = versionInfo{Version: version, Commit: commit, Date: date}
}

// setupRootCmd configures the root Cobra command
func (a *App) setupRootCmd() {
	a.rootCmd = &cobra.Command{
		Use:   "hunt",
		Short: "Job and interview-question search client",
		Long: `Hunt drives job searches and interview-question searches against the
remote search service, streaming live progress over one event channel.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Add persistent flags
	a.rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false,
		"Verbose output (raw event log)")
	a.rootCmd.PersistentFlags().BoolVar(&a.noTUI, "no-tui", false,
		"Disable interactive TUI (use line-oriented output)")

	a.rootCmd.AddCommand(
		NewSearchCmd(a),
		NewInterviewCmd(a),
		NewSuggestionsCmd(a),
		NewExportCmd(a),
		NewVersionCmd(a),
	)
}
