package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/askohli/hunt/internal/search"
)

// InterviewOptions holds flags for the interview command
type InterviewOptions struct {
	Company    string // Target company (optional)
	Difficulty string // all, easy, medium, or hard
	Count      int    // Number of questions to request
	Solutions  bool   // Print generated solutions
}

// NewInterviewCmd creates the interview command
func NewInterviewCmd(app *App) *cobra.Command {
	var opts InterviewOptions

	cmd := &cobra.Command{
		Use:   "interview <domain>",
		Short: "Search real interview questions for a domain",
		Long: `Interview initiates an interview-question search on the remote service
and follows extraction and solution generation over the event channel.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := app.RunInterviewSearch(cmd.Context(), args[0], opts)
			if err != nil {
				return err
			}
			fmt.Fprint(os.Stdout, FormatInterviewResult(*result, opts.Solutions))
			return nil
		},
	}

	addInterviewFlags(cmd, &opts)
	cmd.Flags().BoolVar(&opts.Solutions, "solutions", false, "Print generated solutions")

	return cmd
}

// addInterviewFlags registers the flags shared with the export command
func addInterviewFlags(cmd *cobra.Command, opts *InterviewOptions) {
	cmd.Flags().StringVarP(&opts.Company, "company", "c", "", "Target company")
	cmd.Flags().StringVarP(&opts.Difficulty, "difficulty", "d", "", "Difficulty: all, easy, medium, hard")
	cmd.Flags().IntVarP(&opts.Count, "count", "n", 0, "Number of questions (max 20)")
}

// RunInterviewSearch executes one interview-question search run end to end
// and returns the completed result.
func (a *App) RunInterviewSearch(ctx context.Context, domain string, opts InterviewOptions) (*search.InterviewResult, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}

	rt, err := WireRuntime(cfg)
	if err != nil {
		return nil, err
	}
	return a.runInterviewSearch(ctx, rt, domain, opts)
}

// runInterviewSearch drives the search on an already-wired runtime.
func (a *App) runInterviewSearch(ctx context.Context, rt *Runtime, domain string, opts InterviewOptions) (*search.InterviewResult, error) {
	if opts.Difficulty == "" {
		opts.Difficulty = rt.Config.Interview.Difficulty
	}
	if opts.Count == 0 {
		opts.Count = rt.Config.Interview.QuestionCount
	}

	params := search.InterviewSearchParams{
		Domain:     domain,
		Company:    opts.Company,
		Difficulty: opts.Difficulty,
		Count:      opts.Count,
	}

	begin := func(ctx context.Context) error {
		_, err := rt.Interview.Start(ctx, params)
		return err
	}
	if err := a.runWorkflow(ctx, rt, "interview search", begin, interviewSnapshot(rt.Interview)); err != nil {
		return nil, err
	}

	result, ok := rt.Store.InterviewResult()
	if !ok {
		return nil, fmt.Errorf("interview search finished without a result")
	}
	return &result, nil
}
