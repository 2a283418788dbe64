package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/askohli/hunt/internal/search"
)

// SearchOptions holds flags for the search command
type SearchOptions struct {
	Location   string // Search location
	JobType    string // Server-side job type filter
	Experience string // Server-side experience filter
	Salary     string // Server-side salary range filter
}

// NewSearchCmd creates the search command
func NewSearchCmd(app *App) *cobra.Command {
	var opts SearchOptions

	cmd := &cobra.Command{
		Use:   "search <role>",
		Short: "Run a job search and stream live progress",
		Long: `Search initiates a job search on the remote service and follows its
progress over the event channel until results arrive.

Filters are applied server-side; the client never re-filters results.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.RunJobSearch(cmd.Context(), args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Location, "location", "l", "", "Search location")
	cmd.Flags().StringVar(&opts.JobType, "job-type", "", "Job type filter (e.g. full-time)")
	cmd.Flags().StringVar(&opts.Experience, "experience", "", "Experience level filter")
	cmd.Flags().StringVar(&opts.Salary, "salary", "", "Salary range filter")

	return cmd
}

// RunJobSearch executes one job search run end to end
func (a *App) RunJobSearch(ctx context.Context, role string, opts SearchOptions) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if opts.Location == "" {
		opts.Location = cfg.Search.Location
	}

	rt, err := WireRuntime(cfg)
	if err != nil {
		return err
	}

	params := search.JobSearchParams{
		Role:     role,
		Location: opts.Location,
		Filters: search.JobFilters{
			JobType:         opts.JobType,
			ExperienceLevel: opts.Experience,
			SalaryRange:     opts.Salary,
		},
	}

	begin := func(ctx context.Context) error {
		_, err := rt.Job.Start(ctx, params)
		return err
	}
	if err := a.runWorkflow(ctx, rt, "job search", begin, jobSnapshot(rt.Job)); err != nil {
		return err
	}

	result, ok := rt.Store.JobResult()
	if !ok {
		return fmt.Errorf("job search finished without a result")
	}
	fmt.Fprint(os.Stdout, FormatJobResult(result))
	return nil
}
