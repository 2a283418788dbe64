package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/askohli/hunt/internal/export"
)

// ExportOptions holds flags for the export command
type ExportOptions struct {
	Interview InterviewOptions
	OutputDir string // Directory the PDF is written into
	NoSolve   bool   // Omit solutions from the artifact
}

// NewExportCmd creates the export command
func NewExportCmd(app *App) *cobra.Command {
	var opts ExportOptions

	cmd := &cobra.Command{
		Use:   "export <domain>",
		Short: "Search interview questions and export them as a PDF",
		Long: `Export runs an interview-question search and, once it completes, asks the
server to render the result as a PDF study guide. The artifact is written to
the output directory with a timestamped filename.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.RunExport(cmd.Context(), args[0], opts)
		},
	}

	addInterviewFlags(cmd, &opts.Interview)
	cmd.Flags().StringVarP(&opts.OutputDir, "out", "o", "", "Output directory (default: config export.output_dir)")
	cmd.Flags().BoolVar(&opts.NoSolve, "no-solutions", false, "Omit solutions from the PDF")

	return cmd
}

// RunExport runs the search-then-export flow
func (a *App) RunExport(ctx context.Context, domain string, opts ExportOptions) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if opts.OutputDir == "" {
		opts.OutputDir = cfg.Export.OutputDir
	}
	// Resolve the difficulty here so the search and the rendered artifact
	// agree on the filter.
	if opts.Interview.Difficulty == "" {
		opts.Interview.Difficulty = cfg.Interview.Difficulty
	}

	rt, err := WireRuntime(cfg)
	if err != nil {
		return err
	}

	result, err := a.runInterviewSearch(ctx, rt, domain, opts.Interview)
	if err != nil {
		return err
	}
	fmt.Fprintf(os.Stdout, "\nsearch complete: %d questions, rendering PDF...\n", result.TotalQuestions)

	artifact, err := rt.Exporter.Export(ctx, export.Options{
		IncludeSolutions: !opts.NoSolve,
		Difficulty:       opts.Interview.Difficulty,
	})
	if err != nil {
		return fmt.Errorf("export: %w", err)
	}

	path := filepath.Join(opts.OutputDir, artifact.Name)
	if err := os.WriteFile(path, artifact.Data, 0644); err != nil {
		return fmt.Errorf("write artifact: %w", err)
	}

	fmt.Fprintf(os.Stdout, "wrote %s (%d bytes)\n", path, len(artifact.Data))
	return nil
}
