package cli

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/askohli/hunt/internal/api"
)

// NewSuggestionsCmd creates the suggestions command
func NewSuggestionsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "suggestions",
		Short: "List suggested job roles by category",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			client := api.New(cfg.BaseAddress)
			catalog, err := client.Suggestions(cmd.Context())
			if err != nil {
				return fmt.Errorf("fetch suggestions: %w", err)
			}

			// Sort category keys for stable output
			keys := make([]string, 0, len(catalog.Categories))
			for k := range catalog.Categories {
				keys = append(keys, k)
			}
			sort.Strings(keys)

			out := cmd.OutOrStdout()
			for _, k := range keys {
				cat := catalog.Categories[k]
				fmt.Fprintf(out, "%s\n", cat.Title)
				for _, r := range cat.Roles {
					if r.Description != "" {
						fmt.Fprintf(out, "  %-32s %s\n", r.Role, r.Description)
					} else {
						fmt.Fprintf(out, "  %s\n", r.Role)
					}
				}
				fmt.Fprintln(out)
			}
			return nil
		},
	}

	return cmd
}
