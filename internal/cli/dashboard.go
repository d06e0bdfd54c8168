package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/example/verdant/internal/ports/primary"
	"github.com/example/verdant/internal/wire"
)

// DashboardCmd returns the dashboard command
func DashboardCmd() *cobra.Command {
	var (
		search    string
		sort      string
		direction string
		page      int
		limit     int
	)

	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Show the care dashboard",
		Long: `Show the care dashboard: urgency stats, plants needing attention
and one page of the full collection.

Examples:
  verdant dashboard
  verdant dashboard --search monstera
  verdant dashboard --sort name --page 2`,
		RunE: func(cmd *cobra.Command, args []string) error {
			q := primary.DashboardQuery{
				Search:    search,
				Sort:      sort,
				Direction: direction,
				Page:      page,
				Limit:     limit,
			}

			_, err := wire.DashboardAdapter().Show(context.Background(), wire.CurrentUserID(), q)
			return err
		},
	}

	cmd.Flags().StringVarP(&search, "search", "s", "", "Filter by name substring")
	cmd.Flags().StringVar(&sort, "sort", "", "Sort key: priority (default), name, created")
	cmd.Flags().StringVar(&direction, "direction", "", "Sort direction: asc (default) or desc")
	cmd.Flags().IntVarP(&page, "page", "p", 0, "Page number (1-based)")
	cmd.Flags().IntVarP(&limit, "limit", "l", 0, "Page size (1-20)")

	return cmd
}
