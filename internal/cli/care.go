package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/example/verdant/internal/ports/primary"
	"github.com/example/verdant/internal/wire"
)

// CareCmd returns the care command
func CareCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "care",
		Short: "Record and review care events",
		Long:  `Record watering and fertilizing events and browse the care history.`,
	}

	cmd.AddCommand(careWaterCmd())
	cmd.AddCommand(careFertilizeCmd())
	cmd.AddCommand(careHistoryCmd())

	return cmd
}

func careWaterCmd() *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:   "water [plant-id]",
		Short: "Record a watering",
		Long: `Record a watering for a plant. Defaults to today; pass --date to
backdate.

Examples:
  verdant care water plant-001
  verdant care water plant-001 --date 2025-06-10`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return recordCare(args[0], "watering", date)
		},
	}

	cmd.Flags().StringVarP(&date, "date", "d", "", "Date of the event (YYYY-MM-DD, default today)")

	return cmd
}

func careFertilizeCmd() *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:   "fertilize [plant-id]",
		Short: "Record a fertilizing",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return recordCare(args[0], "fertilizing", date)
		},
	}

	cmd.Flags().StringVarP(&date, "date", "d", "", "Date of the event (YYYY-MM-DD, default today)")

	return cmd
}

func recordCare(plantID, actionType, date string) error {
	req := primary.RecordCareActionRequest{
		PlantID:     plantID,
		ActionType:  actionType,
		PerformedAt: date,
	}

	_, err := wire.CareAdapter().Record(context.Background(), wire.CurrentUserID(), req)
	return err
}

func careHistoryCmd() *cobra.Command {
	var (
		actionType string
		limit      int
	)

	cmd := &cobra.Command{
		Use:   "history [plant-id]",
		Short: "Show a plant's care history",
		Long: `Show a plant's care history, newest first.

Examples:
  verdant care history plant-001
  verdant care history plant-001 --type watering --limit 10`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			q := primary.CareActionsQuery{
				PlantID:    args[0],
				ActionType: actionType,
				Limit:      limit,
			}

			_, err := wire.CareAdapter().History(context.Background(), wire.CurrentUserID(), q)
			return err
		},
	}

	cmd.Flags().StringVarP(&actionType, "type", "t", "", "Filter by action type: watering or fertilizing")
	cmd.Flags().IntVarP(&limit, "limit", "l", 0, "Max entries (default 50, max 200)")

	return cmd
}
