package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/verdant/internal/ports/primary"
	"github.com/example/verdant/internal/wire"
)

// ScheduleCmd returns the schedule command
func ScheduleCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "schedule",
		Short: "Manage seasonal care schedules",
		Long:  `Inspect and set per-season watering and fertilizing intervals.`,
	}

	cmd.AddCommand(scheduleShowCmd())
	cmd.AddCommand(scheduleSetCmd())

	return cmd
}

func scheduleShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show [plant-id]",
		Short: "Show a plant's seasonal schedules",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := wire.ScheduleAdapter().Show(context.Background(), wire.CurrentUserID(), args[0])
			return err
		},
	}
}

func scheduleSetCmd() *cobra.Command {
	var (
		season      string
		watering    int
		fertilizing int
	)

	cmd := &cobra.Command{
		Use:   "set [plant-id]",
		Short: "Set the schedule for one season",
		Long: `Set watering and fertilizing intervals for one season. Other
seasons keep their stored values. A fertilizing interval of 0 disables
fertilizing for that season.

Examples:
  verdant schedule set plant-001 --season summer --watering 3 --fertilizing 14
  verdant schedule set plant-001 --season winter --watering 10 --fertilizing 0`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if season == "" {
				return fmt.Errorf("--season is required")
			}
			if !cmd.Flags().Changed("watering") {
				return fmt.Errorf("--watering is required")
			}

			inputs := []primary.ScheduleEntryInput{
				{
					Season:              season,
					WateringInterval:    watering,
					FertilizingInterval: fertilizing,
				},
			}

			_, err := wire.ScheduleAdapter().Set(context.Background(), wire.CurrentUserID(), args[0], inputs)
			return err
		},
	}

	cmd.Flags().StringVar(&season, "season", "", "Season: spring, summer, autumn or winter")
	cmd.Flags().IntVar(&watering, "watering", 0, "Watering interval in days (0 = due same day)")
	cmd.Flags().IntVar(&fertilizing, "fertilizing", 0, "Fertilizing interval in days (0 = disabled)")

	return cmd
}
