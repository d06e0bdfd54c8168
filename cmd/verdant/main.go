package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/example/verdant/internal/cli"
	"github.com/example/verdant/internal/version"
)

func main() {
	rootCmd := &cobra.Command{
		Use:     "verdant",
		Short:   "Verdant - houseplant care scheduling",
		Version: version.String(),
		Long: `Verdant keeps track of your houseplants, their seasonal watering and
fertilizing schedules, and tells you which plants need attention today.`,
	}

	// Add subcommands
	rootCmd.AddCommand(cli.InitCmd())
	rootCmd.AddCommand(cli.DoctorCmd())
	rootCmd.AddCommand(cli.PlantCmd())
	rootCmd.AddCommand(cli.ScheduleCmd())
	rootCmd.AddCommand(cli.CareCmd())
	rootCmd.AddCommand(cli.DashboardCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
