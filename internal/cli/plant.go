// Package cli defines the cobra command tree. Commands parse flags,
// resolve the acting user and delegate to the CLI adapters from wire.
package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/example/verdant/internal/ports/primary"
	"github.com/example/verdant/internal/wire"
)

// PlantCmd returns the plant command
func PlantCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plant",
		Short: "Manage plants",
		Long:  `Create, list, inspect, update and delete plants.`,
	}

	cmd.AddCommand(plantCreateCmd())
	cmd.AddCommand(plantListCmd())
	cmd.AddCommand(plantShowCmd())
	cmd.AddCommand(plantUpdateCmd())
	cmd.AddCommand(plantDeleteCmd())

	return cmd
}

func plantCreateCmd() *cobra.Command {
	var (
		icon        string
		colorHex    string
		difficulty  string
		soil        string
		pot         string
		position    string
		watering    string
		repotting   string
		propagation string
		notes       string
	)

	cmd := &cobra.Command{
		Use:   "create [name]",
		Short: "Add a new plant",
		Long: `Add a new plant to your collection.

Examples:
  verdant plant create "Monstera"
  verdant plant create "Aloe Vera" --difficulty easy --position "south window"
  verdant plant create "Calathea" --color "#2e8b57" --notes "keep humid"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := primary.CreatePlantRequest{
				Name:                    args[0],
				IconKey:                 icon,
				ColorHex:                colorHex,
				Difficulty:              difficulty,
				Soil:                    soil,
				Pot:                     pot,
				Position:                position,
				WateringInstructions:    watering,
				RepottingInstructions:   repotting,
				PropagationInstructions: propagation,
				Notes:                   notes,
			}

			_, err := wire.PlantAdapter().Create(context.Background(), wire.CurrentUserID(), req)
			return err
		},
	}

	cmd.Flags().StringVar(&icon, "icon", "", "Icon key for UI rendering")
	cmd.Flags().StringVar(&colorHex, "color", "", "Accent color (#RRGGBB)")
	cmd.Flags().StringVar(&difficulty, "difficulty", "", "Care difficulty: easy, medium or hard")
	cmd.Flags().StringVar(&soil, "soil", "", "Soil description")
	cmd.Flags().StringVar(&pot, "pot", "", "Pot description")
	cmd.Flags().StringVar(&position, "position", "", "Where the plant lives")
	cmd.Flags().StringVar(&watering, "watering-notes", "", "Watering instructions")
	cmd.Flags().StringVar(&repotting, "repotting-notes", "", "Repotting instructions")
	cmd.Flags().StringVar(&propagation, "propagation-notes", "", "Propagation instructions")
	cmd.Flags().StringVar(&notes, "notes", "", "Free-form notes")

	return cmd
}

func plantListCmd() *cobra.Command {
	var (
		search         string
		sort           string
		direction      string
		page           int
		limit          int
		needsAttention bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List plants",
		Long: `List plants sorted by urgency (default), name or creation time.

Examples:
  verdant plant list
  verdant plant list --search monstera
  verdant plant list --sort name --direction desc
  verdant plant list --needs-attention`,
		RunE: func(cmd *cobra.Command, args []string) error {
			q := primary.PlantListQuery{
				Search:             search,
				Sort:               sort,
				Direction:          direction,
				Page:               page,
				Limit:              limit,
				NeedsAttentionOnly: needsAttention,
			}

			_, err := wire.PlantAdapter().List(context.Background(), wire.CurrentUserID(), q)
			return err
		},
	}

	cmd.Flags().StringVarP(&search, "search", "s", "", "Filter by name substring")
	cmd.Flags().StringVar(&sort, "sort", "", "Sort key: priority (default), name, created")
	cmd.Flags().StringVar(&direction, "direction", "", "Sort direction: asc (default) or desc")
	cmd.Flags().IntVarP(&page, "page", "p", 0, "Page number (1-based)")
	cmd.Flags().IntVarP(&limit, "limit", "l", 0, "Page size (1-20)")
	cmd.Flags().BoolVar(&needsAttention, "needs-attention", false, "Only plants due today or overdue")

	return cmd
}

func plantShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show [plant-id]",
		Short: "Show plant details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := wire.PlantAdapter().Show(context.Background(), wire.CurrentUserID(), args[0])
			return err
		},
	}
}

func plantUpdateCmd() *cobra.Command {
	var (
		name        string
		icon        string
		colorHex    string
		difficulty  string
		soil        string
		pot         string
		position    string
		watering    string
		repotting   string
		propagation string
		notes       string
	)

	cmd := &cobra.Command{
		Use:   "update [plant-id]",
		Short: "Update plant fields",
		Long: `Update display fields of a plant. Only flags you pass are changed.

Examples:
  verdant plant update plant-001 --name "Monstera Deliciosa"
  verdant plant update plant-001 --position "east window" --notes "new pot"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var req primary.UpdatePlantRequest

			// Only flags the user actually set become update fields;
			// everything else stays untouched.
			set := map[string]*string{
				"name":              &name,
				"icon":              &icon,
				"color":             &colorHex,
				"difficulty":        &difficulty,
				"soil":              &soil,
				"pot":               &pot,
				"position":          &position,
				"watering-notes":    &watering,
				"repotting-notes":   &repotting,
				"propagation-notes": &propagation,
				"notes":             &notes,
			}
			target := map[string]**string{
				"name":              &req.Name,
				"icon":              &req.IconKey,
				"color":             &req.ColorHex,
				"difficulty":        &req.Difficulty,
				"soil":              &req.Soil,
				"pot":               &req.Pot,
				"position":          &req.Position,
				"watering-notes":    &req.WateringInstructions,
				"repotting-notes":   &req.RepottingInstructions,
				"propagation-notes": &req.PropagationInstructions,
				"notes":             &req.Notes,
			}
			for flag, value := range set {
				if cmd.Flags().Changed(flag) {
					*target[flag] = value
				}
			}

			_, err := wire.PlantAdapter().Update(context.Background(), wire.CurrentUserID(), args[0], req)
			return err
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Plant name")
	cmd.Flags().StringVar(&icon, "icon", "", "Icon key for UI rendering")
	cmd.Flags().StringVar(&colorHex, "color", "", "Accent color (#RRGGBB)")
	cmd.Flags().StringVar(&difficulty, "difficulty", "", "Care difficulty: easy, medium or hard")
	cmd.Flags().StringVar(&soil, "soil", "", "Soil description")
	cmd.Flags().StringVar(&pot, "pot", "", "Pot description")
	cmd.Flags().StringVar(&position, "position", "", "Where the plant lives")
	cmd.Flags().StringVar(&watering, "watering-notes", "", "Watering instructions")
	cmd.Flags().StringVar(&repotting, "repotting-notes", "", "Repotting instructions")
	cmd.Flags().StringVar(&propagation, "propagation-notes", "", "Propagation instructions")
	cmd.Flags().StringVar(&notes, "notes", "", "Free-form notes")

	return cmd
}

func plantDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete [plant-id]",
		Short: "Delete a plant and its history",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return wire.PlantAdapter().Delete(context.Background(), wire.CurrentUserID(), args[0])
		},
	}
}
