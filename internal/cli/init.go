package cli

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/example/verdant/internal/config"
	"github.com/example/verdant/internal/db"
)

// InitCmd returns the init command
func InitCmd() *cobra.Command {
	var dbPath string

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize the verdant database and config",
		Long:  `Initialize the verdant database at ~/.verdant/verdant.db and write the config file.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := config.Load(); err == nil {
				fmt.Println("verdant is already initialized.")
				return nil
			}

			cfg := &config.Config{
				Version: "1",
				UserID:  uuid.NewString(),
				DBPath:  dbPath,
			}
			if err := config.Save(cfg); err != nil {
				return fmt.Errorf("failed to write config: %w", err)
			}
			fmt.Println("✓ Config written to ~/.verdant/config.json")

			path := dbPath
			if path == "" {
				p, err := db.DefaultPath()
				if err != nil {
					return fmt.Errorf("failed to resolve database path: %w", err)
				}
				path = p
			}

			fmt.Printf("Initializing database at %s\n", path)
			if _, err := db.GetDBAt(dbPath); err != nil {
				return fmt.Errorf("failed to initialize database: %w", err)
			}
			fmt.Println("✓ Database initialized successfully")

			fmt.Println()
			fmt.Println("Next steps:")
			fmt.Println("  verdant plant create \"Monstera\"")
			fmt.Println("  verdant dashboard")

			return nil
		},
	}

	cmd.Flags().StringVar(&dbPath, "db-path", "", "Database file location (default ~/.verdant/verdant.db)")

	return cmd
}
