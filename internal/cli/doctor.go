package cli

import (
	"database/sql"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/example/verdant/internal/config"
	"github.com/example/verdant/internal/db"
)

// CheckResult represents the outcome of a single check
type CheckResult struct {
	Name    string
	Status  string // "✓", "⚠", "✗"
	Details string // Only shown if Status != "✓"
}

// DoctorCmd returns the doctor command for environment validation
func DoctorCmd() *cobra.Command {
	var quiet bool

	cmd := &cobra.Command{
		Use:   "doctor",
		Short: "Validate the verdant installation",
		Long: `Health check for the verdant installation.

Validates:
- Config file (~/.verdant/config.json)
- Database file and schema version
- Binary installation and PATH

Examples:
  verdant doctor              # Run full health check
  verdant doctor --quiet      # Exit code only (0=healthy, 1=issues)`,
		RunE: func(cmd *cobra.Command, args []string) error {
			results := []CheckResult{
				checkConfig(),
				checkDatabase(),
				checkBinary(),
			}

			hasErrors := false
			for _, r := range results {
				if r.Status == "✗" {
					hasErrors = true
					break
				}
			}

			if !quiet {
				fmt.Println()
				fmt.Println("Check              Status")
				fmt.Println("─────────────────────────")
				for _, r := range results {
					fmt.Printf("%-18s %s\n", r.Name, r.Status)
				}
				fmt.Println()

				hasDetails := false
				for _, r := range results {
					if r.Status != "✓" && r.Details != "" {
						if !hasDetails {
							fmt.Println("Details:")
							hasDetails = true
						}
						fmt.Printf("\n%s:\n%s\n", r.Name, r.Details)
					}
				}

				if hasErrors {
					fmt.Println("\n⚠ Issues found. Run 'verdant init' to set up.")
				} else {
					fmt.Println("All checks passed.")
				}
			}

			if hasErrors {
				return fmt.Errorf("environment validation failed")
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Quiet mode - exit code only")

	return cmd
}

// checkConfig validates the config file
func checkConfig() CheckResult {
	cfg, err := config.Load()
	if err != nil {
		return CheckResult{Name: "Config", Status: "✗", Details: "  No config found. Run 'verdant init'."}
	}
	if cfg.UserID == "" {
		return CheckResult{Name: "Config", Status: "✗", Details: "  Config has no user_id. Re-run 'verdant init'."}
	}
	return CheckResult{Name: "Config", Status: "✓"}
}

// checkDatabase validates the database file and its schema version
func checkDatabase() CheckResult {
	path := ""
	if cfg, err := config.Load(); err == nil {
		path = cfg.DBPath
	}
	if path == "" {
		p, err := db.DefaultPath()
		if err != nil {
			return CheckResult{Name: "Database", Status: "✗", Details: "  Cannot resolve database path"}
		}
		path = p
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return CheckResult{Name: "Database", Status: "✗", Details: fmt.Sprintf("  No database at %s. Run 'verdant init'.", path)}
	}

	// Open read-only so doctor never migrates or mutates.
	conn, err := sql.Open("sqlite3", fmt.Sprintf("file:%s?mode=ro", path))
	if err != nil {
		return CheckResult{Name: "Database", Status: "✗", Details: fmt.Sprintf("  Cannot open database: %v", err)}
	}
	defer conn.Close()

	var version int
	if err := conn.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_version").Scan(&version); err != nil {
		return CheckResult{Name: "Database", Status: "✗", Details: fmt.Sprintf("  Cannot read schema version: %v", err)}
	}

	if version < db.LatestVersion() {
		return CheckResult{
			Name:    "Database",
			Status:  "⚠",
			Details: fmt.Sprintf("  Schema version %d behind latest %d. Any command will migrate.", version, db.LatestVersion()),
		}
	}

	return CheckResult{Name: "Database", Status: "✓"}
}

// checkBinary validates the binary is on PATH
func checkBinary() CheckResult {
	binPath, err := exec.LookPath("verdant")
	if err != nil {
		return CheckResult{Name: "Binary", Status: "⚠", Details: "  'verdant' not found on PATH"}
	}
	if _, err := os.Stat(filepath.Clean(binPath)); err != nil {
		return CheckResult{Name: "Binary", Status: "⚠", Details: fmt.Sprintf("  Cannot stat binary: %v", err)}
	}
	return CheckResult{Name: "Binary", Status: "✓"}
}
