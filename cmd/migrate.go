package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/vibemix/playlist-api/internal/database"
	"github.com/vibemix/playlist-api/internal/models"
	"github.com/vibemix/playlist-api/pkg/config"
)

// migrateCmd represents the migrate command
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run database migrations",
	Long: `Apply the token store schema to the configured database.

The store only holds OAuth tokens, so migration is a single AutoMigrate
pass. 'serve' runs this automatically; the command exists for deployments
that provision the database ahead of first start.`,
	RunE: runMigrate,
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}

func runMigrate(cmd *cobra.Command, args []string) error {
	cfg, err := config.GetConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if cfg.Database.Path == "" {
		return fmt.Errorf("no database path configured")
	}

	db, err := database.Initialize(cfg.Database.Path, cfg.Database.LogQueries)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer db.Close()

	if err := db.AutoMigrate(&models.AuthToken{}); err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}

	fmt.Printf("Migrations applied to %s\n", cfg.Database.Path)
	return nil
}
