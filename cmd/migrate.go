package cmd

import (
	"github.com/Estefano-cmd/impulsoApi/config"
	"github.com/Estefano-cmd/impulsoApi/internal/database"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

// migrateCmd represents the migrate command
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run database migrations",
	Long: `Runs database migrations to ensure the database schema
is up-to-date. This is useful for CI/CD pipelines or initial setup.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runMigration()
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}

// runMigration executes the database migrations
func runMigration() error {
	cfg, err := config.Load()
	if err != nil {
		return errors.Wrap(err, "failed to load configuration")
	}

	log.Info("Connecting to database...")
	db, err := database.Connect(cfg.Database)
	if err != nil {
		return err
	}
	defer db.Close()

	log.Info("Running database migrations...")
	if err := database.AutoMigrate(db); err != nil {
		return err
	}

	log.Info("Database migrations completed successfully")
	return nil
}
