package main

import (
	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-sheet-api/internal/database"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the database schema",
	RunE:  runMigrate,
}

func runMigrate(cmd *cobra.Command, args []string) error {
	cfg, log, err := bootstrap()
	if err != nil {
		return err
	}
	defer log.Sync()

	db, err := database.Open(&database.Config{
		Driver: cfg.Database.Driver,
		DSN:    cfg.Database.DSN,
		Logger: log,
	})
	if err != nil {
		return err
	}
	defer func() { _ = database.Close(db) }()

	if err := database.Migrate(cmd.Context(), db); err != nil {
		return err
	}

	log.Info("database schema migrated", "driver", cfg.Database.Driver)
	return nil
}
