package main

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/spf13/cobra"

	"taskflow-pro/config"
	"taskflow-pro/pkg/database"
	"taskflow-pro/pkg/log"
)

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending database migrations",
		Long: `Applies the embedded schema migrations to the configured database.
The API server does the same on start, this is for deploy pipelines.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			cfg, err := config.Load()
			if err != nil {
				return err
			}

			l := log.Init(log.ZapConfig{Level: cfg.Logger.Level, Mode: cfg.Logger.Mode, Encoding: cfg.Logger.Encoding})
			db, err := openDatabase(ctx, l, cfg.Database)
			if err != nil {
				return err
			}
			defer db.Close()

			fmt.Fprintf(cmd.OutOrStdout(), "Migrations applied (%s)\n", cfg.Database.Driver)
			return nil
		},
	}
}

// openDatabase opens the configured database and brings its schema up to date.
func openDatabase(ctx context.Context, l log.Logger, cfg config.DatabaseConfig) (*sql.DB, error) {
	db, err := database.Open(ctx, l, database.Config{
		Driver:          cfg.Driver,
		DSN:             cfg.DSN,
		SQLitePath:      cfg.SQLitePath,
		MaxOpenConns:    cfg.MaxOpenConns,
		MaxIdleConns:    cfg.MaxIdleConns,
		ConnMaxLifetime: cfg.ConnMaxLifetime,
	})
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if err := database.Migrate(ctx, l, db, cfg.Driver); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return db, nil
}
