package main

import (
	"fmt"

	"shopdelivery/cmd"
	"shopdelivery/internal/adapters/out/postgres"

	"github.com/spf13/cobra"
)

func newMigrateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema",
		RunE: func(c *cobra.Command, _ []string) error {
			configs, err := cmd.LoadConfig(envFile)
			if err != nil {
				return err
			}
			logger := newLogger(configs.LogLevel)

			db, err := openDatabase(configs)
			if err != nil {
				return fmt.Errorf("connect to database: %w", err)
			}

			if err = postgres.Migrate(db.WithContext(c.Context())); err != nil {
				return fmt.Errorf("migrate: %w", err)
			}

			logger.InfoContext(c.Context(), "Schema is up to date", "tables", len(postgres.Models()))
			return nil
		},
	}
}
