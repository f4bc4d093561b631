package main

import (
	"log/slog"
	"os"

	"shopdelivery/cmd"

	"github.com/labstack/gommon/log"
	"github.com/spf13/cobra"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// envFile is shared by every subcommand through the persistent --env-file flag.
var envFile string

func main() {
	root := &cobra.Command{
		Use:           "shopdelivery",
		Short:         "Delivery packaging service for shops",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&envFile, "env-file", ".env", "dotenv file loaded before reading the environment")
	root.AddCommand(newServeCommand(), newMigrateCommand())

	if err := root.Execute(); err != nil {
		log.Fatal(err)
	}
}

func newLogger(level slog.Level) *slog.Logger {
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
}

func openDatabase(configs cmd.Config) (*gorm.DB, error) {
	return gorm.Open(postgres.Open(configs.DSN()), &gorm.Config{})
}
