// Package cmd contains the command line interface of the SpendWise backend.
package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spendwise-app/backend/internal/config"
	"github.com/spendwise-app/backend/internal/models"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

var cfg *config.Config

// RootCmd starts the server when called without any subcommands
var RootCmd = &cobra.Command{
	Use:               "spendwise",
	Short:             "Backend for the SpendWise expense tracker",
	Long:              `SpendWise records expenses, tracks budgets and summarizes spending in English, Telugu and Hindi.`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	RunE:              serve,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return RootCmd.Execute()
}

func init() {
	RootCmd.AddCommand(serveCmd, seedCmd)
}

// setup loads the configuration and sets up logging for all commands
func setup(_ *cobra.Command, _ []string) error {
	// A .env file is optional
	_ = godotenv.Load()

	cfg = config.Load()
	if err := cfg.Validate(); err != nil {
		return err
	}

	gin.SetMode(cfg.GinMode)

	// Log format can be explicitly set.
	// If it is not set, it defaults to human readable for development
	// and JSON for release
	output := io.Writer(os.Stdout)
	if (cfg.LogFormat == "" && gin.IsDebugging()) || cfg.LogFormat == "human" {
		output = zerolog.ConsoleWriter{Out: os.Stdout}
	}

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if gin.IsDebugging() {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = log.Output(output).With().Timestamp().Logger()

	return nil
}

// connect opens the configured database
func connect() (*gorm.DB, error) {
	if cfg.UsePostgres() {
		log.Info().Str("host", cfg.DBHost).Str("database", cfg.DBName).Msg("Using PostgreSQL")
		return models.ConnectPostgres(cfg.PostgresDSN())
	}

	err := os.MkdirAll(cfg.DataDir, os.ModePerm)
	if err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	log.Info().Str("path", cfg.SQLitePath()).Msg("Using SQLite")
	return models.Connect(cfg.SQLitePath())
}

func closeDB(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		return
	}

	if err := sqlDB.Close(); err != nil {
		log.Error().Err(err).Msg("Closing the database failed")
	}
}
