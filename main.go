package main

import (
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spendwise-app/backend/cmd"
)

// @title						SpendWise
// @description				Expense tracking with budgets and dashboards in English, Telugu and Hindi
// @BasePath					/
// @securityDefinitions.apikey	UserID
// @in							header
// @name						X-User-ID
func main() {
	if err := cmd.Execute(); err != nil {
		log.Error().Err(err).Msg("Exiting")
		os.Exit(1)
	}
}
