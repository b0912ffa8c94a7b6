package cmd

import (
	"github.com/rs/zerolog/log"
	"github.com/spendwise-app/backend/internal/models"
	"github.com/spf13/cobra"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Create the default categories",
	Long:  `Creates the default categories. Nothing is changed if categories exist already.`,
	Args:  cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		db, err := connect()
		if err != nil {
			return err
		}
		defer closeDB(db)

		created, err := models.SeedCategories(db)
		if err != nil {
			return err
		}

		log.Info().Int("count", created).Msg("Seeded categories")
		return nil
	},
}
