// Package app implements the main application commands.
package app

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "gostorefront",
	Short: "GoStorefront is the installation seeder for the storefront database",
	Long: `GoStorefront populates a fresh storefront database with the mandatory
reference data (currencies, countries, languages, tax categories, settings)
and an optional sample catalog of categories, manufacturers, products and
variant attribute combinations.`,
	Args: cobra.OnlyValidArgs,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
