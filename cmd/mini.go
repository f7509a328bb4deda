package cmd

import (
	"github.com/pokedex-cli/pokedex/key"
	"github.com/pokedex-cli/pokedex/mini"
	"github.com/pokedex-cli/pokedex/pokeapi"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.AddCommand(miniCmd)
}

// miniCmd browses the catalog through a sequence of prompts instead of the full-screen interface.
var miniCmd = &cobra.Command{
	Use:   "mini",
	Short: "Browse the catalog through simple prompts",
	Long:  `Browse the catalog one prompt at a time, without taking over the whole terminal.`,
	Run: func(cmd *cobra.Command, args []string) {
		density, err := configuredDensity()
		handleErr(err)

		options := mini.Options{
			Client:  pokeapi.FromConfig(),
			Page:    viper.GetInt(key.CatalogStartPage),
			Density: density,
		}
		handleErr(mini.Run(cmd.Context(), &options))
	},
}
