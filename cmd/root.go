// Package cmd implements the command-line interface for pokedex.
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/pokedex-cli/pokedex/catalog"
	"github.com/pokedex-cli/pokedex/color"
	"github.com/pokedex-cli/pokedex/constant"
	"github.com/pokedex-cli/pokedex/icon"
	"github.com/pokedex-cli/pokedex/key"
	"github.com/pokedex-cli/pokedex/log"
	"github.com/pokedex-cli/pokedex/pokeapi"
	"github.com/pokedex-cli/pokedex/style"
	"github.com/pokedex-cli/pokedex/tui"
	cc "github.com/ivanpirog/coloredcobra"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.Flags().BoolP("version", "v", false, "Print the application version")

	rootCmd.PersistentFlags().StringP("icons", "I", "", "Set the visual icon variant (e.g., nerd, emoji, squares)")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("icons", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return icon.AvailableVariants(), cobra.ShellCompDirectiveDefault
	}))
	lo.Must0(viper.BindPFlag(key.IconsVariant, rootCmd.PersistentFlags().Lookup("icons")))

	rootCmd.PersistentFlags().IntP("page", "p", 1, "The catalog page to open first")
	lo.Must0(viper.BindPFlag(key.CatalogStartPage, rootCmd.PersistentFlags().Lookup("page")))

	rootCmd.PersistentFlags().StringP("density", "d", "", "Card density of the grid (comfortable or compact)")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("density", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return []string{string(catalog.Comfortable), string(catalog.Compact)}, cobra.ShellCompDirectiveNoFileComp
	}))
	lo.Must0(viper.BindPFlag(key.CatalogDensity, rootCmd.PersistentFlags().Lookup("density")))
}

// rootCmd defines the entry point for the pokedex application.
var rootCmd = &cobra.Command{
	Use:   constant.Pokedex,
	Short: "A paginated terminal catalog of Pokémon",
	Long: constant.AsciiArtLogo + "\n" +
		style.New().Italic(true).Foreground(color.HiRed).Render("    - A paginated terminal catalog of Pokémon"),
	Run: func(cmd *cobra.Command, args []string) {
		if cmd.Flags().Changed("version") {
			versionCmd.Run(versionCmd, args)
			return
		}

		density, err := configuredDensity()
		handleErr(err)

		options := tui.Options{
			Client:  pokeapi.FromConfig(),
			Page:    viper.GetInt(key.CatalogStartPage),
			Density: density,
		}
		handleErr(tui.Run(cmd.Context(), &options))
	},
}

// configuredDensity resolves the density from flags, env and the config file.
func configuredDensity() (catalog.Density, error) {
	return catalog.ParseDensity(viper.GetString(key.CatalogDensity))
}

// Execute initializes child command routing and processes the CLI entry point.
func Execute() {
	if viper.GetBool(key.CliColored) {
		cc.Init(&cc.Config{
			RootCmd:       rootCmd,
			Headings:      cc.HiCyan + cc.Bold + cc.Underline,
			Commands:      cc.HiYellow + cc.Bold,
			Example:       cc.Italic,
			ExecName:      cc.Bold,
			Flags:         cc.Bold,
			FlagsDataType: cc.Italic + cc.HiBlue,
		})
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Println(err)
		stop()
		os.Exit(1)
	}
}

func handleErr(err error) {
	if err != nil {
		log.Error(err)
		_, _ = fmt.Fprintf(os.Stderr, "%s %s\n", icon.Get(icon.Fail), strings.Trim(err.Error(), " \n"))
		os.Exit(1)
	}
}
