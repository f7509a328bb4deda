package cmd

import (
	"io"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/invopop/jsonschema"
	jsoniter "github.com/json-iterator/go"
	"github.com/pokedex-cli/pokedex/catalog"
	"github.com/pokedex-cli/pokedex/filesystem"
	"github.com/pokedex-cli/pokedex/inline"
	"github.com/pokedex-cli/pokedex/key"
	"github.com/pokedex-cli/pokedex/pokeapi"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func completionFormats(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
	return inline.AvailableFormats(), cobra.ShellCompDirectiveNoFileComp
}

// inlineOutput opens the --output file, or stdout when the flag is empty.
func inlineOutput(cmd *cobra.Command) (io.Writer, func()) {
	output := lo.Must(cmd.Flags().GetString("output"))
	if output == "" {
		return os.Stdout, func() {}
	}

	file, err := filesystem.API().Create(output)
	handleErr(err)
	return file, func() { _ = file.Close() }
}

func init() {
	rootCmd.AddCommand(inlineCmd)

	inlineCmd.PersistentFlags().StringP("format", "f", string(inline.FormatText), "Output format (text, json or yaml)")
	inlineCmd.PersistentFlags().StringP("output", "o", "", "Specify a file path to write the command output")
	_ = inlineCmd.RegisterFlagCompletionFunc("format", completionFormats)
}

// inlineCmd prints catalog data without any interaction, for scripts and pipes.
var inlineCmd = &cobra.Command{
	Use:   "inline",
	Short: "Print catalog data non-interactively",
	Long: `Print catalog pages and entries without any interaction.

Use "inline page" to list one page of the catalog and "inline show" to print
the profile of a single entry. The json and yaml formats follow the schema
printed by "inline schema".`,
}

func init() {
	inlineCmd.AddCommand(inlinePageCmd)

	inlinePageCmd.Flags().StringP("filter", "F", "", "Keep only entries whose name fuzzy-matches the filter")
}

// inlinePageCmd prints one page of the catalog.
var inlinePageCmd = &cobra.Command{
	Use:   "page",
	Short: "Print one page of the catalog",
	Example: `  pokedex inline page --page 3
  pokedex inline page --filter char --format json`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		format, err := inline.ParseFormat(lo.Must(cmd.Flags().GetString("format")))
		handleErr(err)

		density, err := configuredDensity()
		handleErr(err)

		out, done := inlineOutput(cmd)
		defer done()

		options := &inline.PageOptions{
			Out:     out,
			Client:  pokeapi.Uncached(pokeapi.FromConfig()),
			Page:    viper.GetInt(key.CatalogStartPage),
			Filter:  lo.Must(cmd.Flags().GetString("filter")),
			Format:  format,
			Density: density,
		}
		handleErr(inline.RunPage(cmd.Context(), options))
	},
}

func init() {
	inlineCmd.AddCommand(inlineShowCmd)

	inlineShowCmd.Flags().StringP("tab", "t", "", "Print only one section (stats, moves or abilities)")
	_ = inlineShowCmd.RegisterFlagCompletionFunc("tab", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return lo.Map(catalog.Tabs, func(t catalog.Tab, _ int) string {
			return t.String()
		}), cobra.ShellCompDirectiveNoFileComp
	})
}

// inlineShowCmd prints the profile of one entry.
var inlineShowCmd = &cobra.Command{
	Use:     "show [name or id]",
	Short:   "Print the profile of a single entry",
	Example: "  pokedex inline show pikachu --tab moves",
	Args:    cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		format, err := inline.ParseFormat(lo.Must(cmd.Flags().GetString("format")))
		handleErr(err)

		tab := mo.None[catalog.Tab]()
		if name := lo.Must(cmd.Flags().GetString("tab")); name != "" {
			t, err := catalog.ParseTab(name)
			handleErr(err)
			tab = mo.Some(t)
		}

		out, done := inlineOutput(cmd)
		defer done()

		options := &inline.ShowOptions{
			Out:    out,
			Client: pokeapi.FromConfig(),
			Query:  args[0],
			Tab:    tab,
			Format: format,
		}
		handleErr(inline.RunShow(cmd.Context(), options))
	},
}

func init() {
	inlineCmd.AddCommand(inlineSchemaCmd)

	inlineSchemaCmd.Flags().BoolP("detail", "D", false, "Generate the JSON Schema of inline show instead of inline page")
}

// inlineSchemaCmd generates JSON schemas for structured inline mode outputs.
var inlineSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Generate JSON schemas for structured inline mode outputs",
	Run: func(cmd *cobra.Command, args []string) {
		reflector := new(jsonschema.Reflector)
		reflector.Anonymous = true
		reflector.Namer = func(t reflect.Type) string {
			name := t.Name()
			switch strings.ToLower(name) {
			case "entry", "profile", "stats", "ability":
				return filepath.Base(t.PkgPath()) + "." + name
			}

			return name
		}

		var schema *jsonschema.Schema

		switch {
		case lo.Must(cmd.Flags().GetBool("detail")):
			schema = reflector.Reflect(&inline.DetailOutput{})
		default:
			schema = reflector.Reflect(&inline.PageOutput{})
		}

		handleErr(jsoniter.ConfigCompatibleWithStandardLibrary.NewEncoder(cmd.OutOrStdout()).Encode(schema))
	},
}
