package cmd

import (
	"os"
	"runtime"
	"strings"
	"text/template"

	"github.com/pokedex-cli/pokedex/color"
	"github.com/pokedex-cli/pokedex/constant"
	"github.com/pokedex-cli/pokedex/key"
	"github.com/pokedex-cli/pokedex/style"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

type versionInfo struct {
	App      string
	Version  string
	Revision string
	BuiltAt  string
	BuiltBy  string
	Platform string
	Go       string
	API      string
	Cache    bool
}

func currentVersionInfo() versionInfo {
	return versionInfo{
		App:      constant.Pokedex,
		Version:  constant.Version,
		Revision: constant.Revision,
		BuiltAt:  strings.TrimSpace(constant.BuiltAt),
		BuiltBy:  constant.BuiltBy,
		Platform: runtime.GOOS + "/" + runtime.GOARCH,
		Go:       runtime.Version(),
		API:      viper.GetString(key.APIBaseURL),
		Cache:    viper.GetBool(key.CacheDetails),
	}
}

var versionTemplate = lo.Must(template.New("version").Funcs(template.FuncMap{
	"faint": style.Faint,
	"bold":  style.Bold,
	"red":   style.Fg(color.Red),
	"onoff": func(on bool) string {
		if on {
			return style.Fg(color.Green)("enabled")
		}
		return style.Faint("disabled")
	},
}).Parse(`{{ red "●" }} {{ bold .App }} {{ .Version }}

  {{ faint "Revision" }}   {{ .Revision }}
  {{ faint "Built" }}      {{ .BuiltAt }} by {{ .BuiltBy }}
  {{ faint "Platform" }}   {{ .Platform }} ({{ .Go }})
  {{ faint "API" }}        {{ .API }}
  {{ faint "Cache" }}      {{ onoff .Cache }}
`))

func init() {
	rootCmd.AddCommand(versionCmd)
	versionCmd.SetOut(os.Stdout)
	versionCmd.Flags().BoolP("short", "s", false, "Display only the version string without metadata")
}

// versionCmd displays application version and build metadata.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Display version and build metadata",
	Long:  "Display the application version, build revision, platform and the catalog API in use.",
	Run: func(cmd *cobra.Command, args []string) {
		if lo.Must(cmd.Flags().GetBool("short")) {
			cmd.Println(constant.Version)
			return
		}

		handleErr(versionTemplate.Execute(cmd.OutOrStdout(), currentVersionInfo()))
	},
}
