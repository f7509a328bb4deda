package config

import (
	"fmt"
	"strconv"
	"strings"
	"text/template"

	"github.com/pokedex-cli/pokedex/color"
	"github.com/pokedex-cli/pokedex/constant"
	"github.com/pokedex-cli/pokedex/icon"
	"github.com/pokedex-cli/pokedex/key"
	"github.com/pokedex-cli/pokedex/style"
	jsoniter "github.com/json-iterator/go"
	"github.com/samber/lo"
	"github.com/spf13/viper"
)

// Field is one registered configuration key.
type Field struct {
	Key         string
	Value       any
	Description string

	// Options restricts a string field to a fixed set of values. Empty accepts anything.
	Options []string

	// Min is the smallest value an int field accepts.
	Min int
}

// Pretty returns a colored string representation of the field for display.
func (f *Field) Pretty() string {
	var b strings.Builder
	lo.Must0(prettyTemplate.Execute(&b, f))
	return b.String()
}

// Env returns the environment variable name for this field.
func (f *Field) Env() string {
	return strings.ToUpper(constant.Pokedex + "_" + EnvKeyReplacer.Replace(f.Key))
}

// Parse converts raw user input to the type of the default value and checks it
// against Options and Min.
func (f *Field) Parse(raw string) (any, error) {
	raw = strings.TrimSpace(raw)

	switch f.Value.(type) {
	case int:
		n, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid integer value for %s: %s", f.Key, raw)
		}
		if n < f.Min {
			return nil, fmt.Errorf("%s must be at least %d, got %d", f.Key, f.Min, n)
		}
		return n, nil
	case bool:
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid boolean value for %s: %s", f.Key, raw)
		}
		return b, nil
	}

	if len(f.Options) == 0 {
		return raw, nil
	}

	lowered := strings.ToLower(raw)
	if !lo.Contains(f.Options, lowered) {
		return nil, fmt.Errorf("invalid value for %s: %s, expected one of %s", f.Key, raw, strings.Join(f.Options, ", "))
	}
	return lowered, nil
}

// MarshalJSON includes the current and default values.
func (f *Field) MarshalJSON() ([]byte, error) {
	return jsoniter.ConfigCompatibleWithStandardLibrary.Marshal(struct {
		Key         string   `json:"key"`
		Value       any      `json:"value"`
		Default     any      `json:"default"`
		Description string   `json:"description"`
		Type        string   `json:"type"`
		Options     []string `json:"options,omitempty"`
	}{
		Key:         f.Key,
		Value:       viper.Get(f.Key),
		Default:     f.Value,
		Description: f.Description,
		Type:        f.typeName(),
		Options:     f.Options,
	})
}

func (f *Field) typeName() string {
	switch f.Value.(type) {
	case string:
		return "string"
	case int:
		return "int"
	case bool:
		return "bool"
	default:
		return fmt.Sprintf("%T", f.Value)
	}
}

// Default holds every registered field by key.
var Default = make(map[string]Field)

// EnvExposed lists the keys bound to environment variables.
var EnvExposed []string

func init() {
	register := func(field Field) {
		if _, exists := Default[field.Key]; exists {
			panic("duplicate config key: " + field.Key)
		}
		Default[field.Key] = field
		EnvExposed = append(EnvExposed, field.Key)
	}

	register(Field{
		Key:         key.APIBaseURL,
		Value:       "https://pokeapi.co/api/v2",
		Description: "Base URL of the catalog API",
	})
	register(Field{
		Key:         key.NetworkTimeout,
		Value:       60,
		Description: "HTTP client timeout in seconds.\n0 disables the timeout",
	})
	register(Field{
		Key:         key.CatalogDensity,
		Value:       "comfortable",
		Description: "How much of each entry a grid card shows",
		Options:     []string{"comfortable", "compact"},
	})
	register(Field{
		Key:         key.CatalogStartPage,
		Value:       1,
		Description: "Page shown when the catalog opens.\nPages past the end fall back to the last page",
		Min:         1,
	})
	register(Field{
		Key:         key.CacheDetails,
		Value:       false,
		Description: "Cache entry details opened in the overlay.\nReopening a cached entry does not hit the API",
	})
	register(Field{
		Key:         key.CacheLifetime,
		Value:       24,
		Description: "Lifetime of cached entry details in hours",
	})
	register(Field{
		Key:         key.IconsVariant,
		Value:       "plain",
		Description: "Icons variant.\nnerd requires a nerd font",
		Options:     icon.AvailableVariants(),
	})
	register(Field{
		Key:         key.LogsWrite,
		Value:       false,
		Description: "Write logs",
	})
	register(Field{
		Key:         key.LogsLevel,
		Value:       "info",
		Description: "Log verbosity, from least to most verbose",
		Options:     []string{"panic", "fatal", "error", "warn", "info", "debug", "trace"},
	})
	register(Field{
		Key:         key.LogsJson,
		Value:       false,
		Description: "Use json format for logs",
	})
	register(Field{
		Key:         key.CliColored,
		Value:       true,
		Description: "Enable colored CLI output",
	})
}

var prettyTemplate = lo.Must(template.New("pretty").Funcs(template.FuncMap{
	"faint":  style.Faint,
	"purple": style.Fg(color.Purple),
	"blue":   style.Fg(color.Blue),
	"join":   strings.Join,
	"value":  func(k string) any { return viper.Get(k) },
	"hl": func(v any) string {
		switch value := v.(type) {
		case bool:
			b := strconv.FormatBool(value)
			if value {
				return style.Fg(color.Green)(b)
			}
			return style.Fg(color.Red)(b)
		case string:
			return style.Fg(color.Yellow)(value)
		default:
			return fmt.Sprint(value)
		}
	},
}).Parse(`{{ faint .Description }}
{{ blue "Key:" }}     {{ purple .Key }}
{{ blue "Env:" }}     {{ .Env }}
{{- if .Options }}
{{ blue "Options:" }} {{ join .Options ", " }}
{{- end }}
{{ blue "Value:" }}   {{ hl (value .Key) }}`))
