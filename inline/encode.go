package inline

import (
	"io"

	jsoniter "github.com/json-iterator/go"
	"gopkg.in/yaml.v3"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func writeJSON(out io.Writer, v any) error {
	encoder := json.NewEncoder(out)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

func writeYAML(out io.Writer, v any) error {
	encoder := yaml.NewEncoder(out)
	encoder.SetIndent(2)
	if err := encoder.Encode(v); err != nil {
		return err
	}
	return encoder.Close()
}

func write(out io.Writer, format Format, v any, text func(io.Writer) error) error {
	switch format {
	case FormatJSON:
		return writeJSON(out, v)
	case FormatYAML:
		return writeYAML(out, v)
	default:
		return text(out)
	}
}
