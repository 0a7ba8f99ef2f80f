package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

func checkOutputFormat(format string) error {
	switch format {
	case "", "text", "json", "yaml":
		return nil
	default:
		return fmt.Errorf("unsupported --output: %s", format)
	}
}

// render writes v as JSON or YAML, or calls text for the default format.
func render(w io.Writer, format string, v any, text func(io.Writer) error) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	case "text", "":
		return text(w)
	default:
		return fmt.Errorf("unsupported --output: %s", format)
	}
}
