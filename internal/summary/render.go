// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package summary

import (
	"encoding/json"
	"fmt"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/babynames/pkg/types"
)

// Render formats res for output. Text output is the year followed by one
// "<name> <rank>" line per name, newline-terminated. An empty format means text.
func Render(res types.ExtractionResult, format types.OutputFormat) ([]byte, error) {
	switch format {
	case types.FormatText, "":
		return []byte(res.Text() + "\n"), nil
	case types.FormatYAML:
		data, err := yaml.Marshal(&res)
		if err != nil {
			return nil, fmt.Errorf("marshaling YAML: %w", err)
		}
		return data, nil
	case types.FormatJSON:
		data, err := json.MarshalIndent(res, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("marshaling JSON: %w", err)
		}
		return append(data, '\n'), nil
	default:
		return nil, fmt.Errorf("unsupported format %q: use text, yaml, or json", format)
	}
}

// ParseFormat validates a format name from flags or config.
func ParseFormat(s string) (types.OutputFormat, error) {
	switch f := types.OutputFormat(s); f {
	case types.FormatText, types.FormatYAML, types.FormatJSON:
		return f, nil
	case "":
		return types.FormatText, nil
	default:
		return "", fmt.Errorf("unsupported format %q: use text, yaml, or json", s)
	}
}
