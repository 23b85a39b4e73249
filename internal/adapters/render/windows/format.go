package windows

import (
	"encoding/json"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

type Format string

const (
	FormatTable Format = "table"
	FormatJSON  Format = "json"
	FormatYAML  Format = "yaml"
)

var formats = []Format{FormatTable, FormatJSON, FormatYAML}

// FormatNames lists the accepted --format values.
func FormatNames() string {
	names := make([]string, 0, len(formats))
	for _, format := range formats {
		names = append(names, string(format))
	}
	return strings.Join(names, ", ")
}

func ParseFormat(value string) (Format, error) {
	normalized := Format(strings.ToLower(strings.TrimSpace(value)))
	switch normalized {
	case "":
		return FormatTable, nil
	case FormatTable, FormatJSON, FormatYAML:
		return normalized, nil
	case "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("unsupported format %q (want one of: %s)", value, FormatNames())
	}
}

func encode(format Format, doc any) (string, error) {
	switch format {
	case FormatJSON:
		out, err := json.MarshalIndent(doc, "", "  ")
		if err != nil {
			return "", fmt.Errorf("encode json: %w", err)
		}
		return string(out) + "\n", nil
	case FormatYAML:
		out, err := yaml.Marshal(doc)
		if err != nil {
			return "", fmt.Errorf("encode yaml: %w", err)
		}
		return string(out), nil
	default:
		return "", fmt.Errorf("format %q is not a document format", format)
	}
}
