package output

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/mj1618/wsicons/internal/model"
	"gopkg.in/yaml.v3"
)

// Format represents the output format.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// ParseFormat validates a --format flag value.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case "", FormatYAML:
		return FormatYAML, nil
	case FormatJSON:
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("unsupported format: %s (use yaml or json)", s)
	}
}

// OutputFormat is the current output format, set by the root command's --format flag.
var OutputFormat Format = FormatYAML

// PrettyOutput enables pretty-printing for JSON output.
var PrettyOutput bool

// TreeResult is the top-level output of the `tree` command.
type TreeResult struct {
	Socket string           `yaml:"socket,omitempty" json:"socket,omitempty"`
	TS     int64            `yaml:"ts"               json:"ts"`
	Tree   *model.Node      `yaml:"tree,omitempty"   json:"tree,omitempty"`
	Nodes  []model.FlatNode `yaml:"nodes,omitempty"  json:"nodes,omitempty"`
}

// Print serializes v to stdout in the current output format.
func Print(v interface{}) error {
	return Fprint(os.Stdout, v, OutputFormat, PrettyOutput)
}

// Fprint serializes v to w in format f.
func Fprint(w io.Writer, v interface{}, f Format, pretty bool) error {
	b, err := Marshal(v, f, pretty)
	if err != nil {
		return err
	}
	_, err = w.Write(b)
	return err
}

// Marshal serializes v in format f. JSON is compact and single-line
// unless pretty is set; YAML ignores pretty.
func Marshal(v interface{}, f Format, pretty bool) ([]byte, error) {
	var buf bytes.Buffer
	switch f {
	case FormatJSON:
		enc := json.NewEncoder(&buf)
		if pretty {
			enc.SetIndent("", "  ")
		}
		enc.SetEscapeHTML(false)
		if err := enc.Encode(v); err != nil {
			return nil, fmt.Errorf("json encode: %w", err)
		}
	case FormatYAML:
		enc := yaml.NewEncoder(&buf)
		if err := enc.Encode(v); err != nil {
			return nil, fmt.Errorf("yaml encode: %w", err)
		}
		if err := enc.Close(); err != nil {
			return nil, fmt.Errorf("yaml encode: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported output format: %s", f)
	}
	return buf.Bytes(), nil
}
