package output

import (
	"encoding/json"
	"io"

	"gopkg.in/yaml.v2"

	"github.com/dotpep/calc-tax-salary-kz/internal/errors"
)

// JSONFormatter renders the report as indented JSON
type JSONFormatter struct{}

// NewJSONFormatter creates a JSON formatter
func NewJSONFormatter() *JSONFormatter {
	return &JSONFormatter{}
}

// Format returns FormatJSON
func (f *JSONFormatter) Format() Format {
	return FormatJSON
}

// Render writes the report as JSON. Amounts are encoded as decimal strings.
func (f *JSONFormatter) Render(w io.Writer, report *Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(report); err != nil {
		return errors.Output("failed to encode JSON report", err)
	}
	return nil
}

// YAMLFormatter renders the report as YAML
type YAMLFormatter struct{}

// NewYAMLFormatter creates a YAML formatter
func NewYAMLFormatter() *YAMLFormatter {
	return &YAMLFormatter{}
}

// Format returns FormatYAML
func (f *YAMLFormatter) Format() Format {
	return FormatYAML
}

// Render writes the report as YAML
func (f *YAMLFormatter) Render(w io.Writer, report *Report) error {
	data, err := yaml.Marshal(report)
	if err != nil {
		return errors.Output("failed to encode YAML report", err)
	}
	if _, err := w.Write(data); err != nil {
		return errors.Output("failed to write YAML report", err)
	}
	return nil
}
