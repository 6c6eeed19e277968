// Package output renders a calculated report for people and machines.
package output

import (
	"io"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"

	"github.com/dotpep/calc-tax-salary-kz/core/tax"
	"github.com/dotpep/calc-tax-salary-kz/internal/errors"
)

// Format represents output format type
type Format string

const (
	// FormatText is the step-by-step breakdown for a terminal
	FormatText Format = "text"

	// FormatJSON is machine-readable JSON
	FormatJSON Format = "json"

	// FormatYAML is machine-readable YAML
	FormatYAML Format = "yaml"
)

// Formatter produces output in a specific format
type Formatter interface {
	// Format returns the format type
	Format() Format

	// Render produces output for the given report
	Render(w io.Writer, report *Report) error
}

// Report is one calculation ready for rendering
type Report struct {
	// Salary is the gross salary the components were derived from
	Salary tax.Salary `json:"salary" yaml:"salary"`

	// Components is the calculated breakdown
	Components tax.Components `json:"components" yaml:"components"`

	// Metadata contains execution context
	Metadata Metadata `json:"metadata" yaml:"metadata"`
}

// Metadata contains execution context
type Metadata struct {
	// CalculationID correlates the report with log lines
	CalculationID string `json:"calculation_id" yaml:"calculation_id"`

	// Timestamp is when the calculation was performed
	Timestamp string `json:"timestamp" yaml:"timestamp"`

	// Version is the tool version
	Version string `json:"version" yaml:"version"`
}

// NewReport calculates the components for salary and stamps the result
func NewReport(salary tax.Salary, version string) *Report {
	return &Report{
		Salary:     salary,
		Components: tax.Calculate(salary),
		Metadata: Metadata{
			CalculationID: uuid.NewString(),
			Timestamp:     time.Now().UTC().Format(time.RFC3339),
			Version:       version,
		},
	}
}

// Registry manages formatter registration
type Registry struct {
	formatters map[Format]Formatter
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{formatters: make(map[Format]Formatter)}
}

// DefaultRegistry holds the text, json and yaml formatters
func DefaultRegistry(opts TextOptions) *Registry {
	r := NewRegistry()
	_ = r.Register(NewTextFormatter(opts))
	_ = r.Register(NewJSONFormatter())
	_ = r.Register(NewYAMLFormatter())
	return r
}

// Register adds a formatter to the registry
func (r *Registry) Register(formatter Formatter) error {
	if _, exists := r.formatters[formatter.Format()]; exists {
		return errors.Newf(errors.TypeInternal, "formatter already registered: %s", formatter.Format())
	}
	r.formatters[formatter.Format()] = formatter
	return nil
}

// GetFormatter returns a formatter for a format type
func (r *Registry) GetFormatter(format Format) (Formatter, bool) {
	f, ok := r.formatters[format]
	return f, ok
}

// Lookup is GetFormatter with a user-facing error for unknown formats
func (r *Registry) Lookup(name string) (Formatter, error) {
	f, ok := r.GetFormatter(Format(strings.ToLower(strings.TrimSpace(name))))
	if !ok {
		supported := lo.Map(r.Formats(), func(f Format, _ int) string { return string(f) })
		return nil, errors.Newf(errors.TypeConfig, "unknown output format %q (supported: %s)",
			name, strings.Join(supported, ", ")).WithContext("format", name)
	}
	return f, nil
}

// Formats returns the registered format names, sorted
func (r *Registry) Formats() []Format {
	formats := lo.Keys(r.formatters)
	sort.Slice(formats, func(i, j int) bool { return formats[i] < formats[j] })
	return formats
}
