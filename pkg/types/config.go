// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// OutputFormat selects how an ExtractionResult is rendered.
type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatYAML OutputFormat = "yaml"
	FormatJSON OutputFormat = "json"
)

// SummaryConfig holds settings for a summarize run.
type SummaryConfig struct {
	// SummaryFile writes each result to "<input>.summary" instead of stdout.
	SummaryFile bool `json:"summaryfile" yaml:"summaryfile" mapstructure:"summaryfile"`

	// Format selects the output rendering: text, yaml, or json (default text).
	Format OutputFormat `json:"format" yaml:"format" mapstructure:"format"`
}
