package domain

import "fmt"

// RunConfig holds project-level configuration loaded from .teicheck.yaml.
// Zero values mean "not specified"; the CLI flags win over the file.
type RunConfig struct {
	Verbosity             string `yaml:"verbosity"               json:"verbosity,omitempty"`
	IncludeMetadataReport bool   `yaml:"include_metadata_report" json:"include_metadata_report,omitempty"`
	Catalog               *bool  `yaml:"catalog"                 json:"catalog,omitempty"`
}

// DefaultRunConfig returns the configuration used when no file is present.
func DefaultRunConfig() RunConfig {
	return RunConfig{Verbosity: "minimal"}
}

// Validate checks the config for invalid values and returns a descriptive
// error. The verbosity name is a closed lookup; typos fail here, before any
// rendering happens.
func (c RunConfig) Validate() error {
	if c.Verbosity != "" {
		if _, err := ParseVerbosity(c.Verbosity); err != nil {
			return fmt.Errorf("invalid verbosity: %w", err)
		}
	}
	return nil
}
