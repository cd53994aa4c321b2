package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/teicheck/teicheck/internal/domain"
	"gopkg.in/yaml.v3"
)

const fileName = ".teicheck.yaml"

// YAMLLoader implements domain.ConfigLoader by reading .teicheck.yaml.
type YAMLLoader struct{}

// New creates a YAMLLoader.
func New() *YAMLLoader { return &YAMLLoader{} }

// Load reads .teicheck.yaml from projectPath.
// Returns DefaultRunConfig if the file does not exist.
func (l *YAMLLoader) Load(projectPath string) (domain.RunConfig, error) {
	data, err := os.ReadFile(filepath.Join(projectPath, fileName))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return domain.DefaultRunConfig(), nil
		}
		return domain.RunConfig{}, err
	}

	var cfg domain.RunConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return domain.RunConfig{}, fmt.Errorf("parsing %s: %w", fileName, err)
	}

	// Reject typos before any rendering happens.
	if err := cfg.Validate(); err != nil {
		return domain.RunConfig{}, fmt.Errorf("invalid %s: %w", fileName, err)
	}

	if cfg.Verbosity == "" {
		cfg.Verbosity = domain.DefaultRunConfig().Verbosity
	}

	return cfg, nil
}
