// Package config provides configuration loading functionality.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
	"github.com/remip/gitlab-roulette/internal/domain"
)

// Overrides holds values given on the command line. Non-empty values
// take precedence over the config file.
type Overrides struct {
	URL   string
	Token string
}

// Load returns the merged configuration: config file values overlaid
// with CLI overrides. A missing config file is not an error; a present
// but malformed one is.
func Load(path string, overrides Overrides) (*domain.Config, error) {
	cfg, err := loadFile(path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}
	if cfg == nil {
		cfg = &domain.Config{}
	}

	if overrides.URL != "" {
		cfg.URL = overrides.URL
	}
	if overrides.Token != "" {
		cfg.Token = overrides.Token
	}
	return cfg, nil
}

// loadFile loads a single TOML config file.
func loadFile(path string) (*domain.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg domain.Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: parse %s: %v", domain.ErrConfig, path, err)
	}
	return &cfg, nil
}
