// Package cliconfig loads default settings for the sfstool CLI from a
// YAML file, so recurring pipelines do not have to repeat flags.
package cliconfig

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds CLI defaults. Flags given on the command line win over
// values loaded from a file.
type Config struct {
	Comment    string `yaml:"comment"`
	Delimiter  string `yaml:"delimiter"`
	PerSite    bool   `yaml:"persite"`
	IncludeDxy bool   `yaml:"include_dxy"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{Comment: "#"}
}

// Load reads a YAML config file on top of the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	raw, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("cliconfig: reading %s: %w", path, err)
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return cfg, fmt.Errorf("cliconfig: parsing %s: %w", path, err)
	}
	if cfg.Comment == "" {
		cfg.Comment = "#"
	}
	return cfg, nil
}
