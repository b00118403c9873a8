package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/goccy/go-yaml"
	"github.com/k1LoW/expand"
)

var (
	homePath       string
	configHomePath string
	stateHomePath  string
)

type Config struct {
	// directory the icon files are written to
	OutDir string `yaml:"outDir,omitempty" json:"outDir,omitempty"`
	// Whether to verify the written files after generating them
	Verify *bool `yaml:"verify,omitempty" json:"verify,omitempty"`
}

func init() {
	var err error
	homePath, err = os.UserHomeDir()
	if err != nil {
		panic(fmt.Sprintf("failed to get home directory: %v", err))
	}
}

// Load loads the configuration from the config file.
// It searches for config files in the following order:
// 1. $XDG_CONFIG_HOME/favgen/config-{profile}.yml
// 2. $XDG_CONFIG_HOME/favgen/config.yml
// Environment variables in the file are expanded before decoding.
// If no config file is found, it returns an empty Config struct.
func Load(profile string) (*Config, error) {
	var configBasePaths []string
	if profile != "" {
		configBasePaths = append(configBasePaths, filepath.Join(configPath(), fmt.Sprintf("config-%s", profile)))
	}
	configBasePaths = append(configBasePaths, filepath.Join(configPath(), "config"))
	cfg := &Config{}
	for _, basePath := range configBasePaths {
		for _, ext := range []string{".yml", ".yaml"} {
			configPath := basePath + ext
			if b, err := os.ReadFile(configPath); err == nil {
				if err := yaml.Unmarshal(expand.ExpandenvYAMLBytes(b), cfg); err != nil {
					return nil, fmt.Errorf("failed to unmarshal config: %w", err)
				}
				return cfg, nil
			}
		}
	}
	// If no config file is found, return an empty config
	return cfg, nil
}

// VerifyEnabled reports whether verification after generating is requested.
func (c *Config) VerifyEnabled() bool {
	return c.Verify != nil && *c.Verify
}

// configPath returns the path to the configuration directory.
func configPath() string {
	if configHomePath != "" {
		return configHomePath
	}
	if v := os.Getenv("XDG_CONFIG_HOME"); v != "" {
		configHomePath = filepath.Join(v, "favgen")
	} else {
		configHomePath = filepath.Join(homePath, ".config", "favgen")
	}
	return configHomePath
}

func StateHomePath() string {
	if stateHomePath != "" {
		return stateHomePath
	}
	if v := os.Getenv("XDG_STATE_HOME"); v != "" {
		stateHomePath = filepath.Join(v, "favgen")
	} else {
		stateHomePath = filepath.Join(homePath, ".local", "state", "favgen")
	}
	return stateHomePath
}
