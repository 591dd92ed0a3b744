package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

// Config holds optional setup overrides loaded from a project config file.
type Config struct {
	Setup struct {
		Profile    string `yaml:"profile" json:"profile"`
		ScriptPath string `yaml:"script_path" json:"script_path"`
		CachePath  string `yaml:"cache_path" json:"cache_path"`
	} `yaml:"setup" json:"setup"`
}

var ErrNoConfigFile = errors.New("no config file found")

// LoadConfig loads the configuration from a file (either .yaml or .json).
// A missing config file yields a zero Config, not an error.
func LoadConfig(fs afero.Fs) (*Config, error) {
	configFilePath, err := FindConfigFile(fs)
	if errors.Is(err, ErrNoConfigFile) {
		return &Config{}, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to look for config file: %w", err)
	}

	fileData, err := afero.ReadFile(fs, configFilePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Try to unmarshal YAML first
	var cfg Config
	if err := yaml.Unmarshal(fileData, &cfg); err != nil {
		// If YAML fails, try JSON
		if err := json.Unmarshal(fileData, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	return &cfg, nil
}

// FindConfigFile looks for tempcredsctl.yml, tempcredsctl.yaml, or
// tempcredsctl.json in the current directory.
func FindConfigFile(fs afero.Fs) (string, error) {
	names := []string{"tempcredsctl.yml", "tempcredsctl.yaml", "tempcredsctl.json"}

	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}

	for _, name := range names {
		possiblePath := filepath.Join(dir, name)
		if _, err := fs.Stat(possiblePath); err == nil {
			return possiblePath, nil
		}
	}

	return "", ErrNoConfigFile
}
