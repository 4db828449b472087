package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	weaveerrors "github.com/mrz1836/weave/internal/errors"
)

// Load reads a workflow configuration from a YAML or JSON file.
// The format is auto-detected based on file extension (.json for JSON,
// otherwise YAML). Returns an error if the file cannot be read or parsed;
// content rules are the validator's job, not Load's.
func Load(path string) (*FileConfig, error) {
	data, err := os.ReadFile(path) //nolint:gosec // Path comes from a user-provided flag
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", weaveerrors.ErrConfigFileMissing, path)
		}
		return nil, fmt.Errorf("%w: %w", weaveerrors.ErrConfigLoadFailed, err)
	}

	var cfg FileConfig
	if detectFormat(path) == "json" {
		if parseErr := json.Unmarshal(data, &cfg); parseErr != nil {
			return nil, fmt.Errorf("%w: %w", weaveerrors.ErrConfigParse, parseErr)
		}
	} else {
		if parseErr := yaml.Unmarshal(data, &cfg); parseErr != nil {
			return nil, fmt.Errorf("%w: %w", weaveerrors.ErrConfigParse, parseErr)
		}
	}

	return &cfg, nil
}

// Save writes a workflow configuration file as YAML.
// Used by the wizard to produce starter configurations.
func Save(path string, cfg *FileConfig) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling configuration: %w", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// detectFormat returns the file format based on extension.
// Returns "json" for .json files, "yaml" for everything else.
func detectFormat(path string) string {
	if strings.ToLower(filepath.Ext(path)) == ".json" {
		return "json"
	}
	return "yaml"
}
