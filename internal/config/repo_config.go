package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

var (
	ErrRepoConfigNotFound = errors.New("repo config file not found")
	ErrRepoConfigParsing  = errors.New("repo config parsing failed")
)

// RepoConfig represents the structure of an optional .stacksync.yml checked
// into the repository being synced. Empty fields leave the app config alone.
type RepoConfig struct {
	Remote      string `yaml:"remote"`
	DefaultBase string `yaml:"default_base"`
	MarkerKey   string `yaml:"marker_key"`
}

// LoadRepoConfig loads and parses the .stacksync.yml file from a repository
// path. A missing file is reported via ErrRepoConfigNotFound alongside an
// empty config so callers can treat it as optional.
func LoadRepoConfig(repoPath string) (*RepoConfig, error) {
	configPath := filepath.Join(repoPath, ".stacksync.yml")
	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return &RepoConfig{}, ErrRepoConfigNotFound
		}
		return nil, fmt.Errorf("failed to read .stacksync.yml: %w", err)
	}

	cfg := &RepoConfig{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRepoConfigParsing, err)
	}
	return cfg, nil
}

// Apply overlays the non-empty repo config values onto cfg.
func (rc *RepoConfig) Apply(cfg *Config) {
	if rc.Remote != "" {
		cfg.Remote = rc.Remote
	}
	if rc.DefaultBase != "" {
		cfg.DefaultBase = rc.DefaultBase
	}
	if rc.MarkerKey != "" {
		cfg.MarkerKey = rc.MarkerKey
	}
}
