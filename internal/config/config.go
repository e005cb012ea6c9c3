// Package config loads the tool configuration. Values come from, in rising
// precedence: built-in defaults, an optional .env file, STACKSYNC_* environment
// variables, an optional per-repo .stacksync.yml, and command-line flags. The
// flag layer is applied by the CLI, not here.
package config

import (
	"log/slog"
	"strings"

	"github.com/spf13/viper"
)

// Config holds the application's configuration values.
type Config struct {
	RepoPath    string
	Remote      string
	DefaultBase string
	MarkerKey   string
	LogLevel    string
	LogFormat   string
}

// Load reads configuration from environment variables and an optional .env
// file and sets sensible defaults. It uses Viper to handle loading and
// precedence.
func Load() (*Config, error) {
	viper.SetConfigFile(".env")

	viper.SetDefault("REPO_PATH", ".")
	viper.SetDefault("REMOTE", "origin")
	viper.SetDefault("DEFAULT_BASE", "")
	viper.SetDefault("MARKER_KEY", "jj-stack-sync")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("LOG_FORMAT", "text")

	viper.SetEnvPrefix("STACKSYNC")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			slog.Debug("no .env file loaded", "error", err)
		}
	}

	return &Config{
		RepoPath:    viper.GetString("REPO_PATH"),
		Remote:      viper.GetString("REMOTE"),
		DefaultBase: viper.GetString("DEFAULT_BASE"),
		MarkerKey:   viper.GetString("MARKER_KEY"),
		LogLevel:    viper.GetString("LOG_LEVEL"),
		LogFormat:   viper.GetString("LOG_FORMAT"),
	}, nil
}
