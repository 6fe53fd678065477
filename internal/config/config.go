// Package config loads vercat settings from .vercat.yaml, VERCAT_* environment
// variables and command-line flags.
package config

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/spf13/viper"
)

// Formats lists the supported output formats.
var Formats = []string{"text", "json", "yaml", "toml"}

// BazelConfig holds the settings of `vercat export bazel`.
type BazelConfig struct {
	RepoName     string   `mapstructure:"repo_name"`
	Repositories []string `mapstructure:"repositories"`
	FetchSources bool     `mapstructure:"fetch_sources"`
}

// Config holds all runtime configuration.
type Config struct {
	Format     string      `mapstructure:"format"`
	Verbose    bool        `mapstructure:"verbose"`
	ProjectDir string      `mapstructure:"project_dir"`
	Catalogs   []string    `mapstructure:"catalogs"`
	Strategy   string      `mapstructure:"strategy"`
	Bazel      BazelConfig `mapstructure:"bazel"`
}

// New returns a viper instance with defaults and environment binding.
func New() *viper.Viper {
	v := viper.New()
	v.SetDefault("format", "text")
	v.SetDefault("verbose", false)
	v.SetDefault("project_dir", ".")
	v.SetDefault("catalogs", []string{})
	v.SetDefault("strategy", "prefer-override")
	v.SetDefault("bazel.repo_name", "maven")
	v.SetDefault("bazel.repositories", []string{})
	v.SetDefault("bazel.fetch_sources", false)

	v.SetEnvPrefix("VERCAT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads the config file into v and decodes the result. An explicit file
// must exist; otherwise .vercat.yaml is looked up in the working directory
// and the home directory, and its absence is not an error.
func Load(v *viper.Viper, file string) (Config, error) {
	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.SetConfigName(".vercat")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if file != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks enumerated settings.
func (c Config) Validate() error {
	if !slices.Contains(Formats, c.Format) {
		return fmt.Errorf("invalid format %q: expected one of %s", c.Format, strings.Join(Formats, ", "))
	}
	return nil
}
