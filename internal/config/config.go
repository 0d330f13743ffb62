// Package config loads and saves CLI configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Config holds the CLI's tunable defaults.
type Config struct {
	// Sheet is the worksheet to extract when none is given on the command
	// line; empty means the first worksheet.
	Sheet string `mapstructure:"sheet" yaml:"sheet"`

	// Format is the default output format: "csv" or "json".
	Format string `mapstructure:"format" yaml:"format"`

	// RestKey collects excess row data when a row is wider than the header.
	RestKey string `mapstructure:"rest_key" yaml:"rest_key"`

	// MinValues is the populated-cell threshold for the header search.
	MinValues int `mapstructure:"min_values" yaml:"min_values"`

	// AbortAfter caps how many rows the header search examines.
	AbortAfter int `mapstructure:"abort_after" yaml:"abort_after"`
}

// Load reads configuration with the usual precedence: environment
// (TABX_*), then config file, then built-in defaults. An empty cfgFile
// means no config file is consulted.
func Load(cfgFile string) (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("TABX")
	v.AutomaticEnv()

	v.SetDefault("format", "csv")
	v.SetDefault("min_values", 3)
	v.SetDefault("abort_after", 10)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %q: %w", cfgFile, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return &cfg, nil
}

// Save writes the configuration to the given path, creating parent
// directories as needed.
func Save(cfg *Config, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}
	b, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal yaml: %w", err)
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
