// Package config loads the optional assistant configuration file.
// Everything has a default, so a missing file is not an error.
package config

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config holds the user-tunable settings.
type Config struct {
	// DataDir overrides where the sqlite store lives.
	DataDir string `yaml:"data_dir" mapstructure:"data_dir"`
	// Theme picks the color scheme: tokyonight or gruvbox.
	Theme string `yaml:"theme" mapstructure:"theme"`
	// BirthdaysAhead is the default window for the birthdays command.
	BirthdaysAhead int `yaml:"birthdays_ahead" mapstructure:"birthdays_ahead"`
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		Theme:          "tokyonight",
		BirthdaysAhead: 7,
	}
}

func configDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "abook")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "abook")
}

// Load reads config.yaml from the working directory or the user config
// directory, falling back to defaults when no file exists.
func Load() (*Config, error) {
	cfg := Default()

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath(configDir())

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return cfg, nil
		}
		return nil, err
	}

	if err := v.Unmarshal(cfg); err != nil {
		return nil, err
	}
	if cfg.BirthdaysAhead < 0 {
		cfg.BirthdaysAhead = Default().BirthdaysAhead
	}
	return cfg, nil
}

// DBPath returns the store path implied by the config, or the empty
// string when the built-in default location should be used.
func (c *Config) DBPath() string {
	if c.DataDir == "" {
		return ""
	}
	return filepath.Join(c.DataDir, "abook.db")
}
