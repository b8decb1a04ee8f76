// Package config loads CLI configuration for palette.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config holds the palette CLI settings.
type Config struct {
	// ThemesFile is the path to the themes JSON document.
	ThemesFile string `mapstructure:"themes_file"`

	// DefaultTheme is the theme name used when nothing is persisted, and
	// the target of the reset command. Optional.
	DefaultTheme string `mapstructure:"default_theme"`

	// StatePath is the SQLite database holding the persisted selection.
	StatePath string `mapstructure:"state_path"`
}

// Load reads palette.yaml from the working directory or the user config
// directory, falling back to defaults when no file exists. An explicit
// path skips the search.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetDefault("themes_file", "themes.json")
	v.SetDefault("default_theme", "")
	v.SetDefault("state_path", defaultStatePath())

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("palette")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil && home != "" {
			v.AddConfigPath(filepath.Join(home, ".config", "palette"))
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return &cfg, nil
}

func defaultStatePath() string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return "palette.db"
	}
	return filepath.Join(home, ".local", "share", "palette", "state.db")
}
