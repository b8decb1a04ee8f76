// Package cli implements the palette command-line interface.
package cli

import (
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/palettekit/palette"
	"github.com/palettekit/palette/internal/config"
	"github.com/palettekit/palette/store"
)

var (
	configPath string
	themesPath string
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:           "palette",
	Short:         "Manage named color themes",
	Long:          "Load, inspect, validate, and switch named color themes defined in a JSON document.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to a palette.yaml config file")
	rootCmd.PersistentFlags().StringVar(&themesPath, "themes", "", "path to the themes JSON document (overrides config)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func logger() zerolog.Logger {
	level := zerolog.WarnLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(level).With().Timestamp().Logger()
}

func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	if themesPath != "" {
		cfg.ThemesFile = themesPath
	}
	return cfg, nil
}

// openRegistry builds a registry from the effective configuration. The
// returned cleanup closes the settings store and must be called once the
// registry is no longer needed.
func openRegistry() (*palette.Registry, func(), error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, err
	}

	st, err := store.OpenSQLite(cfg.StatePath)
	if err != nil {
		return nil, nil, err
	}

	dir, file := filepath.Split(cfg.ThemesFile)
	if dir == "" {
		dir = "."
	}
	reg, err := palette.Open(file, palette.DirSource(dir), palette.Options{
		DefaultTheme: cfg.DefaultTheme,
		Store:        st,
		Logger:       logger(),
	})
	if err != nil {
		st.Close()
		return nil, nil, err
	}
	return reg, func() { st.Close() }, nil
}
