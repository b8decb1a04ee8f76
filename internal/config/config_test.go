package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadExplicitFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "palette.yaml")
	data := "themes_file: /etc/palette/themes.json\ndefault_theme: Dark\nstate_path: /tmp/palette.db\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "/etc/palette/themes.json", cfg.ThemesFile)
	require.Equal(t, "Dark", cfg.DefaultTheme)
	require.Equal(t, "/tmp/palette.db", cfg.StatePath)
}

func TestLoadExplicitFileMissing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestLoadDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "palette.yaml")
	require.NoError(t, os.WriteFile(path, []byte("default_theme: Dark\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "themes.json", cfg.ThemesFile, "unset keys fall back to defaults")
	require.NotEmpty(t, cfg.StatePath)
}
