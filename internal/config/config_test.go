package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaultsWithoutFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("KEYCALC_CONFIG", "")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, Default(), cfg)
}

func TestLoadReadsExplicitFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "calc.toml")
	data := `
[ui]
error_marker = "E"
show_help = false
theme = "latte"
keypad_width = 5

[keys]
file = "/tmp/keys.toml"

[log]
file = "/tmp/keycalc.log"
level = "debug"
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))
	t.Setenv("KEYCALC_CONFIG", path)

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "E", cfg.UI.ErrorMarker)
	require.False(t, cfg.UI.ShowHelp)
	require.Equal(t, "latte", cfg.UI.Theme)
	require.Equal(t, 5, cfg.UI.KeypadWidth)
	require.Equal(t, "/tmp/keys.toml", cfg.Keys.File)
	require.Equal(t, "/tmp/keycalc.log", cfg.Log.File)
	require.Equal(t, "debug", cfg.Log.Level)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("KEYCALC_CONFIG", "")
	t.Setenv("KEYCALC_UI_ERROR_MARKER", "Undefined")
	t.Setenv("KEYCALC_LOG_LEVEL", "warn")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "Undefined", cfg.UI.ErrorMarker)
	require.Equal(t, "warn", cfg.Log.Level)
}

func TestLoadMissingExplicitFileFails(t *testing.T) {
	t.Setenv("KEYCALC_CONFIG", filepath.Join(t.TempDir(), "nope.toml"))
	_, err := Load()
	require.Error(t, err)
	require.Contains(t, err.Error(), "read config")
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("KEYCALC_CONFIG", "")
	t.Setenv("KEYCALC_UI_THEME", "solarized")

	_, err := Load()
	require.Error(t, err)
	require.Contains(t, err.Error(), "ui.theme")
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{name: "defaults", mutate: func(*Config) {}},
		{name: "empty marker", mutate: func(c *Config) { c.UI.ErrorMarker = " " }, wantErr: "must not be empty"},
		{name: "numeric marker", mutate: func(c *Config) { c.UI.ErrorMarker = "0" }, wantErr: "must not be a number"},
		{name: "narrow keypad", mutate: func(c *Config) { c.UI.KeypadWidth = 2 }, wantErr: "keypad_width"},
		{name: "bad level", mutate: func(c *Config) { c.Log.Level = "loud" }, wantErr: "log.level"},
		{name: "theme case", mutate: func(c *Config) { c.UI.Theme = "Latte" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if tc.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			require.Contains(t, err.Error(), tc.wantErr)
		})
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	t.Setenv("KEYCALC_CONFIG", path)

	cfg := Default()
	cfg.UI.ErrorMarker = "Err"
	cfg.UI.Theme = "latte"
	cfg.Log.Level = "debug"
	require.NoError(t, Save(cfg))
	require.Equal(t, path, Path())

	got, err := Load()
	require.NoError(t, err)
	require.Equal(t, cfg, got)
}
