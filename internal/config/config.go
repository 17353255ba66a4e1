package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	UI   UIConfig
	Keys KeysConfig
	Log  LogConfig
}

// UIConfig holds presentation settings.
type UIConfig struct {
	ErrorMarker string `mapstructure:"error_marker"`
	ShowHelp    bool   `mapstructure:"show_help"`
	Theme       string
	KeypadWidth int `mapstructure:"keypad_width"`
}

// KeysConfig points at an optional keybinding override file.
type KeysConfig struct {
	File string
}

// LogConfig holds debug log settings. An empty File discards output.
type LogConfig struct {
	File  string
	Level string
}

var themes = map[string]bool{"mocha": true, "latte": true}

// Load reads configuration from file and env. Env var overrides use prefix KEYCALC_.
func Load() (Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigType("toml")

	cfgPath := os.Getenv("KEYCALC_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "keycalc"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("KEYCALC")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		// a missing default file is fine; an explicit path or a broken file is not
		var notFound viper.ConfigFileNotFoundError
		if cfgPath != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		UI: UIConfig{
			ErrorMarker: "Error",
			ShowHelp:    true,
			Theme:       "mocha",
			KeypadWidth: 7,
		},
		Log: LogConfig{Level: "info"},
	}
}

func setDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault("ui.error_marker", d.UI.ErrorMarker)
	v.SetDefault("ui.show_help", d.UI.ShowHelp)
	v.SetDefault("ui.theme", d.UI.Theme)
	v.SetDefault("ui.keypad_width", d.UI.KeypadWidth)
	v.SetDefault("keys.file", d.Keys.File)
	v.SetDefault("log.file", d.Log.File)
	v.SetDefault("log.level", d.Log.Level)
}

// Validate rejects settings the UI cannot honour.
func (c Config) Validate() error {
	marker := strings.TrimSpace(c.UI.ErrorMarker)
	if marker == "" {
		return fmt.Errorf("ui.error_marker: must not be empty")
	}
	if _, err := strconv.ParseFloat(marker, 64); err == nil {
		return fmt.Errorf("ui.error_marker %q: must not be a number", c.UI.ErrorMarker)
	}
	if !themes[strings.ToLower(c.UI.Theme)] {
		return fmt.Errorf("ui.theme %q: want mocha or latte", c.UI.Theme)
	}
	if c.UI.KeypadWidth < 3 {
		return fmt.Errorf("ui.keypad_width %d: must be at least 3", c.UI.KeypadWidth)
	}
	if _, err := logrus.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}
	return nil
}

// Path returns where Save writes the config file.
func Path() string {
	if p := os.Getenv("KEYCALC_CONFIG"); p != "" {
		return p
	}
	return filepath.Join(os.Getenv("HOME"), ".config", "keycalc", "config.toml")
}

// Save writes the provided config to disk, creating the config directory if needed.
func Save(cfg Config) error {
	path := Path()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.Set("ui.error_marker", cfg.UI.ErrorMarker)
	v.Set("ui.show_help", cfg.UI.ShowHelp)
	v.Set("ui.theme", cfg.UI.Theme)
	v.Set("ui.keypad_width", cfg.UI.KeypadWidth)
	v.Set("keys.file", cfg.Keys.File)
	v.Set("log.file", cfg.Log.File)
	v.Set("log.level", cfg.Log.Level)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
