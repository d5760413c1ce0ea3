package model

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Theme modes accepted by DisplayConfig.Theme.
const (
	ThemeAuto  = "auto"
	ThemeDark  = "dark"
	ThemeLight = "light"
)

// DisplayConfig holds UI/rendering preferences.
type DisplayConfig struct {
	// Theme is "auto", "dark" or "light". Auto asks the terminal once at startup.
	Theme string `mapstructure:"theme" yaml:"theme"`

	// StartView is the view shown right after login.
	StartView string `mapstructure:"start_view" yaml:"start_view"`
}

// SessionConfig controls the login gate.
type SessionConfig struct {
	// User, when set, signs in with this display name and skips the login form.
	User string `mapstructure:"user" yaml:"user"`
}

// LogConfig controls the log file. The TUI owns stdout, so logs never go there.
type LogConfig struct {
	Level string `mapstructure:"level" yaml:"level"`
	File  string `mapstructure:"file" yaml:"file"`
}

// AppConfig is the top-level application configuration.
type AppConfig struct {
	Display DisplayConfig `mapstructure:"display" yaml:"display"`
	Session SessionConfig `mapstructure:"session" yaml:"session"`
	Log     LogConfig     `mapstructure:"log" yaml:"log"`
}

// configDir returns ~/.config/boosted-portal, or "." when the home
// directory cannot be resolved.
func configDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, ".config", "boosted-portal")
}

// DefaultConfigPath returns the default path for the configuration file,
// located at ~/.config/boosted-portal/config.yaml.
func DefaultConfigPath() string {
	return filepath.Join(configDir(), "config.yaml")
}

// DefaultLogPath returns ~/.config/boosted-portal/portal.log.
func DefaultLogPath() string {
	return filepath.Join(configDir(), "portal.log")
}

// DefaultAppConfig returns a sensible default configuration.
func DefaultAppConfig() *AppConfig {
	return &AppConfig{
		Display: DisplayConfig{
			Theme:     ThemeAuto,
			StartView: string(ViewChatbot),
		},
		Log: LogConfig{
			Level: "info",
			File:  DefaultLogPath(),
		},
	}
}

// LoadConfig reads configuration from the given YAML file path using Viper.
// Values can be overridden with PORTAL_* environment variables, e.g.
// PORTAL_DISPLAY_THEME=dark. A missing file yields the defaults.
func LoadConfig(path string) (*AppConfig, error) {
	def := DefaultAppConfig()

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	v.SetEnvPrefix("portal")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("display.theme", def.Display.Theme)
	v.SetDefault("display.start_view", def.Display.StartView)
	v.SetDefault("session.user", "")
	v.SetDefault("log.level", def.Log.Level)
	v.SetDefault("log.file", def.Log.File)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		var pathErr *os.PathError
		if !errors.As(err, &notFound) && !errors.As(err, &pathErr) {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	}

	cfg := DefaultAppConfig()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config %s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks enumerated settings.
func (c *AppConfig) Validate() error {
	switch strings.ToLower(c.Display.Theme) {
	case ThemeAuto, ThemeDark, ThemeLight:
		c.Display.Theme = strings.ToLower(c.Display.Theme)
	default:
		return fmt.Errorf("display.theme must be auto, dark or light, got %q", c.Display.Theme)
	}

	v, err := ParseViewState(c.Display.StartView)
	if err != nil {
		return fmt.Errorf("display.start_view: %w", err)
	}
	if v == ViewLogin {
		return fmt.Errorf("display.start_view: %s cannot be a start view", v)
	}
	c.Display.StartView = string(v)

	return nil
}

// SaveConfig writes the given configuration to a YAML file at path,
// creating parent directories if needed.
func SaveConfig(path string, cfg *AppConfig) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config directory %s: %w", dir, err)
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	v.Set("display", cfg.Display)
	v.Set("session", cfg.Session)
	v.Set("log", cfg.Log)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}

	return nil
}
