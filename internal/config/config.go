package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config holds all prorate configuration.
type Config struct {
	General    GeneralConfig    `toml:"general"`
	Appearance AppearanceConfig `toml:"appearance"`
	Server     ServerConfig     `toml:"server"`
	Export     ExportConfig     `toml:"export"`
	Lead       LeadConfig       `toml:"lead"`
}

// GeneralConfig holds calculator defaults.
type GeneralConfig struct {
	DefaultLeaseMonths int      `toml:"default_lease_months"`
	DefaultRent        *float64 `toml:"default_rent,omitempty"`
}

// AppearanceConfig holds theme settings.
type AppearanceConfig struct {
	Theme string `toml:"theme"`
}

// ServerConfig holds HTTP API settings.
type ServerConfig struct {
	Addr            string `toml:"addr"`
	ShutdownTimeout int    `toml:"shutdown_timeout_sec"`
}

// ExportConfig holds ledger export defaults.
type ExportConfig struct {
	DefaultFormat string `toml:"default_format"`
	Dir           string `toml:"dir,omitempty"`
}

// LeadConfig holds lead-capture settings.
type LeadConfig struct {
	Market string `toml:"market"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		General: GeneralConfig{
			DefaultLeaseMonths: 12,
		},
		Appearance: AppearanceConfig{
			Theme: "locator-gold",
		},
		Server: ServerConfig{
			Addr:            "127.0.0.1:8790",
			ShutdownTimeout: 10,
		},
		Export: ExportConfig{
			DefaultFormat: "csv",
		},
		Lead: LeadConfig{
			Market: "Atlanta",
		},
	}
}

// ConfigDir returns the XDG-compliant config directory.
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "prorate")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "prorate")
}

// ConfigPath returns the full path to the config file.
func ConfigPath() string {
	return filepath.Join(ConfigDir(), "config.toml")
}

// Load reads the config file, returning defaults if it doesn't exist.
func Load() (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(ConfigPath())
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}

	return cfg, nil
}

// Save writes the config to disk.
func Save(cfg Config) error {
	dir := ConfigDir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	f, err := os.OpenFile(ConfigPath(), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}
	defer f.Close()

	enc := toml.NewEncoder(f)
	return enc.Encode(cfg)
}

// GetServerAddr returns the listen address from env var or config, in that order.
func GetServerAddr(cfg Config) string {
	if addr := os.Getenv("PRORATE_ADDR"); addr != "" {
		return addr
	}
	return cfg.Server.Addr
}

// GetTheme returns the theme name from env var or config, in that order.
func GetTheme(cfg Config) string {
	if name := os.Getenv("PRORATE_THEME"); name != "" {
		return name
	}
	return cfg.Appearance.Theme
}

// Exists returns true if a config file exists on disk.
func Exists() bool {
	_, err := os.Stat(ConfigPath())
	return err == nil
}
