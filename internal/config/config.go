package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
)

// Config holds all vowbudget configuration.
type Config struct {
	General    GeneralConfig    `toml:"general"`
	Appearance AppearanceConfig `toml:"appearance"`
	Logging    LoggingConfig    `toml:"logging"`
	Rewards    RewardsConfig    `toml:"rewards"`
}

// GeneralConfig holds general preferences.
type GeneralConfig struct {
	DBPath string `toml:"db_path,omitempty"`
}

// AppearanceConfig holds theme settings.
type AppearanceConfig struct {
	Theme string `toml:"theme"`
}

// LoggingConfig holds the log level (debug, info, warn, error).
type LoggingConfig struct {
	Level string `toml:"level"`
}

// RewardsConfig holds reward wheel settings.
type RewardsConfig struct {
	DiscountMinutes int `toml:"discount_minutes"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		Appearance: AppearanceConfig{
			Theme: "blush",
		},
		Logging: LoggingConfig{
			Level: "info",
		},
		Rewards: RewardsConfig{
			DiscountMinutes: 15,
		},
	}
}

// ConfigDir returns the XDG-compliant config directory.
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "vowbudget")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "vowbudget")
}

// ConfigPath returns the full path to the config file.
func ConfigPath() string {
	return filepath.Join(ConfigDir(), "config.toml")
}

// DataDir returns the XDG-compliant data directory.
func DataDir() string {
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, "vowbudget")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".local", "share", "vowbudget")
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

// Exists returns true if a config file exists on disk.
func Exists() bool {
	_, err := os.Stat(ConfigPath())
	return err == nil
}

// DBPath returns the database location: VOWBUDGET_DB, then the config value,
// then the data directory default.
func DBPath(cfg Config) string {
	if p := os.Getenv("VOWBUDGET_DB"); p != "" {
		return p
	}
	if cfg.General.DBPath != "" {
		return cfg.General.DBPath
	}
	return filepath.Join(DataDir(), "vowbudget.db")
}

// LogLevel returns LOG_LEVEL if set, otherwise the configured level.
func LogLevel(cfg Config) string {
	if lvl := os.Getenv("LOG_LEVEL"); lvl != "" {
		return lvl
	}
	return cfg.Logging.Level
}

// DiscountTTL returns how long a won discount stays active.
func DiscountTTL(cfg Config) time.Duration {
	if cfg.Rewards.DiscountMinutes <= 0 {
		return 15 * time.Minute
	}
	return time.Duration(cfg.Rewards.DiscountMinutes) * time.Minute
}
