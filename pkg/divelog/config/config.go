package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/spf13/viper"
)

// LoggingConfig configures application logging.
type LoggingConfig struct {
	Level      string            `mapstructure:"level"`
	Path       string            `mapstructure:"path"`
	Components map[string]string `mapstructure:"components"`
}

// CacheConfig configures the load cache.
type CacheConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Path    string `mapstructure:"path"`
}

// Config represents the application configuration.
type Config struct {
	Branch  string        `mapstructure:"branch"`
	Format  string        `mapstructure:"format"`
	Cache   CacheConfig   `mapstructure:"cache"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// Load loads configuration from file and environment variables.
// Config file locations (in order of precedence):
//   - $XDG_CONFIG_HOME/subsurface/config.yaml
//   - $HOME/.config/subsurface/config.yaml
//
// Environment variables are prefixed with SUBSURFACE_
// (e.g., SUBSURFACE_BRANCH).
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")

	if xdgConfigHome := os.Getenv("XDG_CONFIG_HOME"); xdgConfigHome != "" {
		v.AddConfigPath(filepath.Join(xdgConfigHome, "subsurface"))
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("failed to get user home directory: %w", err)
	}
	v.AddConfigPath(filepath.Join(homeDir, ".config", "subsurface"))

	v.SetEnvPrefix("SUBSURFACE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	SetDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		// Config file not found is acceptable; we use defaults
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// Expand ~ in cache path if present
	if strings.HasPrefix(cfg.Cache.Path, "~") {
		cfg.Cache.Path = filepath.Join(homeDir, cfg.Cache.Path[1:])
	}

	return &cfg, nil
}

// SetDefaults registers the default configuration values on a viper instance.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("branch", DefaultBranch)
	v.SetDefault("format", DefaultFormat)
	v.SetDefault("cache.enabled", DefaultCacheEnabled)
	v.SetDefault("cache.path", DefaultCachePath())
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.path", "") // Empty means use logging.DefaultLogPath
	v.SetDefault("logging.components", map[string]string{
		"gitload": "info",
		"cache":   "warn",
		"output":  "info",
	})
}

// ConfigDir returns the configuration directory path.
func ConfigDir() (string, error) {
	if xdgConfigHome := os.Getenv("XDG_CONFIG_HOME"); xdgConfigHome != "" {
		return filepath.Join(xdgConfigHome, "subsurface"), nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}

	return filepath.Join(homeDir, ".config", "subsurface"), nil
}

// EnsureConfigDir creates the config directory if it doesn't exist.
func EnsureConfigDir() error {
	dir, err := ConfigDir()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	return nil
}

// DefaultCachePath returns the default load cache location under the XDG
// cache directory.
func DefaultCachePath() string {
	return filepath.Join(xdg.CacheHome, "subsurface", "loadcache")
}
