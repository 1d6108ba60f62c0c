package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

const (
	appName   = "currencypicker"
	envPrefix = "CURRENCYPICKER"

	DefaultCurrency = "USD"
	DefaultMaxRows  = 10
	DefaultOpenKey  = "c"
	MinMaxRows      = 3
	MaxMaxRows      = 50
)

// Config holds application configuration.
type Config struct {
	Catalog  CatalogConfig  `mapstructure:"catalog"`
	Database DatabaseConfig `mapstructure:"database"`
	UI       UIConfig       `mapstructure:"ui"`
	Log      LogConfig      `mapstructure:"log"`
}

// CatalogConfig points at an optional TOML currency catalog. When Path is
// empty the sqlite store is the catalog source.
type CatalogConfig struct {
	Path string `mapstructure:"path"`
}

// DatabaseConfig holds sqlite settings.
type DatabaseConfig struct {
	Path string `mapstructure:"path"`
}

// UIConfig holds presentation settings.
type UIConfig struct {
	DefaultCurrency string `mapstructure:"default_currency"`
	MaxRows         int    `mapstructure:"max_rows"`
	OpenKey         string `mapstructure:"open_key"`
}

// LogConfig holds log file settings. The TUI owns the terminal, so logs
// never go to stdout.
type LogConfig struct {
	Path  string `mapstructure:"path"`
	Level string `mapstructure:"level"`
}

// Load reads configuration from file and env. Env var overrides use prefix
// CURRENCYPICKER_. path overrides both CURRENCYPICKER_CONFIG and the default
// search location.
func Load(path string) (Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigType("toml")

	cfgPath := strings.TrimSpace(path)
	if cfgPath == "" {
		cfgPath = os.Getenv(envPrefix + "_CONFIG")
	}
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		if dir, err := os.UserConfigDir(); err == nil {
			v.AddConfigPath(filepath.Join(dir, appName))
		}
		v.SetConfigName("config")
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		// An explicit file that is missing or broken is an error; a missing
		// default file is not.
		if cfgPath != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return Normalize(c), nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("catalog.path", "")
	v.SetDefault("database.path", filepath.Join(dataDir(), appName+".db"))
	v.SetDefault("ui.default_currency", DefaultCurrency)
	v.SetDefault("ui.max_rows", DefaultMaxRows)
	v.SetDefault("ui.open_key", DefaultOpenKey)
	v.SetDefault("log.path", filepath.Join(cacheDir(), appName+".log"))
	v.SetDefault("log.level", "info")
}

// Normalize clamps and cleans values that came from a file or env.
func Normalize(c Config) Config {
	c.Catalog.Path = strings.TrimSpace(c.Catalog.Path)
	c.Database.Path = strings.TrimSpace(c.Database.Path)
	c.UI.DefaultCurrency = strings.ToUpper(strings.TrimSpace(c.UI.DefaultCurrency))
	if c.UI.DefaultCurrency == "" {
		c.UI.DefaultCurrency = DefaultCurrency
	}
	switch {
	case c.UI.MaxRows == 0:
		c.UI.MaxRows = DefaultMaxRows
	case c.UI.MaxRows < MinMaxRows:
		c.UI.MaxRows = MinMaxRows
	case c.UI.MaxRows > MaxMaxRows:
		c.UI.MaxRows = MaxMaxRows
	}
	c.UI.OpenKey = strings.ToLower(strings.TrimSpace(c.UI.OpenKey))
	if len([]rune(c.UI.OpenKey)) != 1 {
		c.UI.OpenKey = DefaultOpenKey
	}
	c.Log.Path = strings.TrimSpace(c.Log.Path)
	c.Log.Level = strings.ToLower(strings.TrimSpace(c.Log.Level))
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	return c
}

// Save writes the non-derived settings to path, creating the directory if
// needed.
func Save(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.Set("catalog.path", cfg.Catalog.Path)
	v.Set("database.path", cfg.Database.Path)
	v.Set("ui.default_currency", cfg.UI.DefaultCurrency)
	v.Set("ui.max_rows", cfg.UI.MaxRows)
	v.Set("ui.open_key", cfg.UI.OpenKey)
	v.Set("log.path", cfg.Log.Path)
	v.Set("log.level", cfg.Log.Level)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

func dataDir() string {
	if dir := os.Getenv("XDG_DATA_HOME"); dir != "" {
		return filepath.Join(dir, appName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, ".local", "share", appName)
}

func cacheDir() string {
	dir, err := os.UserCacheDir()
	if err != nil {
		return "."
	}
	return filepath.Join(dir, appName)
}
