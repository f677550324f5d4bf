package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	UI   UIConfig
	Data DataConfig
}

// UIConfig holds presentation settings.
type UIConfig struct {
	CurrencySymbol string `mapstructure:"currency_symbol"`
	Locale         string `mapstructure:"locale"`
	DateFormat     string `mapstructure:"date_format"`
	Timezone       string `mapstructure:"timezone"`
}

// DataConfig holds data seeding and export settings.
type DataConfig struct {
	Seed      bool   `mapstructure:"seed"`
	ExportDir string `mapstructure:"export_dir"`
}

// Load reads configuration from file and env. Env var overrides use prefix MYCASH_.
func Load() (Config, error) {
	v := viper.New()

	// default values
	v.SetDefault("ui.currency_symbol", "R$")
	v.SetDefault("ui.locale", "pt-BR")
	v.SetDefault("ui.date_format", "02/01/2006")
	v.SetDefault("ui.timezone", "America/Sao_Paulo")
	v.SetDefault("data.seed", true)
	v.SetDefault("data.export_dir", ".")

	v.SetConfigType("toml")

	cfgPath := os.Getenv("MYCASH_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "mycash"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("MYCASH")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// read config file if present
	_ = v.ReadInConfig()

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return c, nil
}

// Save writes the provided config to disk, creating the config directory if
// needed. The profile tab calls it when a display preference changes.
func Save(cfg Config) error {
	path := os.Getenv("MYCASH_CONFIG")
	if path == "" {
		path = filepath.Join(os.Getenv("HOME"), ".config", "mycash", "config.toml")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.Set("ui.currency_symbol", cfg.UI.CurrencySymbol)
	v.Set("ui.locale", cfg.UI.Locale)
	v.Set("ui.date_format", cfg.UI.DateFormat)
	v.Set("ui.timezone", cfg.UI.Timezone)
	v.Set("data.seed", cfg.Data.Seed)
	v.Set("data.export_dir", cfg.Data.ExportDir)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
