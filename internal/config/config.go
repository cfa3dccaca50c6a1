// Package config loads questline settings from a config file with
// environment overrides.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all application settings.
type Config struct {
	Progression ProgressionConfig `mapstructure:"progression"`
	Storage     StorageConfig     `mapstructure:"storage"`
	Content     ContentConfig     `mapstructure:"content"`
	Badges      BadgesConfig      `mapstructure:"badges"`
}

// ProgressionConfig tunes the progression engine. The two grace
// windows are deliberately separate: streaks forgive up to five idle
// days, mastery decay starts charging after three.
type ProgressionConfig struct {
	StreakGraceDays  int `mapstructure:"streak_grace_days"`
	MasteryGraceDays int `mapstructure:"mastery_grace_days"`
}

// StorageConfig locates the SQLite database.
type StorageConfig struct {
	DBPath string `mapstructure:"db_path"`
}

// ContentConfig locates the content catalog.
type ContentConfig struct {
	CatalogPath string `mapstructure:"catalog_path"`
}

// BadgesConfig optionally points at an external badge catalog; empty
// means the built-in definitions.
type BadgesConfig struct {
	CatalogPath string `mapstructure:"catalog_path"`
}

// Default returns the configuration used when no file or environment
// override is present.
func Default() Config {
	return Config{
		Progression: ProgressionConfig{
			StreakGraceDays:  5,
			MasteryGraceDays: 3,
		},
	}
}

// Load reads configuration from configPath (or the default search
// paths when empty), applying QUESTLINE_* environment overrides on top
// of defaults. A missing config file is not an error.
func Load(configPath string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("questline")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/questline")
	}

	v.SetEnvPrefix("QUESTLINE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	def := Default()
	v.SetDefault("progression.streak_grace_days", def.Progression.StreakGraceDays)
	v.SetDefault("progression.mastery_grace_days", def.Progression.MasteryGraceDays)
	v.SetDefault("storage.db_path", "")
	v.SetDefault("content.catalog_path", "")
	v.SetDefault("badges.catalog_path", "")
}

func (c *Config) validate() error {
	if c.Progression.StreakGraceDays < 1 {
		return fmt.Errorf("progression.streak_grace_days must be >= 1, got %d", c.Progression.StreakGraceDays)
	}
	if c.Progression.MasteryGraceDays < 0 {
		return fmt.Errorf("progression.mastery_grace_days must be >= 0, got %d", c.Progression.MasteryGraceDays)
	}
	return nil
}
