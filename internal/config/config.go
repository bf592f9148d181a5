package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/nconklindev/stockcell/internal/types"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for stockcell
type Config struct {
	Variant string    `mapstructure:"variant"`
	File    string    `mapstructure:"file"`
	Demo    bool      `mapstructure:"demo"`
	Watch   bool      `mapstructure:"watch"`
	Log     LogConfig `mapstructure:"log"`
}

// LogConfig controls where diagnostics go
type LogConfig struct {
	Level string `mapstructure:"level"`
	File  string `mapstructure:"file"`
}

// ParsedVariant returns the configured column variant.
func (c *Config) ParsedVariant() types.Variant {
	v, err := types.ParseVariant(c.Variant)
	if err != nil {
		return types.VariantClassic
	}
	return v
}

// Load reads configuration from an optional config file, a .env file and
// STOCKCELL_* environment variables. configFile may be empty. Flags bound
// to v before calling Load take precedence.
func Load(v *viper.Viper, configFile string) (*Config, error) {
	// .env is optional
	_ = godotenv.Load()

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("stockcell")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/stockcell")
	}

	v.SetEnvPrefix("STOCKCELL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("variant", "classic")
	v.SetDefault("file", "")
	v.SetDefault("demo", false)
	v.SetDefault("watch", false)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.file", "")
}

func validate(cfg *Config) error {
	if _, err := types.ParseVariant(cfg.Variant); err != nil {
		return err
	}

	switch strings.ToLower(cfg.Log.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log level must be debug, info, warn or error, got: %s", cfg.Log.Level)
	}

	return nil
}
