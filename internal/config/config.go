// Package config loads rexgen settings from a yaml file and the environment.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/KromDaniel/rexgen/internal/log"
)

// EnvPrefix is prepended to every environment variable, e.g. REXGEN_GENERATOR_CEILING.
const EnvPrefix = "REXGEN"

type Config struct {
	Generator GeneratorConfig
	Log       log.Config
}

type GeneratorConfig struct {
	Ceiling int    `mapstructure:"ceiling"`
	Count   int    `mapstructure:"count"`
	Seed    uint64 `mapstructure:"seed"`
	Workers int    `mapstructure:"workers"`
}

// Load reads configName.yaml from configPath, the working directory or
// ./config. A missing file is not an error; defaults and environment
// variables still apply.
func Load(configPath, configName string) (*Config, error) {
	v := viper.New()

	v.SetConfigName(configName)
	v.SetConfigType("yaml")
	if configPath != "" {
		v.AddConfigPath(configPath)
	}
	v.AddConfigPath(".")
	v.AddConfigPath("./config")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("generator.ceiling", 100)
	v.SetDefault("generator.count", 1)
	v.SetDefault("generator.seed", 0)
	v.SetDefault("generator.workers", 4)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.pretty", true)
}

// Validate checks if the configuration is usable.
func (c *Config) Validate() error {
	if c.Generator.Ceiling < 1 {
		return fmt.Errorf("generator.ceiling must be at least 1, got %d", c.Generator.Ceiling)
	}
	if c.Generator.Count < 0 {
		return fmt.Errorf("generator.count cannot be negative, got %d", c.Generator.Count)
	}
	if c.Generator.Workers < 1 {
		return fmt.Errorf("generator.workers must be at least 1, got %d", c.Generator.Workers)
	}
	return nil
}
