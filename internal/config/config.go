// Package config reads ftracker settings from environment.
package config

import (
	"time"

	"github.com/spf13/viper"
)

// Config holds runtime settings. Command line flags override them.
type Config struct {
	Address         string        `mapstructure:"ADDRESS"`
	PackagesPath    string        `mapstructure:"PACKAGES"`
	LogLevel        string        `mapstructure:"LOG_LEVEL"`
	MaxConnections  int           `mapstructure:"MAX_CONNECTIONS"`
	ShutdownTimeout time.Duration `mapstructure:"SHUTDOWN_TIMEOUT"`
}

// Load reads FTRACKER_* environment variables, applying defaults for local runs.
func Load() (Config, error) {
	v := viper.New()
	v.SetEnvPrefix("FTRACKER")
	v.AutomaticEnv()

	v.SetDefault("ADDRESS", ":8080")
	v.SetDefault("PACKAGES", "")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("MAX_CONNECTIONS", 64)
	v.SetDefault("SHUTDOWN_TIMEOUT", 5*time.Second)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
