package config

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/spf13/viper"
)

type SchedulerConfig struct {
	Port                  int
	RoundRobinTimeQuantum int
	IdleStrategy          string
	LogLevel              string
	LogFormat             string
}

var once sync.Once
var config *SchedulerConfig
var configErr error

// GetSchedulerConfig loads config.yaml from the working directory once and
// hands every caller a copy.
func GetSchedulerConfig() (*SchedulerConfig, error) {
	once.Do(func() {
		config, configErr = Load("")
	})
	if configErr != nil {
		return nil, configErr
	}
	cfg := *config
	return &cfg, nil
}

// Load reads the config file at path, or config.yaml from ./ when path is
// empty. Only the search path falls back to defaults when no file exists;
// an explicit path must exist. SCHEDULER_* environment variables override
// both.
func Load(path string) (*SchedulerConfig, error) {
	v := viper.New()
	v.SetDefault("port", 9095)
	v.SetDefault("scheduler.round_robin.time_quantum", 2)
	v.SetDefault("scheduler.idle_strategy", "jump")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	v.SetEnvPrefix("scheduler")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	cfg := &SchedulerConfig{
		Port:                  v.GetInt("port"),
		RoundRobinTimeQuantum: v.GetInt("scheduler.round_robin.time_quantum"),
		IdleStrategy:          v.GetString("scheduler.idle_strategy"),
		LogLevel:              v.GetString("log.level"),
		LogFormat:             v.GetString("log.format"),
	}
	if cfg.Port <= 0 || cfg.Port > 65535 {
		return nil, fmt.Errorf("invalid config: port %d out of range", cfg.Port)
	}
	return cfg, nil
}
