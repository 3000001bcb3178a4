package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// APIConfig drives the in-process request layer.
type APIConfig struct {
	MinLatency  time.Duration `mapstructure:"min_latency"`
	MaxLatency  time.Duration `mapstructure:"max_latency"`
	FailureRate float64       `mapstructure:"failure_rate"`
	// ListenAddr, when set, also serves the routes over real HTTP for local development.
	ListenAddr string `mapstructure:"listen_addr"`
}

func (config APIConfig) validate() error {
	var errs []error

	if config.MinLatency < 0 || config.MaxLatency < config.MinLatency {
		errs = append(errs, fmt.Errorf("invalid latency range: %v..%v", config.MinLatency, config.MaxLatency))
	}
	if config.FailureRate < 0 || config.FailureRate > 1 {
		errs = append(errs, fmt.Errorf("failure_rate must be within [0, 1], got %v", config.FailureRate))
	}

	return errors.Join(errs...)
}

func (config APIConfig) bindEnvironmentVariables() error {
	return errors.Join(
		viper.BindEnv("api.min_latency", "API_MIN_LATENCY"),
		viper.BindEnv("api.max_latency", "API_MAX_LATENCY"),
		viper.BindEnv("api.failure_rate", "API_FAILURE_RATE"),
		viper.BindEnv("api.listen_addr", "API_LISTEN_ADDR"),
	)
}
