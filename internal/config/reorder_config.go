package config

import (
	"fmt"

	"github.com/spf13/viper"
)

type ReorderConfig struct {
	FailureRate float64 `mapstructure:"failure_rate"`
}

func (config ReorderConfig) validate() error {
	if config.FailureRate < 0 || config.FailureRate > 1 {
		return fmt.Errorf("failure_rate must be within [0, 1], got %v", config.FailureRate)
	}
	return nil
}

func (config ReorderConfig) bindEnvironmentVariables() error {
	return viper.BindEnv("reorder.failure_rate", "REORDER_FAILURE_RATE")
}
