package config

import (
	"fmt"

	"github.com/spf13/viper"
)

type CompactorConfig struct {
	Schedule string `mapstructure:"schedule"`
}

func (config CompactorConfig) validate() error {
	if config.Schedule == "" {
		return fmt.Errorf("missing variable: compactor schedule")
	}
	return nil
}

func (config CompactorConfig) bindEnvironmentVariables() error {
	return viper.BindEnv("compactor.schedule", "COMPACTOR_SCHEDULE")
}
