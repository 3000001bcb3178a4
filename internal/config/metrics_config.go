package config

import (
	"github.com/spf13/viper"
)

// MetricsConfig leaves ListenAddr empty to disable the metrics server.
type MetricsConfig struct {
	ListenAddr string `mapstructure:"listen_addr"`
}

func (config MetricsConfig) validate() error {
	return nil
}

func (config MetricsConfig) bindEnvironmentVariables() error {
	return viper.BindEnv("metrics.listen_addr", "METRICS_LISTEN_ADDR")
}
