package config

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"
)

type DBConfig struct {
	ConnectionString string `mapstructure:"connection_string"`
	Seed             bool   `mapstructure:"seed"`
}

func (config DBConfig) validate() error {
	if config.ConnectionString == "" {
		return fmt.Errorf("missing variable: db connection string")
	}
	return nil
}

func (config DBConfig) bindEnvironmentVariables() error {
	return errors.Join(
		viper.BindEnv("db.connection_string", "DB_CONNECTION_STRING"),
		viper.BindEnv("db.seed", "DB_SEED"),
	)
}
