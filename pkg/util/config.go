package util

import (
	"fmt"

	"github.com/spf13/viper"
)

const (
	configName = "config"
	configDir  = "./data/"
)

// ReadConfig loads the optional engine config file. Callers fall back to
// viper defaults when it is absent.
func ReadConfig() error {
	viper.SetConfigName(configName)
	viper.AddConfigPath(configDir)
	viper.AddConfigPath(".")

	if err := viper.ReadInConfig(); err != nil {
		return fmt.Errorf("fatal error config file: %w", err)
	}
	return nil
}
