package config

import (
	"fmt"
)

type ApiConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
}

func (cfg *ApiConfig) Validate() error {
	if cfg.Host == "" {
		return fmt.Errorf("api host cannot be empty")
	}
	if cfg.Port < 1024 || cfg.Port > 65535 {
		return fmt.Errorf("api port must be between 1024 and 65535")
	}

	return nil
}

func (cfg *ApiConfig) Address() string {
	return fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)
}
