package config

import (
	"fmt"
	"time"
)

type MarketConfig struct {
	// Endpoint is the base URL of the market data aggregator, including
	// the protocol prefix.
	Endpoint      string        `mapstructure:"endpoint"`
	Timeout       time.Duration `mapstructure:"timeout"`
	MaxRetryTimes uint          `mapstructure:"max-retry-times"`
	RetryInterval time.Duration `mapstructure:"retry-interval"`
}

func (cfg *MarketConfig) Validate() error {
	if cfg.Endpoint == "" {
		return fmt.Errorf("market endpoint is required")
	}
	if cfg.Timeout <= 0 {
		return fmt.Errorf("market timeout must be positive")
	}
	if cfg.MaxRetryTimes == 0 {
		return fmt.Errorf("market max-retry-times must be positive")
	}
	if cfg.RetryInterval <= 0 {
		return fmt.Errorf("market retry-interval must be positive")
	}

	return nil
}
