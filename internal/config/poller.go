package config

import (
	"time"
)

const defaultMarketPollingInterval = 10 * time.Minute

type PollerConfig struct {
	MarketPollingInterval time.Duration `mapstructure:"market-polling-interval"`
}

func (cfg *PollerConfig) Validate() error {
	if cfg.MarketPollingInterval <= 0 {
		cfg.MarketPollingInterval = defaultMarketPollingInterval
	}

	return nil
}
