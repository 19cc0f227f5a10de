package config

import (
	"fmt"
	"os"

	"github.com/spf13/viper"
)

type Config struct {
	Db        DbConfig         `mapstructure:"db"`
	Api       ApiConfig        `mapstructure:"api"`
	Queue     QueueConfig      `mapstructure:"queue"`
	Metrics   MetricsConfig    `mapstructure:"metrics"`
	Poller    PollerConfig     `mapstructure:"poller"`
	Market    *MarketConfig    `mapstructure:"market"`
	Collector *CollectorConfig `mapstructure:"collector"`
}

func (cfg *Config) Validate() error {
	if err := cfg.Db.Validate(); err != nil {
		return err
	}
	if err := cfg.Api.Validate(); err != nil {
		return err
	}
	if err := cfg.Queue.Validate(); err != nil {
		return err
	}
	if err := cfg.Metrics.Validate(); err != nil {
		return err
	}
	if err := cfg.Poller.Validate(); err != nil {
		return err
	}

	// the collector is optional, but it cannot run without a market client
	if (cfg.Collector == nil) != (cfg.Market == nil) {
		return fmt.Errorf("market and collector config sections must be set together")
	}
	if cfg.Market != nil {
		if err := cfg.Market.Validate(); err != nil {
			return err
		}
	}
	if cfg.Collector != nil {
		if err := cfg.Collector.Validate(); err != nil {
			return err
		}
	}

	return nil
}

// New returns a fully parsed and validated Config object from the given file
func New(cfgFile string) (*Config, error) {
	if _, err := os.Stat(cfgFile); err != nil {
		return nil, err
	}

	viper.SetConfigFile(cfgFile)
	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", cfgFile, err)
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config file %s: %w", cfgFile, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}
