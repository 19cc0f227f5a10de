package config

import (
	"fmt"
)

type CollectorConfig struct {
	// Account is the identity the collector uses for registry mutations.
	// It must match the registry owner for the writes to take effect.
	Account string `mapstructure:"account"`
}

func (cfg *CollectorConfig) Validate() error {
	if cfg.Account == "" {
		return fmt.Errorf("collector account is required")
	}

	return nil
}
