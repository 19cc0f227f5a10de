//go:build manual

package marketclient

import (
	"context"
	"testing"
	"time"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/require"

	"github.com/CrossChainLabs-FIL/filmarket-registry/internal/config"
	"github.com/CrossChainLabs-FIL/filmarket-registry/pkg"
)

func TestMarketClient(t *testing.T) {
	endpoint := pkg.Getenv("MARKET_ENDPOINT", "https://api.filmarket.dev")

	cl := NewClient(&config.MarketConfig{
		Endpoint:      endpoint,
		Timeout:       5 * time.Second,
		MaxRetryTimes: 3,
		RetryInterval: time.Second,
	})

	providers, err := cl.GetStorageProviders(context.Background())
	require.NoError(t, err)

	spew.Dump(providers)

	rate, err := cl.GetFILUSDRate(context.Background())
	require.NoError(t, err)

	spew.Dump(rate)
}
