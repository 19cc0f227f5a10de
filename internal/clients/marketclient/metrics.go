package marketclient

import (
	"context"
	"time"

	"github.com/CrossChainLabs-FIL/filmarket-registry/internal/observability/metrics"
)

type marketClientWithMetrics struct {
	market MarketInterface
}

func NewMarketClientWithMetrics(market MarketInterface) *marketClientWithMetrics {
	return &marketClientWithMetrics{market: market}
}

func (m *marketClientWithMetrics) GetStorageProviders(ctx context.Context) ([]ProviderListing, error) {
	return runMarketClientMethodWithMetrics("GetStorageProviders", func() ([]ProviderListing, error) {
		return m.market.GetStorageProviders(ctx)
	})
}

func (m *marketClientWithMetrics) GetFILUSDRate(ctx context.Context) (string, error) {
	return runMarketClientMethodWithMetrics("GetFILUSDRate", func() (string, error) {
		return m.market.GetFILUSDRate(ctx)
	})
}

func runMarketClientMethodWithMetrics[T any](method string, f func() (T, error)) (T, error) {
	startTime := time.Now()
	v, err := f()
	duration := time.Since(startTime)

	metrics.RecordMarketClientLatency(duration, method, err != nil)
	return v, err
}
