//go:build integration

package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CrossChainLabs-FIL/filmarket-registry/internal/clients/marketclient"
	"github.com/CrossChainLabs-FIL/filmarket-registry/internal/config"
	"github.com/CrossChainLabs-FIL/filmarket-registry/internal/db/model"
	"github.com/CrossChainLabs-FIL/filmarket-registry/internal/types"
)

type stubMarketClient struct {
	listings []marketclient.ProviderListing
	rate     string
}

func (s *stubMarketClient) GetStorageProviders(_ context.Context) ([]marketclient.ProviderListing, error) {
	return s.listings, nil
}

func (s *stubMarketClient) GetFILUSDRate(_ context.Context) (string, error) {
	return s.rate, nil
}

func TestCollectMarketData(t *testing.T) {
	t.Cleanup(func() {
		resetDatabase(t)
	})

	market := &stubMarketClient{
		listings: []marketclient.ProviderListing{
			{MinerID: "f01001", Region: "Europe", Power: "1000", Price: "15", PriceFIL: "3"},
			{MinerID: "f01002", Region: "United States", Power: "3000", Price: "25", PriceFIL: "5"},
		},
		rate: "4.12",
	}
	service := &Service{
		cfg: &config.Config{
			Collector: &config.CollectorConfig{Account: testOwner},
		},
		db:     testDB,
		market: market,
	}
	initRegistry(t, service, testOwner)

	require.NoError(t, service.collectMarketData(context.Background()))

	providers, err := service.GetStorageProviders(context.Background())
	require.NoError(t, err)
	require.Len(t, providers, 2)
	assert.Equal(t, types.RegionEurope, providers[0].Region)
	assert.Equal(t, types.RegionNorthAmerica, providers[1].Region)

	latest, err := service.GetLatestPriceSnapshot(context.Background())
	require.NoError(t, err)
	assert.NotZero(t, latest.Timestamp)
	assert.Equal(t, "15", latest.Europe)
	assert.Equal(t, "25", latest.NorthAmerica)
	assert.Equal(t, "20", latest.GlobalPrice)
	assert.Equal(t, "4.12", latest.FilUSD)
	assert.Equal(t, "4000", latest.TotalPower)

	counters, err := service.GetActivePerRegion(context.Background())
	require.NoError(t, err)
	assert.Equal(t, &model.ActivePerRegion{Europe: 1, NorthAmerica: 1}, counters)
}

func TestCollectMarketData_NonOwnerAccount(t *testing.T) {
	t.Cleanup(func() {
		resetDatabase(t)
	})

	market := &stubMarketClient{
		listings: []marketclient.ProviderListing{
			{MinerID: "f01001", Region: "Europe", Power: "1", Price: "1", PriceFIL: "1"},
		},
		rate: "4.12",
	}
	service := &Service{
		cfg: &config.Config{
			Collector: &config.CollectorConfig{Account: "bot.near"},
		},
		db:     testDB,
		market: market,
	}
	initRegistry(t, service, testOwner)

	// the collector account does not own the registry so every write is
	// silently dropped
	require.NoError(t, service.collectMarketData(context.Background()))

	providers, err := service.GetStorageProviders(context.Background())
	require.NoError(t, err)
	assert.Empty(t, providers)
}
