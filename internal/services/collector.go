package services

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/sourcegraph/conc"

	"github.com/CrossChainLabs-FIL/filmarket-registry/internal/auth"
	"github.com/CrossChainLabs-FIL/filmarket-registry/internal/clients/marketclient"
	"github.com/CrossChainLabs-FIL/filmarket-registry/internal/db/model"
	"github.com/CrossChainLabs-FIL/filmarket-registry/internal/observability/metrics"
	"github.com/CrossChainLabs-FIL/filmarket-registry/internal/types"
	"github.com/CrossChainLabs-FIL/filmarket-registry/internal/utils/poller"
)

// StartCollector starts polling the market data aggregator and feeding
// its listings into the registry. It is a no-op when the collector
// section is not configured.
func (s *Service) StartCollector(ctx context.Context) {
	if s.cfg.Collector == nil || s.market == nil {
		log.Ctx(ctx).Info().Msg("Market data collector is not configured, skipping")
		return
	}

	marketPoller := poller.NewPoller(
		s.cfg.Poller.MarketPollingInterval,
		metrics.RecordPollerDuration("market_data", s.collectMarketData),
	)
	go marketPoller.Start(ctx)
}

// collectMarketData fetches the current provider listings and the
// FIL/USD rate, derives the aggregate snapshot and counters, and writes
// everything through the regular registry operations as the configured
// collector account.
func (s *Service) collectMarketData(ctx context.Context) error {
	ctx = auth.WithAccount(ctx, s.cfg.Collector.Account)

	var (
		listings    []marketclient.ProviderListing
		filUSDRate  string
		listingsErr error
		rateErr     error
	)

	var wg conc.WaitGroup
	wg.Go(func() {
		listings, listingsErr = s.market.GetStorageProviders(ctx)
	})
	wg.Go(func() {
		filUSDRate, rateErr = s.market.GetFILUSDRate(ctx)
	})
	wg.Wait()

	if listingsErr != nil {
		return fmt.Errorf("failed to fetch provider listings: %w", listingsErr)
	}
	if rateErr != nil {
		return fmt.Errorf("failed to fetch FIL/USD rate: %w", rateErr)
	}

	if len(listings) == 0 {
		log.Ctx(ctx).Debug().Msg("No provider listings returned - skipping market data update")
		return nil
	}

	providers := make([]*model.StorageProvider, 0, len(listings))
	for _, listing := range listings {
		providers = append(providers, &model.StorageProvider{
			ID:       listing.MinerID,
			Region:   types.ParseRegion(listing.Region),
			Power:    listing.Power,
			Price:    listing.Price,
			PriceFIL: listing.PriceFIL,
		})
	}

	if err := s.UpsertStorageProviders(ctx, providers); err != nil {
		return err
	}

	snapshot, counters := aggregateMarketData(providers, filUSDRate, uint64(time.Now().Unix()))

	if err := s.UpsertPriceSnapshot(ctx, snapshot); err != nil {
		return err
	}
	if err := s.SetActivePerRegion(ctx, counters); err != nil {
		return err
	}

	metrics.RecordStorageProvidersCount(len(providers))

	log.Ctx(ctx).Info().
		Int("providers", len(providers)).
		Uint64("timestamp", snapshot.Timestamp).
		Msg("Market data collected")

	return nil
}
