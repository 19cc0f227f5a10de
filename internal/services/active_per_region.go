package services

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/CrossChainLabs-FIL/filmarket-registry/consumer"
	"github.com/CrossChainLabs-FIL/filmarket-registry/internal/db"
	"github.com/CrossChainLabs-FIL/filmarket-registry/internal/db/model"
)

// SetActivePerRegion replaces the per-region active provider counters
// wholesale. The values are stored as given, without validation.
func (s *Service) SetActivePerRegion(ctx context.Context, counters *model.ActivePerRegion) error {
	ok, err := s.authorizeOwner(ctx, "set_active_per_region")
	if err != nil || !ok {
		return err
	}

	if err := s.db.SetActivePerRegion(ctx, counters); err != nil {
		return fmt.Errorf("failed to set active per region counters: %w", err)
	}

	log.Ctx(ctx).Info().
		Uint32("europe", counters.Europe).
		Uint32("asia", counters.Asia).
		Uint32("north_america", counters.NorthAmerica).
		Uint32("other", counters.Other).
		Msg("Active per region counters set")
	s.publishRegistryEvent(ctx, consumer.ActivePerRegionSetType, 1)

	return nil
}

// GetActivePerRegion returns the stored counters, or all zeroes when
// they were never set.
func (s *Service) GetActivePerRegion(ctx context.Context) (*model.ActivePerRegion, error) {
	counters, err := s.db.GetActivePerRegion(ctx)
	if err != nil {
		if db.IsNotFoundError(err) {
			return &model.ActivePerRegion{}, nil
		}
		return nil, fmt.Errorf("failed to get active per region counters: %w", err)
	}

	return counters, nil
}
