package services

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/CrossChainLabs-FIL/filmarket-registry/consumer"
	"github.com/CrossChainLabs-FIL/filmarket-registry/internal/db"
	"github.com/CrossChainLabs-FIL/filmarket-registry/internal/db/model"
	"github.com/CrossChainLabs-FIL/filmarket-registry/internal/observability/metrics"
)

// UpsertPriceSnapshot stores the snapshot under its timestamp, replacing
// any existing record wholesale, and repoints the latest marker at it
// regardless of how its timestamp compares to the current latest.
func (s *Service) UpsertPriceSnapshot(ctx context.Context, snapshot *model.PriceSnapshot) error {
	ok, err := s.authorizeOwner(ctx, "upsert_price_snapshot")
	if err != nil || !ok {
		return err
	}

	if err := s.db.UpsertPriceSnapshot(ctx, snapshot); err != nil {
		return fmt.Errorf("failed to upsert price snapshot: %w", err)
	}

	if snapshot.Timestamp == 0 {
		// the store skips the zero sentinel, nothing was written
		return nil
	}

	log.Ctx(ctx).Info().
		Uint64("timestamp", snapshot.Timestamp).
		Msg("Price snapshot upserted")
	metrics.RecordLatestSnapshotTimestamp(snapshot.Timestamp)
	s.publishRegistryEvent(ctx, consumer.PriceSnapshotUpsertedType, 1)

	return nil
}

// DeletePriceSnapshots removes the snapshots with the given timestamps.
// Timestamps without a matching record are ignored and the latest marker
// is left untouched even when it points at a deleted snapshot.
func (s *Service) DeletePriceSnapshots(ctx context.Context, timestamps []uint64) error {
	ok, err := s.authorizeOwner(ctx, "delete_price_snapshots")
	if err != nil || !ok {
		return err
	}

	if len(timestamps) == 0 {
		return nil
	}

	deleted, err := s.db.DeletePriceSnapshots(ctx, timestamps)
	if err != nil {
		return fmt.Errorf("failed to delete price snapshots: %w", err)
	}

	log.Ctx(ctx).Info().
		Int("requested", len(timestamps)).
		Int64("deleted", deleted).
		Msg("Price snapshots deleted")
	s.publishRegistryEvent(ctx, consumer.PriceSnapshotsDeletedType, int(deleted))

	return nil
}

// GetPriceSnapshots returns all snapshots in submission order.
func (s *Service) GetPriceSnapshots(ctx context.Context) ([]*model.PriceSnapshot, error) {
	snapshots, err := s.db.GetAllPriceSnapshots(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get price snapshots: %w", err)
	}

	return snapshots, nil
}

// GetLatestPriceSnapshot returns the snapshot the latest marker points
// at. When nothing was recorded yet, or the marked snapshot was deleted,
// it returns the zero-value record instead of an error.
func (s *Service) GetLatestPriceSnapshot(ctx context.Context) (*model.PriceSnapshot, error) {
	snapshot, err := s.db.GetLatestPriceSnapshot(ctx)
	if err != nil {
		if db.IsNotFoundError(err) {
			return &model.PriceSnapshot{}, nil
		}
		return nil, fmt.Errorf("failed to get latest price snapshot: %w", err)
	}

	return snapshot, nil
}
