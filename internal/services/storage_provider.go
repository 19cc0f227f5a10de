package services

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/CrossChainLabs-FIL/filmarket-registry/consumer"
	"github.com/CrossChainLabs-FIL/filmarket-registry/internal/db/model"
)

// UpsertStorageProviders inserts or updates the given providers in
// submission order. For an existing provider the region set on first
// insert is kept and only power and prices are overwritten.
func (s *Service) UpsertStorageProviders(ctx context.Context, providers []*model.StorageProvider) error {
	ok, err := s.authorizeOwner(ctx, "upsert_storage_providers")
	if err != nil || !ok {
		return err
	}

	if len(providers) == 0 {
		return nil
	}

	if err := s.db.UpsertStorageProviders(ctx, providers); err != nil {
		return fmt.Errorf("failed to upsert storage providers: %w", err)
	}

	log.Ctx(ctx).Info().
		Int("count", len(providers)).
		Msg("Storage providers upserted")
	s.publishRegistryEvent(ctx, consumer.StorageProvidersUpsertedType, len(providers))

	return nil
}

// DeleteStorageProviders removes the providers with the given ids. Ids
// without a matching record are ignored.
func (s *Service) DeleteStorageProviders(ctx context.Context, ids []string) error {
	ok, err := s.authorizeOwner(ctx, "delete_storage_providers")
	if err != nil || !ok {
		return err
	}

	if len(ids) == 0 {
		return nil
	}

	deleted, err := s.db.DeleteStorageProviders(ctx, ids)
	if err != nil {
		return fmt.Errorf("failed to delete storage providers: %w", err)
	}

	log.Ctx(ctx).Info().
		Int("requested", len(ids)).
		Int64("deleted", deleted).
		Msg("Storage providers deleted")
	s.publishRegistryEvent(ctx, consumer.StorageProvidersDeletedType, int(deleted))

	return nil
}

// GetStorageProviders returns all providers in insertion order.
func (s *Service) GetStorageProviders(ctx context.Context) ([]*model.StorageProvider, error) {
	providers, err := s.db.GetAllStorageProviders(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get storage providers: %w", err)
	}

	return providers, nil
}
