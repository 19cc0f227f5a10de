package services

import (
	"context"

	"github.com/CrossChainLabs-FIL/filmarket-registry/internal/db/model"
)

type RegistryInterface interface {
	Ping(ctx context.Context) error
	InitRegistry(ctx context.Context) error
	UpsertStorageProviders(ctx context.Context, providers []*model.StorageProvider) error
	DeleteStorageProviders(ctx context.Context, ids []string) error
	GetStorageProviders(ctx context.Context) ([]*model.StorageProvider, error)
	UpsertPriceSnapshot(ctx context.Context, snapshot *model.PriceSnapshot) error
	DeletePriceSnapshots(ctx context.Context, timestamps []uint64) error
	GetPriceSnapshots(ctx context.Context) ([]*model.PriceSnapshot, error)
	GetLatestPriceSnapshot(ctx context.Context) (*model.PriceSnapshot, error)
	SetActivePerRegion(ctx context.Context, counters *model.ActivePerRegion) error
	GetActivePerRegion(ctx context.Context) (*model.ActivePerRegion, error)
}
