package db

import (
	"context"

	"github.com/CrossChainLabs-FIL/filmarket-registry/internal/db/model"
)

type DbInterface interface {
	Ping(ctx context.Context) error
	InitRegistryOwner(ctx context.Context, owner string) error
	GetRegistryOwner(ctx context.Context) (string, error)
	UpsertStorageProviders(ctx context.Context, providers []*model.StorageProvider) error
	DeleteStorageProviders(ctx context.Context, ids []string) (int64, error)
	GetAllStorageProviders(ctx context.Context) ([]*model.StorageProvider, error)
	UpsertPriceSnapshot(ctx context.Context, snapshot *model.PriceSnapshot) error
	DeletePriceSnapshots(ctx context.Context, timestamps []uint64) (int64, error)
	GetAllPriceSnapshots(ctx context.Context) ([]*model.PriceSnapshot, error)
	GetLatestPriceSnapshot(ctx context.Context) (*model.PriceSnapshot, error)
	SetActivePerRegion(ctx context.Context, counts *model.ActivePerRegion) error
	GetActivePerRegion(ctx context.Context) (*model.ActivePerRegion, error)
}
