package db

import (
	"context"
	"time"

	"github.com/CrossChainLabs-FIL/filmarket-registry/internal/db/model"
	"github.com/CrossChainLabs-FIL/filmarket-registry/internal/observability/metrics"
)

type DbWithMetrics struct {
	db DbInterface
}

func NewDbWithMetrics(db DbInterface) *DbWithMetrics {
	return &DbWithMetrics{db: db}
}

func (d *DbWithMetrics) Ping(ctx context.Context) error {
	return d.db.Ping(ctx)
}

func (d *DbWithMetrics) InitRegistryOwner(ctx context.Context, owner string) error {
	return d.run("InitRegistryOwner", func() error {
		return d.db.InitRegistryOwner(ctx, owner)
	})
}

func (d *DbWithMetrics) GetRegistryOwner(ctx context.Context) (result string, err error) {
	//nolint:errcheck
	d.run("GetRegistryOwner", func() error {
		result, err = d.db.GetRegistryOwner(ctx)
		return err
	})
	return
}

func (d *DbWithMetrics) UpsertStorageProviders(ctx context.Context, providers []*model.StorageProvider) error {
	return d.run("UpsertStorageProviders", func() error {
		return d.db.UpsertStorageProviders(ctx, providers)
	})
}

func (d *DbWithMetrics) DeleteStorageProviders(ctx context.Context, ids []string) (result int64, err error) {
	//nolint:errcheck
	d.run("DeleteStorageProviders", func() error {
		result, err = d.db.DeleteStorageProviders(ctx, ids)
		return err
	})
	return
}

func (d *DbWithMetrics) GetAllStorageProviders(ctx context.Context) (result []*model.StorageProvider, err error) {
	//nolint:errcheck
	d.run("GetAllStorageProviders", func() error {
		result, err = d.db.GetAllStorageProviders(ctx)
		return err
	})
	return
}

func (d *DbWithMetrics) UpsertPriceSnapshot(ctx context.Context, snapshot *model.PriceSnapshot) error {
	return d.run("UpsertPriceSnapshot", func() error {
		return d.db.UpsertPriceSnapshot(ctx, snapshot)
	})
}

func (d *DbWithMetrics) DeletePriceSnapshots(ctx context.Context, timestamps []uint64) (result int64, err error) {
	//nolint:errcheck
	d.run("DeletePriceSnapshots", func() error {
		result, err = d.db.DeletePriceSnapshots(ctx, timestamps)
		return err
	})
	return
}

func (d *DbWithMetrics) GetAllPriceSnapshots(ctx context.Context) (result []*model.PriceSnapshot, err error) {
	//nolint:errcheck
	d.run("GetAllPriceSnapshots", func() error {
		result, err = d.db.GetAllPriceSnapshots(ctx)
		return err
	})
	return
}

func (d *DbWithMetrics) GetLatestPriceSnapshot(ctx context.Context) (result *model.PriceSnapshot, err error) {
	//nolint:errcheck
	d.run("GetLatestPriceSnapshot", func() error {
		result, err = d.db.GetLatestPriceSnapshot(ctx)
		return err
	})
	return
}

func (d *DbWithMetrics) SetActivePerRegion(ctx context.Context, counts *model.ActivePerRegion) error {
	return d.run("SetActivePerRegion", func() error {
		return d.db.SetActivePerRegion(ctx, counts)
	})
}

func (d *DbWithMetrics) GetActivePerRegion(ctx context.Context) (result *model.ActivePerRegion, err error) {
	//nolint:errcheck
	d.run("GetActivePerRegion", func() error {
		result, err = d.db.GetActivePerRegion(ctx)
		return err
	})
	return
}

// run is private method that executes passed lambda function and send metrics data with spent time, method name
// and an error if any. It returns the error from the lambda function for convenience
func (d *DbWithMetrics) run(method string, f func() error) error {
	startTime := time.Now()
	err := f()
	duration := time.Since(startTime)

	metrics.RecordDbLatency(duration, method, err != nil)
	return err
}
