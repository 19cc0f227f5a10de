package db

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/CrossChainLabs-FIL/filmarket-registry/internal/db/model"
)

// UpsertStorageProviders applies the provider records one by one in input
// order. For a new provider the whole record is written, for an existing one
// only power and prices are overwritten while the stored region is kept.
func (db *Database) UpsertStorageProviders(ctx context.Context, providers []*model.StorageProvider) error {
	collection := db.collection(model.StorageProviderCollection)

	for _, provider := range providers {
		seq, err := db.nextSequence(ctx, model.StorageProviderCollection)
		if err != nil {
			return fmt.Errorf("failed to allocate sequence for storage provider %s: %w", provider.ID, err)
		}

		filter := bson.M{"_id": provider.ID}
		update := bson.M{
			"$set": bson.M{
				"power":     provider.Power,
				"price":     provider.Price,
				"price_fil": provider.PriceFIL,
			},
			"$setOnInsert": bson.M{
				"region": provider.Region,
				"seq":    seq,
			},
		}

		_, err = collection.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
		if err != nil {
			return fmt.Errorf("failed to upsert storage provider %s: %w", provider.ID, err)
		}
	}

	return nil
}

// DeleteStorageProviders removes the given provider ids. Ids without a
// stored record are silently ignored, the returned count covers only the
// records that actually existed.
func (db *Database) DeleteStorageProviders(ctx context.Context, ids []string) (int64, error) {
	filter := bson.M{"_id": bson.M{"$in": ids}}

	result, err := db.collection(model.StorageProviderCollection).DeleteMany(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("failed to delete storage providers: %w", err)
	}

	return result.DeletedCount, nil
}

// GetAllStorageProviders returns every provider record ordered by first
// insertion. Later power or price updates do not change a record's position.
func (db *Database) GetAllStorageProviders(ctx context.Context) ([]*model.StorageProvider, error) {
	opts := options.Find().SetSort(bson.D{{Key: "seq", Value: 1}})
	cursor, err := db.collection(model.StorageProviderCollection).Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var providers []*model.StorageProvider
	if err = cursor.All(ctx, &providers); err != nil {
		return nil, err
	}

	return providers, nil
}
