package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/CrossChainLabs-FIL/filmarket-registry/internal/db/model"
)

// UpsertPriceSnapshot stores the snapshot under its timestamp, replacing
// every field of an existing record with the same key, and then moves the
// latest pointer to the submitted timestamp. The pointer follows submission
// order, not timestamp order, so a backdated snapshot still becomes latest.
// Timestamp 0 is the "no snapshot" sentinel and is never stored.
func (db *Database) UpsertPriceSnapshot(ctx context.Context, snapshot *model.PriceSnapshot) error {
	if snapshot.Timestamp == 0 {
		log.Ctx(ctx).Warn().Msg("Skipping price snapshot with zero timestamp")
		return nil
	}

	seq, err := db.nextSequence(ctx, model.PriceSnapshotCollection)
	if err != nil {
		return fmt.Errorf("failed to allocate sequence for price snapshot: %w", err)
	}

	filter := bson.M{"_id": snapshot.Timestamp}
	update := bson.M{
		"$set": bson.M{
			"europe":        snapshot.Europe,
			"asia":          snapshot.Asia,
			"north_america": snapshot.NorthAmerica,
			"other":         snapshot.Other,
			"global_price":  snapshot.GlobalPrice,
			"fil_usd":       snapshot.FilUSD,
			"total_power":   snapshot.TotalPower,
		},
		"$setOnInsert": bson.M{
			"seq": seq,
		},
	}

	_, err = db.collection(model.PriceSnapshotCollection).
		UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("failed to upsert price snapshot %d: %w", snapshot.Timestamp, err)
	}

	return db.updateLatestSnapshotTimestamp(ctx, snapshot.Timestamp)
}

// DeletePriceSnapshots removes the snapshots with the given timestamps.
// Missing timestamps are silently ignored. The latest pointer is not
// adjusted even when the pointed-at snapshot is among the removed ones.
func (db *Database) DeletePriceSnapshots(ctx context.Context, timestamps []uint64) (int64, error) {
	filter := bson.M{"_id": bson.M{"$in": timestamps}}

	result, err := db.collection(model.PriceSnapshotCollection).DeleteMany(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("failed to delete price snapshots: %w", err)
	}

	return result.DeletedCount, nil
}

// GetAllPriceSnapshots returns every stored snapshot ordered by first
// insertion.
func (db *Database) GetAllPriceSnapshots(ctx context.Context) ([]*model.PriceSnapshot, error) {
	opts := options.Find().SetSort(bson.D{{Key: "seq", Value: 1}})
	cursor, err := db.collection(model.PriceSnapshotCollection).Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var snapshots []*model.PriceSnapshot
	if err = cursor.All(ctx, &snapshots); err != nil {
		return nil, err
	}

	return snapshots, nil
}

// GetLatestPriceSnapshot resolves the latest pointer and loads the record it
// points at. A zero or missing pointer, or a pointer left stale by deletes,
// yields NotFoundError.
func (db *Database) GetLatestPriceSnapshot(ctx context.Context) (*model.PriceSnapshot, error) {
	timestamp, err := db.getLatestSnapshotTimestamp(ctx)
	if err != nil {
		return nil, err
	}
	if timestamp == 0 {
		return nil, &NotFoundError{
			Key:     model.LatestSnapshotCollection,
			Message: "no price snapshot recorded",
		}
	}

	res := db.collection(model.PriceSnapshotCollection).FindOne(ctx, bson.M{"_id": timestamp})

	var snapshot model.PriceSnapshot
	if err := res.Decode(&snapshot); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, &NotFoundError{
				Key:     fmt.Sprintf("%d", timestamp),
				Message: "latest price snapshot no longer exists",
			}
		}
		return nil, err
	}

	return &snapshot, nil
}

func (db *Database) getLatestSnapshotTimestamp(ctx context.Context) (uint64, error) {
	var result model.LatestSnapshot
	err := db.collection(model.LatestSnapshotCollection).
		FindOne(ctx, bson.M{}).Decode(&result)
	if errors.Is(err, mongo.ErrNoDocuments) {
		// If no document exists, return 0
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return result.Timestamp, nil
}

func (db *Database) updateLatestSnapshotTimestamp(ctx context.Context, timestamp uint64) error {
	update := bson.M{"$set": bson.M{"timestamp": timestamp}}
	opts := options.Update().SetUpsert(true)
	_, err := db.collection(model.LatestSnapshotCollection).
		UpdateOne(ctx, bson.M{}, update, opts)
	return err
}
