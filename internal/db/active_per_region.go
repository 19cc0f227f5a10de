package db

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/CrossChainLabs-FIL/filmarket-registry/internal/db/model"
)

const activePerRegionID = "singleton"

type activePerRegionDoc struct {
	ID                     string `bson:"_id"`
	*model.ActivePerRegion `bson:",inline"`
}

func (db *Database) GetActivePerRegion(ctx context.Context) (*model.ActivePerRegion, error) {
	filter := map[string]any{"_id": activePerRegionID}
	res := db.collection(model.ActivePerRegionCollection).FindOne(ctx, filter)

	var doc activePerRegionDoc
	err := res.Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, &NotFoundError{
				Key:     activePerRegionID,
				Message: "active per region counters not found",
			}
		}
		return nil, err
	}

	return doc.ActivePerRegion, nil
}

// SetActivePerRegion replaces the counter aggregate as a whole. There is no
// per-field update and no validation of the submitted values.
func (db *Database) SetActivePerRegion(ctx context.Context, counts *model.ActivePerRegion) error {
	collection := db.collection(model.ActivePerRegionCollection)

	doc := activePerRegionDoc{
		ID:              activePerRegionID,
		ActivePerRegion: counts,
	}

	filter := bson.M{
		"_id": activePerRegionID,
	}
	update := bson.M{"$set": doc}

	_, err := collection.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	return err
}
