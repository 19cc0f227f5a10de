package db

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/CrossChainLabs-FIL/filmarket-registry/internal/db/model"
)

const registryStateID = "singleton"

type registryStateDoc struct {
	ID                   string `bson:"_id"`
	*model.RegistryState `bson:",inline"`
}

// InitRegistryOwner writes the construction record. There can be only one,
// a second call fails with DuplicateKeyError regardless of the caller.
func (db *Database) InitRegistryOwner(ctx context.Context, owner string) error {
	doc := registryStateDoc{
		ID: registryStateID,
		RegistryState: &model.RegistryState{
			Owner: owner,
		},
	}

	_, err := db.collection(model.RegistryStateCollection).
		InsertOne(ctx, doc)
	if err != nil {
		var writeErr mongo.WriteException
		if errors.As(err, &writeErr) {
			for _, e := range writeErr.WriteErrors {
				if mongo.IsDuplicateKeyError(e) {
					return &DuplicateKeyError{
						Key:     registryStateID,
						Message: "registry already initialized",
					}
				}
			}
		}
		return err
	}

	return nil
}

func (db *Database) GetRegistryOwner(ctx context.Context) (string, error) {
	filter := map[string]any{"_id": registryStateID}
	res := db.collection(model.RegistryStateCollection).FindOne(ctx, filter)

	var doc registryStateDoc
	err := res.Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return "", &NotFoundError{
				Key:     registryStateID,
				Message: "registry is not initialized",
			}
		}
		return "", err
	}

	return doc.Owner, nil
}
