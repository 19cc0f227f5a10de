package model

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/CrossChainLabs-FIL/filmarket-registry/internal/config"
)

type index struct {
	Indexes map[string]int
	Unique  bool
}

var collections = map[string][]index{
	RegistryStateCollection:   {{Indexes: map[string]int{}}},
	StorageProviderCollection: {{Indexes: map[string]int{"seq": 1}, Unique: true}},
	PriceSnapshotCollection:   {{Indexes: map[string]int{"seq": 1}, Unique: true}},
	LatestSnapshotCollection:  {{Indexes: map[string]int{}}},
	ActivePerRegionCollection: {{Indexes: map[string]int{}}},
	CountersCollection:        {{Indexes: map[string]int{}}},
}

// Setup creates the registry collections and their indexes. It is meant to
// run once at startup before the db client is used.
func Setup(ctx context.Context, cfg *config.DbConfig) error {
	credential := options.Credential{
		Username: cfg.Username,
		Password: cfg.Password,
	}
	clientOps := options.Client().ApplyURI(cfg.Address).SetAuth(credential)
	client, err := mongo.Connect(ctx, clientOps)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	database := client.Database(cfg.DbName)

	for name := range collections {
		createCollection(ctx, database, name)
	}

	for name, idxs := range collections {
		for _, idx := range idxs {
			createIndex(ctx, database, name, idx)
		}
	}

	log.Ctx(ctx).Info().Msg("Database setup completed successfully.")

	return client.Disconnect(ctx)
}

func createCollection(ctx context.Context, database *mongo.Database, collectionName string) {
	// CreateCollection fails if the collection already exists, which is fine
	if err := database.CreateCollection(ctx, collectionName); err != nil {
		log.Ctx(ctx).Debug().Err(err).Str("collection", collectionName).Msg("Failed to create collection")
		return
	}

	log.Ctx(ctx).Debug().Str("collection", collectionName).Msg("Collection created successfully")
}

func createIndex(ctx context.Context, database *mongo.Database, collectionName string, idx index) {
	if len(idx.Indexes) == 0 {
		return
	}

	indexKeys := bson.D{}
	for field, order := range idx.Indexes {
		indexKeys = append(indexKeys, bson.E{Key: field, Value: order})
	}

	indexModel := mongo.IndexModel{
		Keys:    indexKeys,
		Options: options.Index().SetUnique(idx.Unique),
	}

	if _, err := database.Collection(collectionName).Indexes().CreateOne(ctx, indexModel); err != nil {
		log.Ctx(ctx).Debug().Err(err).Str("collection", collectionName).Msg("Failed to create index on collection")
		return
	}

	log.Ctx(ctx).Debug().Str("collection", collectionName).Msg("Index created successfully on collection")
}
