package model

import (
	"github.com/CrossChainLabs-FIL/filmarket-registry/internal/types"
)

const StorageProviderCollection = "storage_providers"

// StorageProvider is a single provider record in the market registry.
// The ID and Region are written once on first sight of the provider and
// never changed afterwards, Power and prices track the latest submission.
type StorageProvider struct {
	ID       string       `bson:"_id" json:"id"`
	Region   types.Region `bson:"region" json:"region"`
	Power    string       `bson:"power" json:"power"`
	Price    string       `bson:"price" json:"price"`
	PriceFIL string       `bson:"price_fil" json:"price_fil"`
}
