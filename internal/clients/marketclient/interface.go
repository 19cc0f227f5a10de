package marketclient

import (
	"context"
)

type MarketInterface interface {
	GetStorageProviders(ctx context.Context) ([]ProviderListing, error)
	GetFILUSDRate(ctx context.Context) (string, error)
}
