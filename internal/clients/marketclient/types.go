package marketclient

// ProviderListing is a single storage provider offer as reported by the
// market data aggregator. Numeric fields are decimal strings and are
// passed through to the registry verbatim.
type ProviderListing struct {
	MinerID  string `json:"miner_id"`
	Region   string `json:"region"`
	Power    string `json:"power"`
	Price    string `json:"price"`
	PriceFIL string `json:"price_fil"`
}

type providersResponse struct {
	Providers []ProviderListing `json:"providers"`
}
