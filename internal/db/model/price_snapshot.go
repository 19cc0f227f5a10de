package model

const (
	PriceSnapshotCollection  = "price_snapshots"
	LatestSnapshotCollection = "latest_snapshot"
)

// PriceSnapshot holds regional average prices and network totals observed
// at a given unix timestamp. Timestamp is the record key; 0 marks the
// "no snapshot" sentinel and is never stored.
type PriceSnapshot struct {
	Timestamp    uint64 `bson:"_id" json:"timestamp"`
	Europe       string `bson:"europe" json:"europe"`
	Asia         string `bson:"asia" json:"asia"`
	NorthAmerica string `bson:"north_america" json:"north_america"`
	Other        string `bson:"other" json:"other"`
	GlobalPrice  string `bson:"global_price" json:"global_price"`
	FilUSD       string `bson:"fil_usd" json:"fil_usd"`
	TotalPower   string `bson:"total_power" json:"total_power"`
}

// LatestSnapshot points at the most recently submitted snapshot timestamp.
// It is rewritten on every snapshot upsert and deliberately left untouched
// by deletes, so it can point at a record that no longer exists.
type LatestSnapshot struct {
	Timestamp uint64 `bson:"timestamp"`
}
