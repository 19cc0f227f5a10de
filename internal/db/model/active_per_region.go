package model

const ActivePerRegionCollection = "active_per_region"

// ActivePerRegion carries the number of active storage providers per region.
// It is stored as a single document and replaced as a whole on every set.
type ActivePerRegion struct {
	Europe       uint32 `bson:"europe" json:"europe"`
	Asia         uint32 `bson:"asia" json:"asia"`
	NorthAmerica uint32 `bson:"north_america" json:"north_america"`
	Other        uint32 `bson:"other" json:"other"`
}
