package consumer

import (
	"context"
)

type EventType string

const (
	StorageProvidersUpsertedType EventType = "storage_providers_upserted"
	StorageProvidersDeletedType  EventType = "storage_providers_deleted"
	PriceSnapshotUpsertedType    EventType = "price_snapshot_upserted"
	PriceSnapshotsDeletedType    EventType = "price_snapshots_deleted"
	ActivePerRegionSetType       EventType = "active_per_region_set"
)

func (e EventType) String() string {
	return string(e)
}

// RegistryEvent is published after every successful registry mutation so
// downstream consumers can follow the market feed without polling.
type RegistryEvent struct {
	Type      EventType `json:"type"`
	Account   string    `json:"account"`
	Count     int       `json:"count"`
	Timestamp int64     `json:"timestamp"`
}

type EventPublisher interface {
	PublishRegistryEvent(ctx context.Context, event *RegistryEvent) error
	Shutdown()
}
