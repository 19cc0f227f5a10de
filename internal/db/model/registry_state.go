package model

const (
	RegistryStateCollection = "registry_state"
	CountersCollection      = "counters"
)

// RegistryState is the singleton construction record. Owner is the account
// that initialized the registry and cannot be changed afterwards.
type RegistryState struct {
	Owner string `bson:"owner"`
}
