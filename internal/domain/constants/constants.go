// Package constants holds identifiers shared between configuration and infrastructure.
package constants

// Deployment environments named by env.env.
const (
	EnvDevelop = "develop"
)

// Storage drivers selectable with storage.driver.
const (
	StorageDriverPostgres = "postgres"
	StorageDriverMongo    = "mongo"
	StorageDriverMemory   = "memory"
)

// Event publishing providers selectable with pubsub.provider.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Image upload limits.
const (
	DefaultImageMaxSizeBytes = 5 << 20
	ImageKeyPrefix           = "menu-items/"
	// ImageRoutePath is where the API serves stored images when no external host is configured.
	ImageRoutePath = "/images"
)

// Menu snapshot publishing.
const (
	SnapshotKeyPrefix          = "menus/"
	DefaultSnapshotConcurrency = 4
)
