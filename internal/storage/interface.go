package storage

import "github.com/iksdev/habita/internal/models"

// Provider is the snapshot store collaborator. The whole aggregate is read
// and written atomically; no reader ever observes a partially written
// snapshot.
type Provider interface {
	// Lifecycle
	Init() error
	Close() error

	// Load returns the last committed snapshot, or the empty snapshot if
	// storage has been initialized but nothing was saved yet.
	Load() (models.Snapshot, error)

	// Save persists the full snapshot. It either succeeds completely or
	// leaves the previous snapshot in place.
	Save(models.Snapshot) error

	// Utils
	GetConfigPath() string
}
