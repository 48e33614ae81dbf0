package repositories

import "github.com/rios0rios0/regtravel/internal/domain/entities"

// Toolset bundles the repositories one resolution run works with. They are
// bound to a workspace, which is only known once settings are loaded.
type Toolset struct {
	History   HistoryRepository
	Snapshots SnapshotRepository
	Indexes   IndexRepository
}

// ToolsetFactory builds a Toolset for the given settings.
type ToolsetFactory interface {
	New(settings *entities.Settings) (*Toolset, error)
}
