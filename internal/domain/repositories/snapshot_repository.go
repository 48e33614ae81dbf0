package repositories

import (
	"context"

	"github.com/rios0rios0/regtravel/internal/domain/entities"
)

// SnapshotRepository materializes registry working trees pinned to a commit.
type SnapshotRepository interface {
	// Materialize checks out the registry at commit, fetching only that
	// commit's content. An existing snapshot directory is reused as-is.
	Materialize(
		ctx context.Context,
		source entities.RegistrySource,
		commit entities.CommitRecord,
	) (*entities.RegistrySnapshot, error)

	// Remove deletes every snapshot directory of the registry.
	Remove(ctx context.Context, source entities.RegistrySource) ([]string, error)
}
