package repositories

import (
	"context"

	"github.com/rios0rios0/regtravel/internal/domain/entities"
)

// HistoryRepository owns the history mirrors of registries. Mirrors hold
// commit metadata only and are used purely for commit searches.
type HistoryRepository interface {
	// EnsureHistory returns the registry's mirror, cloning it only when its
	// directory does not exist yet. Existing mirrors are never refreshed.
	EnsureHistory(ctx context.Context, source entities.RegistrySource) (*entities.HistoryMirror, error)

	// LocateRelease finds the first-parent commit that published ref and
	// returns it with its author date. Fails with *entities.PackageNotFoundError.
	LocateRelease(
		ctx context.Context,
		mirror *entities.HistoryMirror,
		ref entities.PackageReference,
	) (*entities.CommitRecord, error)

	// ResolveBeforeOrAt returns the newest first-parent commit not after
	// target. Fails with *entities.NoCommitBeforeDateError.
	ResolveBeforeOrAt(
		ctx context.Context,
		mirror *entities.HistoryMirror,
		target entities.CommitRecord,
	) (*entities.CommitRecord, error)

	// Remove deletes the registry's mirror directory and returns what it removed.
	Remove(ctx context.Context, source entities.RegistrySource) ([]string, error)
}
