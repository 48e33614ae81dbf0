//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/regtravel/internal/domain/entities"
	"github.com/rios0rios0/regtravel/internal/domain/repositories"
)

// StubIndexRepository implements repositories.IndexRepository, returning one
// index per snapshot with the packages configured for its registry.
type StubIndexRepository struct {
	Packages map[string][]entities.PackageEntry // registry name -> entries
	LoadErr  error
	// spy: snapshots passed to Load
	LoadedSnapshots []entities.RegistrySnapshot

	PackageDetails *entities.PackageDetails
	DetailsErr     error
	// spy: entries passed to Details
	DetailsCalls []entities.PackageEntry
}

var _ repositories.IndexRepository = (*StubIndexRepository)(nil)

func (s *StubIndexRepository) Load(
	_ context.Context,
	snapshots []entities.RegistrySnapshot,
) ([]*entities.RegistryIndex, error) {
	s.LoadedSnapshots = append(s.LoadedSnapshots, snapshots...)
	if s.LoadErr != nil {
		return nil, s.LoadErr
	}

	indexes := make([]*entities.RegistryIndex, 0, len(snapshots))
	for _, snapshot := range snapshots {
		packages := make(map[string]entities.PackageEntry)
		for _, entry := range s.Packages[snapshot.Source.Name] {
			packages[entry.UUID] = entry
		}
		indexes = append(indexes, &entities.RegistryIndex{
			Name:     snapshot.Source.Name,
			Snapshot: snapshot,
			Packages: packages,
		})
	}
	return indexes, nil
}

func (s *StubIndexRepository) Details(
	_ context.Context,
	_ *entities.RegistryIndex,
	entry entities.PackageEntry,
) (*entities.PackageDetails, error) {
	s.DetailsCalls = append(s.DetailsCalls, entry)
	return s.PackageDetails, s.DetailsErr
}
