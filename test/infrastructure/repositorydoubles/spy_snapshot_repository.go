//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/regtravel/internal/domain/entities"
	"github.com/rios0rios0/regtravel/internal/domain/repositories"
)

// MaterializeCall records a single invocation of Materialize.
type MaterializeCall struct {
	Source entities.RegistrySource
	Commit entities.CommitRecord
}

// SpySnapshotRepository implements repositories.SnapshotRepository as a
// configurable spy. Snapshots land under /snapshots/<name>.
type SpySnapshotRepository struct {
	MaterializeErrs  map[string]error
	MaterializeCalls []MaterializeCall

	Removed   map[string][]string
	RemoveErr error
}

var _ repositories.SnapshotRepository = (*SpySnapshotRepository)(nil)

func (s *SpySnapshotRepository) Materialize(
	_ context.Context,
	source entities.RegistrySource,
	commit entities.CommitRecord,
) (*entities.RegistrySnapshot, error) {
	s.MaterializeCalls = append(s.MaterializeCalls, MaterializeCall{Source: source, Commit: commit})
	if err := s.MaterializeErrs[source.Name]; err != nil {
		return nil, err
	}
	return &entities.RegistrySnapshot{Source: source, Commit: commit, Dir: "/snapshots/" + source.Name}, nil
}

func (s *SpySnapshotRepository) Remove(_ context.Context, source entities.RegistrySource) ([]string, error) {
	return s.Removed[source.Name], s.RemoveErr
}
