//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/regtravel/internal/domain/entities"
	"github.com/rios0rios0/regtravel/internal/domain/repositories"
)

// SpyHistoryRepository implements repositories.HistoryRepository over an
// in-memory history per registry.
type SpyHistoryRepository struct {
	// --- EnsureHistory ---
	EnsureErrs map[string]error // registry name -> error
	// spy: registries mirrored, in call order
	EnsuredSources []string

	// --- LocateRelease ---
	Releases  map[string]entities.CommitRecord // registry name -> release commit
	LocateErr map[string]error
	// spy: registries searched, in call order
	LocateCalls []string

	// --- ResolveBeforeOrAt ---
	Histories map[string][]entities.CommitRecord // registry name -> commits, any order
	// spy: registries resolved, in call order
	ResolveCalls []string

	// --- Remove ---
	Removed  map[string][]string // registry name -> dirs reported as removed
	RemoveErr error
}

var _ repositories.HistoryRepository = (*SpyHistoryRepository)(nil)

func (s *SpyHistoryRepository) EnsureHistory(
	_ context.Context,
	source entities.RegistrySource,
) (*entities.HistoryMirror, error) {
	s.EnsuredSources = append(s.EnsuredSources, source.Name)
	if err := s.EnsureErrs[source.Name]; err != nil {
		return nil, err
	}
	return &entities.HistoryMirror{Source: source, Dir: "/mirrors/" + source.Name, Branch: "master"}, nil
}

func (s *SpyHistoryRepository) LocateRelease(
	_ context.Context,
	mirror *entities.HistoryMirror,
	ref entities.PackageReference,
) (*entities.CommitRecord, error) {
	name := mirror.Source.Name
	s.LocateCalls = append(s.LocateCalls, name)
	if err := s.LocateErr[name]; err != nil {
		return nil, err
	}
	release, ok := s.Releases[name]
	if !ok {
		return nil, &entities.PackageNotFoundError{
			Package: ref.Name, Version: ref.Version, Registries: []string{name},
		}
	}
	return &release, nil
}

func (s *SpyHistoryRepository) ResolveBeforeOrAt(
	_ context.Context,
	mirror *entities.HistoryMirror,
	target entities.CommitRecord,
) (*entities.CommitRecord, error) {
	name := mirror.Source.Name
	s.ResolveCalls = append(s.ResolveCalls, name)

	var best *entities.CommitRecord
	for _, commit := range s.Histories[name] {
		if !commit.NotAfter(target) {
			continue
		}
		if best == nil || commit.Timestamp.After(best.Timestamp) {
			c := commit
			best = &c
		}
	}
	if best == nil {
		bound, _ := target.Bound()
		return nil, &entities.NoCommitBeforeDateError{Registry: name, Timestamp: bound}
	}
	return best, nil
}

func (s *SpyHistoryRepository) Remove(_ context.Context, source entities.RegistrySource) ([]string, error) {
	return s.Removed[source.Name], s.RemoveErr
}
