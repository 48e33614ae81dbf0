package commands

import (
	"context"
	"errors"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/regtravel/internal/domain/entities"
	"github.com/rios0rios0/regtravel/internal/domain/repositories"
)

// resolveSources picks the explicit sources when given, otherwise the
// configured registries, and validates them.
func resolveSources(settings *entities.Settings, explicit []entities.RegistrySource) ([]entities.RegistrySource, error) {
	sources := explicit
	if len(sources) == 0 {
		sources = settings.Registries
	}
	if err := entities.ValidateSources(sources); err != nil {
		return nil, err
	}
	return sources, nil
}

// ensureMirrors makes sure every source has a history mirror, in order.
func ensureMirrors(
	ctx context.Context,
	history repositories.HistoryRepository,
	sources []entities.RegistrySource,
) ([]*entities.HistoryMirror, error) {
	mirrors := make([]*entities.HistoryMirror, 0, len(sources))
	for _, source := range sources {
		mirror, err := history.EnsureHistory(ctx, source)
		if err != nil {
			return nil, err
		}
		mirrors = append(mirrors, mirror)
	}
	return mirrors, nil
}

// findRelease searches the mirrors in order. A registry without the release
// is skipped; any other failure aborts. The returned int is the position of
// the registry holding the release.
func findRelease(
	ctx context.Context,
	history repositories.HistoryRepository,
	mirrors []*entities.HistoryMirror,
	ref entities.PackageReference,
) (*entities.CommitRecord, int, error) {
	searched := make([]string, 0, len(mirrors))

	for i, mirror := range mirrors {
		searched = append(searched, mirror.Source.Name)

		release, err := history.LocateRelease(ctx, mirror, ref)
		if err == nil {
			return release, i, nil
		}

		var notFound *entities.PackageNotFoundError
		if !errors.As(err, &notFound) {
			return nil, -1, err
		}
		logger.Debugf("%s not found in %q", ref, mirror.Source.Name)
	}

	return nil, -1, &entities.PackageNotFoundError{
		Package:    ref.Name,
		Version:    ref.Version,
		Registries: searched,
	}
}
