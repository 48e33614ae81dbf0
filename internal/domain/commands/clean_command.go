package commands

import (
	"context"
	"fmt"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/regtravel/internal/domain/entities"
	"github.com/rios0rios0/regtravel/internal/domain/repositories"
)

// Clean is the interface for the clean command.
type Clean interface {
	Execute(ctx context.Context, settings *entities.Settings, opts CleanOptions) ([]string, error)
}

// CleanOptions selects which registries to wipe.
type CleanOptions struct {
	Names   []string // empty means every configured registry
	Sources []entities.RegistrySource
}

// CleanCommand deletes mirrors and snapshots. Nothing else ever removes them,
// so this is the way out of a partially failed clone.
type CleanCommand struct {
	factory repositories.ToolsetFactory
}

// NewCleanCommand creates a new CleanCommand.
func NewCleanCommand(factory repositories.ToolsetFactory) *CleanCommand {
	return &CleanCommand{factory: factory}
}

// Execute removes the selected registries' directories and returns them.
func (it *CleanCommand) Execute(
	ctx context.Context,
	settings *entities.Settings,
	opts CleanOptions,
) ([]string, error) {
	sources, err := resolveSources(settings, opts.Sources)
	if err != nil {
		return nil, err
	}

	selected, err := selectSources(sources, opts.Names)
	if err != nil {
		return nil, err
	}

	toolset, err := it.factory.New(settings)
	if err != nil {
		return nil, err
	}

	var removed []string
	for _, source := range selected {
		mirrorDirs, historyErr := toolset.History.Remove(ctx, source)
		removed = append(removed, mirrorDirs...)
		if historyErr != nil {
			return removed, historyErr
		}

		snapshotDirs, snapshotErr := toolset.Snapshots.Remove(ctx, source)
		removed = append(removed, snapshotDirs...)
		if snapshotErr != nil {
			return removed, snapshotErr
		}

		logger.Infof("Cleaned %q (%d directories)", source.Name, len(mirrorDirs)+len(snapshotDirs))
	}

	return removed, nil
}

// selectSources keeps the sources named in names, in source order.
func selectSources(sources []entities.RegistrySource, names []string) ([]entities.RegistrySource, error) {
	if len(names) == 0 {
		return sources, nil
	}

	byName := make(map[string]entities.RegistrySource, len(sources))
	for _, source := range sources {
		byName[source.Name] = source
	}

	wanted := make(map[string]bool, len(names))
	for _, name := range names {
		if _, ok := byName[name]; !ok {
			return nil, fmt.Errorf("%w: %q is not configured", entities.ErrInvalidRegistry, name)
		}
		wanted[name] = true
	}

	selected := make([]entities.RegistrySource, 0, len(names))
	for _, source := range sources {
		if wanted[source.Name] {
			selected = append(selected, source)
		}
	}
	return selected, nil
}
