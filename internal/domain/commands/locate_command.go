package commands

import (
	"context"

	"github.com/rios0rios0/regtravel/internal/domain/entities"
	"github.com/rios0rios0/regtravel/internal/domain/repositories"
)

// Locate is the interface for the locate command.
type Locate interface {
	Execute(ctx context.Context, settings *entities.Settings, opts LocateOptions) (*LocateResult, error)
}

// LocateOptions holds runtime options for a release lookup.
type LocateOptions struct {
	Reference entities.PackageReference
	Sources   []entities.RegistrySource // empty means the configured registries
}

// LocateResult names the registry and commit that published a release.
type LocateResult struct {
	Registry entities.RegistrySource
	Release  entities.CommitRecord
}

// LocateCommand finds when a release was published without materializing
// any snapshot.
type LocateCommand struct {
	factory repositories.ToolsetFactory
}

// NewLocateCommand creates a new LocateCommand.
func NewLocateCommand(factory repositories.ToolsetFactory) *LocateCommand {
	return &LocateCommand{factory: factory}
}

// Execute mirrors every registry's history and returns the release commit.
func (it *LocateCommand) Execute(
	ctx context.Context,
	settings *entities.Settings,
	opts LocateOptions,
) (*LocateResult, error) {
	if err := opts.Reference.Validate(); err != nil {
		return nil, err
	}

	sources, err := resolveSources(settings, opts.Sources)
	if err != nil {
		return nil, err
	}

	toolset, err := it.factory.New(settings)
	if err != nil {
		return nil, err
	}

	mirrors, err := ensureMirrors(ctx, toolset.History, sources)
	if err != nil {
		return nil, err
	}

	release, position, err := findRelease(ctx, toolset.History, mirrors, opts.Reference)
	if err != nil {
		return nil, err
	}

	return &LocateResult{Registry: sources[position], Release: *release}, nil
}
