package commands

import (
	"context"
	"fmt"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/regtravel/internal/domain/entities"
	"github.com/rios0rios0/regtravel/internal/domain/repositories"
)

// Travel is the interface for the travel command.
type Travel interface {
	Execute(ctx context.Context, settings *entities.Settings, opts TravelOptions) (*TravelResult, error)
}

// TravelOptions holds runtime options for one resolution run.
type TravelOptions struct {
	Reference entities.PackageReference
	Sources   []entities.RegistrySource // empty means the configured registries
}

// ResolvedRegistry is one registry as it stood at the release date.
type ResolvedRegistry struct {
	Source   entities.RegistrySource
	Commit   entities.CommitRecord
	Snapshot entities.RegistrySnapshot
	Index    *entities.RegistryIndex
}

// TravelResult is the outcome of a resolution run, in source order.
type TravelResult struct {
	Reference       entities.PackageReference
	Release         entities.CommitRecord
	ReleaseRegistry string
	Registries      []ResolvedRegistry
	// Package is what the releasing registry records about the package, or
	// nil when its snapshot cannot name a single package.
	Package *entities.PackageDetails
}

// Indexes returns the loaded registry indexes in source order, ready to be
// substituted for the live registries.
func (r *TravelResult) Indexes() []*entities.RegistryIndex {
	indexes := make([]*entities.RegistryIndex, 0, len(r.Registries))
	for _, registry := range r.Registries {
		indexes = append(indexes, registry.Index)
	}
	return indexes
}

// TravelCommand rebuilds every registry as it was when a release was
// published: mirror histories -> locate the release -> pin every registry
// to that date -> materialize -> load.
type TravelCommand struct {
	factory repositories.ToolsetFactory
}

// NewTravelCommand creates a new TravelCommand.
func NewTravelCommand(factory repositories.ToolsetFactory) *TravelCommand {
	return &TravelCommand{factory: factory}
}

// Execute runs the pipeline strictly in order, one registry at a time. The
// first failure aborts the whole run.
func (it *TravelCommand) Execute(
	ctx context.Context,
	settings *entities.Settings,
	opts TravelOptions,
) (*TravelResult, error) {
	ref := opts.Reference
	if err := ref.Validate(); err != nil {
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

	logger.Infof("Travelling to the release of %s across %d registries", ref, len(sources))

	mirrors, err := ensureMirrors(ctx, toolset.History, sources)
	if err != nil {
		return nil, err
	}

	release, position, err := findRelease(ctx, toolset.History, mirrors, ref)
	if err != nil {
		return nil, err
	}
	logger.Infof("%s was published in %q at %s", ref, sources[position].Name, release.Raw)

	// All pins are resolved before any snapshot is cloned, so a registry that
	// did not exist yet aborts the run without touching the others.
	pins := make([]entities.CommitRecord, 0, len(mirrors))
	for _, mirror := range mirrors {
		pin, pinErr := toolset.History.ResolveBeforeOrAt(ctx, mirror, *release)
		if pinErr != nil {
			return nil, pinErr
		}
		pins = append(pins, *pin)
	}

	snapshots := make([]entities.RegistrySnapshot, 0, len(sources))
	for i, source := range sources {
		snapshot, snapErr := toolset.Snapshots.Materialize(ctx, source, pins[i])
		if snapErr != nil {
			return nil, snapErr
		}
		snapshots = append(snapshots, *snapshot)
	}

	indexes, err := toolset.Indexes.Load(ctx, snapshots)
	if err != nil {
		return nil, err
	}
	if len(indexes) != len(snapshots) {
		return nil, fmt.Errorf("loaded %d indexes for %d snapshots", len(indexes), len(snapshots))
	}

	if ref.UUID != "" && !indexes[position].Contains(ref.Name, ref.UUID) {
		return nil, &entities.PackageNotFoundError{
			Package:    ref.Name + " [" + ref.UUID + "]",
			Version:    ref.Version,
			Registries: []string{sources[position].Name},
		}
	}

	details, err := releasedPackage(ctx, toolset.Indexes, indexes[position], ref)
	if err != nil {
		return nil, err
	}

	result := &TravelResult{
		Reference:       ref,
		Release:         *release,
		ReleaseRegistry: sources[position].Name,
		Registries:      make([]ResolvedRegistry, 0, len(sources)),
		Package:         details,
	}
	for i, source := range sources {
		result.Registries = append(result.Registries, ResolvedRegistry{
			Source:   source,
			Commit:   pins[i],
			Snapshot: snapshots[i],
			Index:    indexes[i],
		})
	}

	return result, nil
}

// releasedPackage reads the package files of the released package from the
// releasing registry's snapshot and checks the version is recorded there.
func releasedPackage(
	ctx context.Context,
	loader repositories.IndexRepository,
	index *entities.RegistryIndex,
	ref entities.PackageReference,
) (*entities.PackageDetails, error) {
	var entry entities.PackageEntry
	if ref.UUID != "" {
		entry, _ = index.LookupUUID(ref.UUID)
	} else {
		entries := index.Lookup(ref.Name)
		switch len(entries) {
		case 0:
			logger.Warnf("%q does not list %s in its package table", index.Name, ref.Name)
			return nil, nil
		case 1:
			entry = entries[0]
		default:
			logger.Warnf("%q lists %d packages named %s; pass --uuid to pick one", index.Name, len(entries), ref.Name)
			return nil, nil
		}
	}

	details, err := loader.Details(ctx, index, entry)
	if err != nil {
		return nil, fmt.Errorf("registry %q: %w", index.Name, err)
	}
	if details == nil {
		return nil, nil
	}

	if _, ok := details.Version(ref.Version); !ok {
		logger.Warnf("Snapshot of %q does not record %s", index.Name, ref)
	}
	return details, nil
}
