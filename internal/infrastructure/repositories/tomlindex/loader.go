package tomlindex

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	logger "github.com/sirupsen/logrus"
	"golang.org/x/mod/semver"

	"github.com/rios0rios0/regtravel/internal/domain/entities"
	"github.com/rios0rios0/regtravel/internal/domain/repositories"
)

const (
	registryFile = "Registry.toml"
	packageFile  = "Package.toml"
	versionsFile = "Versions.toml"
	depsFile     = "Deps.toml"
	compatFile   = "Compat.toml"
)

// registryToml mirrors Registry.toml at the root of a snapshot.
type registryToml struct {
	Name        string                      `toml:"name"`
	UUID        string                      `toml:"uuid"`
	Repo        string                      `toml:"repo"`
	Description string                      `toml:"description"`
	Packages    map[string]packageEntryToml `toml:"packages"`
}

type packageEntryToml struct {
	Name string `toml:"name"`
	Path string `toml:"path"`
}

type packageToml struct {
	Name   string `toml:"name"`
	UUID   string `toml:"uuid"`
	Repo   string `toml:"repo"`
	Subdir string `toml:"subdir"`
}

type versionToml struct {
	GitTreeSHA1 string `toml:"git-tree-sha1"`
	Yanked      bool   `toml:"yanked"`
}

// IndexRepository implements repositories.IndexRepository for registries laid
// out as Registry.toml plus one directory of TOML files per package.
type IndexRepository struct{}

// NewIndexRepository creates a TOML index loader.
func NewIndexRepository() *IndexRepository {
	return &IndexRepository{}
}

var _ repositories.IndexRepository = (*IndexRepository)(nil)

// Load reads the package table of every snapshot, in order.
func (it *IndexRepository) Load(
	ctx context.Context,
	snapshots []entities.RegistrySnapshot,
) ([]*entities.RegistryIndex, error) {
	indexes := make([]*entities.RegistryIndex, 0, len(snapshots))

	for _, snapshot := range snapshots {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		index, err := loadIndex(snapshot)
		if err != nil {
			return nil, fmt.Errorf("registry %q: %w", snapshot.Source.Name, err)
		}

		logger.Infof("[toml] Loaded %q: %d packages", index.Name, index.PackageCount())
		indexes = append(indexes, index)
	}

	return indexes, nil
}

func loadIndex(snapshot entities.RegistrySnapshot) (*entities.RegistryIndex, error) {
	var raw registryToml
	if err := decodeFile(filepath.Join(snapshot.Dir, registryFile), &raw); err != nil {
		return nil, err
	}

	packages := make(map[string]entities.PackageEntry, len(raw.Packages))
	for uuid, entry := range raw.Packages {
		packages[uuid] = entities.PackageEntry{UUID: uuid, Name: entry.Name, Path: entry.Path}
	}

	name := raw.Name
	if name == "" {
		name = snapshot.Source.Name
	}

	return &entities.RegistryIndex{
		Name:        name,
		UUID:        raw.UUID,
		Repo:        raw.Repo,
		Description: strings.TrimSpace(raw.Description),
		Snapshot:    snapshot,
		Packages:    packages,
	}, nil
}

// Details reads the per-package files of entry. Missing Deps.toml or
// Compat.toml means the package declares none.
func (it *IndexRepository) Details(
	_ context.Context,
	index *entities.RegistryIndex,
	entry entities.PackageEntry,
) (*entities.PackageDetails, error) {
	dir := filepath.Join(index.Snapshot.Dir, filepath.FromSlash(entry.Path))

	var pkg packageToml
	if err := decodeFile(filepath.Join(dir, packageFile), &pkg); err != nil {
		return nil, err
	}

	var versions map[string]versionToml
	if err := decodeFile(filepath.Join(dir, versionsFile), &versions); err != nil {
		return nil, err
	}

	deps, err := readRangeTable(filepath.Join(dir, depsFile))
	if err != nil {
		return nil, err
	}

	compat, err := readRangeTable(filepath.Join(dir, compatFile))
	if err != nil {
		return nil, err
	}

	return &entities.PackageDetails{
		Entry:    entry,
		Repo:     pkg.Repo,
		Subdir:   pkg.Subdir,
		Versions: sortVersions(versions),
		Deps:     deps,
		Compat:   compat,
	}, nil
}

// sortVersions orders versions newest first by semantic version.
func sortVersions(raw map[string]versionToml) []entities.PackageVersion {
	versions := make([]entities.PackageVersion, 0, len(raw))
	for number, v := range raw {
		versions = append(versions, entities.PackageVersion{
			Number:   number,
			TreeSHA1: v.GitTreeSHA1,
			Yanked:   v.Yanked,
		})
	}

	sort.Slice(versions, func(i, j int) bool {
		cmp := semver.Compare("v"+versions[i].Number, "v"+versions[j].Number)
		if cmp == 0 {
			return versions[i].Number > versions[j].Number
		}
		return cmp > 0
	})
	return versions
}

// readRangeTable reads a version-range keyed table. Values are either a
// string or a list of strings; lists are joined with ", ".
func readRangeTable(path string) (map[string]map[string]string, error) {
	var raw map[string]map[string]any
	if err := decodeFile(path, &raw); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return map[string]map[string]string{}, nil
		}
		return nil, err
	}

	table := make(map[string]map[string]string, len(raw))
	for versionRange, entries := range raw {
		row := make(map[string]string, len(entries))
		for name, value := range entries {
			row[name] = stringify(value)
		}
		table[versionRange] = row
	}
	return table, nil
}

func stringify(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case []any:
		parts := make([]string, 0, len(v))
		for _, part := range v {
			parts = append(parts, fmt.Sprint(part))
		}
		return strings.Join(parts, ", ")
	default:
		return fmt.Sprint(v)
	}
}

func decodeFile(path string, target any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}
	if _, err := toml.Decode(string(data), target); err != nil {
		return fmt.Errorf("parsing %s: %w", path, err)
	}
	return nil
}
