package entities

import "sort"

// PackageEntry is one line of a registry's package table.
type PackageEntry struct {
	UUID string
	Name string
	Path string // directory relative to the snapshot root, e.g. "J/JSON"
}

// PackageVersion is one released version of a package.
type PackageVersion struct {
	Number   string
	TreeSHA1 string
	Yanked   bool
}

// PackageDetails is everything a registry records about one package.
// Deps and Compat are keyed by version range, then by dependency name.
type PackageDetails struct {
	Entry    PackageEntry
	Repo     string
	Subdir   string
	Versions []PackageVersion // newest first
	Deps     map[string]map[string]string
	Compat   map[string]map[string]string
}

// RegistryIndex is a snapshot loaded into memory, ready to stand in for a
// live registry.
type RegistryIndex struct {
	Name        string
	UUID        string
	Repo        string
	Description string
	Snapshot    RegistrySnapshot
	Packages    map[string]PackageEntry // keyed by package UUID
}

// PackageCount returns how many packages the registry lists.
func (r *RegistryIndex) PackageCount() int {
	return len(r.Packages)
}

// Lookup returns every entry registered under name, ordered by UUID.
// Registries may hold several packages with the same name.
func (r *RegistryIndex) Lookup(name string) []PackageEntry {
	var matches []PackageEntry
	for _, entry := range r.Packages {
		if entry.Name == name {
			matches = append(matches, entry)
		}
	}
	sort.Slice(matches, func(i, j int) bool {
		return matches[i].UUID < matches[j].UUID
	})
	return matches
}

// LookupUUID returns the entry with the given UUID.
func (r *RegistryIndex) LookupUUID(uuid string) (PackageEntry, bool) {
	entry, ok := r.Packages[uuid]
	return entry, ok
}

// Contains reports whether the registry lists name, restricted to uuid
// when it is not empty.
func (r *RegistryIndex) Contains(name, uuid string) bool {
	if uuid == "" {
		return len(r.Lookup(name)) > 0
	}
	entry, ok := r.LookupUUID(uuid)
	return ok && entry.Name == name
}

// Version returns the recorded version, if present.
func (d *PackageDetails) Version(number string) (PackageVersion, bool) {
	for _, v := range d.Versions {
		if v.Number == number {
			return v, true
		}
	}
	return PackageVersion{}, false
}
