package entities

import (
	"fmt"
	"strings"
)

// RegistrySource names a registry and the remote its history is cloned from.
type RegistrySource struct {
	Name string `yaml:"name"`
	URL  string `yaml:"url"`
}

func (s RegistrySource) String() string {
	return fmt.Sprintf("%s (%s)", s.Name, s.URL)
}

// ParseRegistrySource parses the "name=url" form used on the command line.
func ParseRegistrySource(raw string) (RegistrySource, error) {
	name, url, ok := strings.Cut(raw, "=")
	name = strings.TrimSpace(name)
	url = strings.TrimSpace(url)
	if !ok || name == "" || url == "" {
		return RegistrySource{}, fmt.Errorf("invalid registry %q: expected name=url", raw)
	}
	return RegistrySource{Name: name, URL: url}, nil
}

// ValidateSources rejects empty lists, blank fields and duplicate names.
func ValidateSources(sources []RegistrySource) error {
	if len(sources) == 0 {
		return fmt.Errorf("%w: no registries supplied", ErrInvalidRegistry)
	}

	seen := make(map[string]bool, len(sources))
	for i, source := range sources {
		if source.Name == "" {
			return fmt.Errorf("%w: registries[%d].name is required", ErrInvalidRegistry, i)
		}
		if source.URL == "" {
			return fmt.Errorf("%w: registries[%d].url is required", ErrInvalidRegistry, i)
		}
		if !validDirName(source.Name) {
			return fmt.Errorf("%w: registry name %q is not a valid directory name", ErrInvalidRegistry, source.Name)
		}
		if seen[source.Name] {
			return fmt.Errorf("%w: %q", ErrDuplicateRegistry, source.Name)
		}
		seen[source.Name] = true
	}
	return nil
}

// validDirName rejects names that escape the root, collide with another
// registry's mirror or commit-keyed snapshot, or act as glob patterns.
func validDirName(name string) bool {
	switch {
	case strings.HasPrefix(name, "."):
		return false
	case strings.HasSuffix(name, historySuffix):
		return false
	case strings.ContainsAny(name, `/\@*?[`):
		return false
	}
	return true
}

// SourceNames returns the registry names in order.
func SourceNames(sources []RegistrySource) []string {
	names := make([]string, 0, len(sources))
	for _, source := range sources {
		names = append(names, source.Name)
	}
	return names
}
