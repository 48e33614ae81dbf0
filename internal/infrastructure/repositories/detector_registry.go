package repositories

import (
	"fmt"
	"sort"

	"github.com/rios0rios0/regtravel/internal/domain/entities"
	domainRepos "github.com/rios0rios0/regtravel/internal/domain/repositories"
)

// DetectorRegistry manages all registered release detector implementations.
type DetectorRegistry struct {
	detectors map[string]domainRepos.ReleaseDetector
}

// NewDetectorRegistry creates an empty detector registry.
func NewDetectorRegistry() *DetectorRegistry {
	return &DetectorRegistry{
		detectors: make(map[string]domainRepos.ReleaseDetector),
	}
}

// Register adds a detector under its name.
func (r *DetectorRegistry) Register(d domainRepos.ReleaseDetector) {
	r.detectors[d.Name()] = d
}

// Get returns the detector with the given name.
func (r *DetectorRegistry) Get(name string) (domainRepos.ReleaseDetector, error) {
	detector, ok := r.detectors[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q (available: %v)", entities.ErrUnknownDetector, name, r.Names())
	}
	return detector, nil
}

// Names returns the sorted list of registered detector names.
func (r *DetectorRegistry) Names() []string {
	names := make([]string, 0, len(r.detectors))
	for name := range r.detectors {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
