package registrator

import (
	"strings"

	"github.com/rios0rios0/regtravel/internal/domain/entities"
	"github.com/rios0rios0/regtravel/internal/domain/repositories"
)

const (
	detectorName = "registrator"

	// Registrator commits a version bump as "New version: <name> v<version>"
	// and the first registration of a package as "New package: ...".
	newVersionPrefix = "New version: "
	newPackagePrefix = "New package: "
)

// Detector recognizes the structured commit subjects written by Registrator.
type Detector struct{}

// NewDetector creates a Registrator release detector.
func NewDetector() repositories.ReleaseDetector {
	return &Detector{}
}

func (d *Detector) Name() string { return detectorName }

// Patterns returns the version-bump subject first, then the new-package one.
func (d *Detector) Patterns(ref entities.PackageReference) []string {
	suffix := ref.Name + " v" + ref.Version
	return []string{
		newVersionPrefix + suffix,
		newPackagePrefix + suffix,
	}
}

// Match looks for a release line anywhere in message. Text after the
// version, such as a squash-merge "(#1234)" suffix, is ignored.
func (d *Detector) Match(message string) (string, string, bool) {
	for _, line := range strings.Split(message, "\n") {
		line = strings.TrimSpace(line)

		rest, found := strings.CutPrefix(line, newVersionPrefix)
		if !found {
			rest, found = strings.CutPrefix(line, newPackagePrefix)
		}
		if !found {
			continue
		}

		fields := strings.Fields(rest)
		if len(fields) < 2 || !strings.HasPrefix(fields[1], "v") || len(fields[1]) == 1 {
			continue
		}
		return fields[0], strings.TrimPrefix(fields[1], "v"), true
	}
	return "", "", false
}
