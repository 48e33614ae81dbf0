package repositories

import "github.com/rios0rios0/regtravel/internal/domain/entities"

// ReleaseDetector recognizes release events in commit messages. Registries
// with different tooling conventions plug in their own detector without the
// resolution algorithm changing.
type ReleaseDetector interface {
	// Name returns the detector identifier used in configuration.
	Name() string

	// Patterns returns the literal message lines to search for, in the order
	// they should be tried.
	Patterns(ref entities.PackageReference) []string

	// Match extracts the package name and version a message publishes.
	Match(message string) (name, version string, ok bool)
}
