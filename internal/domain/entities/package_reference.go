package entities

import (
	"fmt"
	"strings"

	"golang.org/x/mod/semver"
)

// PackageReference identifies the release whose publication date is the
// travel target. UUID is optional and only used to disambiguate names.
type PackageReference struct {
	Name    string
	Version string
	UUID    string
}

// NewPackageReference builds a validated reference. A leading "v" on the
// version is accepted and stripped.
func NewPackageReference(name, version, uuid string) (PackageReference, error) {
	ref := PackageReference{
		Name:    strings.TrimSpace(name),
		Version: strings.TrimPrefix(strings.TrimSpace(version), "v"),
		UUID:    strings.ToLower(strings.TrimSpace(uuid)),
	}
	if err := ref.Validate(); err != nil {
		return PackageReference{}, err
	}
	return ref, nil
}

// Validate checks the name is set and the version is a semantic version.
func (r PackageReference) Validate() error {
	if r.Name == "" {
		return fmt.Errorf("%w: package name is required", ErrInvalidReference)
	}
	if strings.ContainsAny(r.Name, " \t\n") {
		return fmt.Errorf("%w: package name %q contains whitespace", ErrInvalidReference, r.Name)
	}
	if !semver.IsValid("v" + r.Version) {
		return fmt.Errorf("%w: %q is not a semantic version", ErrInvalidReference, r.Version)
	}
	return nil
}

func (r PackageReference) String() string {
	return fmt.Sprintf("%s v%s", r.Name, r.Version)
}
