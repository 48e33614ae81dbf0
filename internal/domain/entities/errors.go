package entities

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidReference  = errors.New("invalid package reference")
	ErrInvalidRegistry   = errors.New("invalid registry")
	ErrDuplicateRegistry = errors.New("duplicate registry name")
	ErrUnknownDetector   = errors.New("unknown release detector")
)

// CloneError wraps any failed git transfer or git process.
type CloneError struct {
	Registry string
	Op       string // e.g. "clone history", "fetch", "log"
	Output   string
	Err      error
}

func (e *CloneError) Error() string {
	msg := fmt.Sprintf("registry %q: %s failed: %v", e.Registry, e.Op, e.Err)
	if out := strings.TrimSpace(e.Output); out != "" {
		msg += "\n" + out
	}
	return msg
}

func (e *CloneError) Unwrap() error { return e.Err }

// PackageNotFoundError means no searched registry holds a release event for
// the package version.
type PackageNotFoundError struct {
	Package    string
	Version    string
	Registries []string
}

func (e *PackageNotFoundError) Error() string {
	return fmt.Sprintf(
		"no release of %s v%s found in registries [%s]",
		e.Package, e.Version, strings.Join(e.Registries, ", "),
	)
}

// NoCommitBeforeDateError means the registry did not exist yet at Timestamp.
type NoCommitBeforeDateError struct {
	Registry  string
	Timestamp string
}

func (e *NoCommitBeforeDateError) Error() string {
	return fmt.Sprintf("registry %q has no commit at or before %s", e.Registry, e.Timestamp)
}
