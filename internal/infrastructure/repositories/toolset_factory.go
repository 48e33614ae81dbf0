package repositories

import (
	"fmt"
	"path/filepath"

	"github.com/rios0rios0/regtravel/internal/domain/entities"
	domainRepos "github.com/rios0rios0/regtravel/internal/domain/repositories"
	gitRepo "github.com/rios0rios0/regtravel/internal/infrastructure/repositories/git"
	tomlRepo "github.com/rios0rios0/regtravel/internal/infrastructure/repositories/tomlindex"
)

// GitToolsetFactory builds git-backed toolsets bound to a workspace.
type GitToolsetFactory struct {
	detectors  *DetectorRegistry
	findBinary func() (string, error)
}

// NewGitToolsetFactory creates a factory resolving detectors from the registry.
func NewGitToolsetFactory(detectors *DetectorRegistry) *GitToolsetFactory {
	return &GitToolsetFactory{detectors: detectors, findBinary: gitRepo.FindGitBinary}
}

var _ domainRepos.ToolsetFactory = (*GitToolsetFactory)(nil)

// New resolves the git binary and the configured detector, then binds the
// repositories to an absolute workspace root.
func (f *GitToolsetFactory) New(settings *entities.Settings) (*domainRepos.Toolset, error) {
	binary, err := f.findBinary()
	if err != nil {
		return nil, err
	}

	detector, err := f.detectors.Get(settings.Detector)
	if err != nil {
		return nil, err
	}

	root, err := filepath.Abs(settings.Root)
	if err != nil {
		return nil, fmt.Errorf("invalid root %q: %w", settings.Root, err)
	}
	workspace := settings.Workspace()
	workspace.Root = root

	return &domainRepos.Toolset{
		History:   gitRepo.NewHistoryRepository(binary, workspace, detector),
		Snapshots: gitRepo.NewSnapshotRepository(binary, workspace),
		Indexes:   tomlRepo.NewIndexRepository(),
	}, nil
}
