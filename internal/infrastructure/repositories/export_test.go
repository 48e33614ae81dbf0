package repositories

import domainRepos "github.com/rios0rios0/regtravel/internal/domain/repositories"

// NewGitToolsetFactoryWithBinary builds a factory with a fixed git lookup.
func NewGitToolsetFactoryWithBinary(
	detectors *DetectorRegistry,
	findBinary func() (string, error),
) domainRepos.ToolsetFactory {
	return &GitToolsetFactory{detectors: detectors, findBinary: findBinary}
}
