package repositories

import (
	domainRepos "github.com/rios0rios0/regtravel/internal/domain/repositories"
	"github.com/rios0rios0/regtravel/internal/infrastructure/repositories/registrator"
	"go.uber.org/dig"
)

// RegisterProviders registers all repository providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	// Register detector registry with all release conventions
	if err := container.Provide(func() *DetectorRegistry {
		reg := NewDetectorRegistry()
		reg.Register(registrator.NewDetector())
		return reg
	}); err != nil {
		return err
	}

	if err := container.Provide(NewGitToolsetFactory); err != nil {
		return err
	}

	// Bind interfaces to implementations
	if err := container.Provide(func(impl *GitToolsetFactory) domainRepos.ToolsetFactory {
		return impl
	}); err != nil {
		return err
	}

	return nil
}
