//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"github.com/rios0rios0/regtravel/internal/domain/entities"
	"github.com/rios0rios0/regtravel/internal/domain/repositories"
)

// StubToolsetFactory hands out a fixed toolset.
type StubToolsetFactory struct {
	Toolset *repositories.Toolset
	NewErr  error
	// spy: settings received
	Settings []*entities.Settings
}

var _ repositories.ToolsetFactory = (*StubToolsetFactory)(nil)

func (f *StubToolsetFactory) New(settings *entities.Settings) (*repositories.Toolset, error) {
	f.Settings = append(f.Settings, settings)
	if f.NewErr != nil {
		return nil, f.NewErr
	}
	return f.Toolset, nil
}
