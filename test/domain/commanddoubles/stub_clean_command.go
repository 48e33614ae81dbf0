//go:build integration || unit || test

package commanddoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/regtravel/internal/domain/commands"
	"github.com/rios0rios0/regtravel/internal/domain/entities"
)

// StubCleanCommand is a stub implementation of commands.Clean.
type StubCleanCommand struct {
	ExecuteCallCount int
	ExecuteErr       error
	Removed          []string
	LastSettings     *entities.Settings
	LastOpts         commands.CleanOptions
}

var _ commands.Clean = (*StubCleanCommand)(nil)

func (s *StubCleanCommand) Execute(
	_ context.Context,
	settings *entities.Settings,
	opts commands.CleanOptions,
) ([]string, error) {
	s.ExecuteCallCount++
	s.LastSettings = settings
	s.LastOpts = opts
	return s.Removed, s.ExecuteErr
}
