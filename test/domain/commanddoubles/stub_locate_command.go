//go:build integration || unit || test

package commanddoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/regtravel/internal/domain/commands"
	"github.com/rios0rios0/regtravel/internal/domain/entities"
)

// StubLocateCommand is a stub implementation of commands.Locate.
type StubLocateCommand struct {
	ExecuteCallCount int
	ExecuteErr       error
	Result           *commands.LocateResult
	LastSettings     *entities.Settings
	LastOpts         commands.LocateOptions
}

var _ commands.Locate = (*StubLocateCommand)(nil)

func (s *StubLocateCommand) Execute(
	_ context.Context,
	settings *entities.Settings,
	opts commands.LocateOptions,
) (*commands.LocateResult, error) {
	s.ExecuteCallCount++
	s.LastSettings = settings
	s.LastOpts = opts
	return s.Result, s.ExecuteErr
}
