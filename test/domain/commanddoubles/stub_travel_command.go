//go:build integration || unit || test

package commanddoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/regtravel/internal/domain/commands"
	"github.com/rios0rios0/regtravel/internal/domain/entities"
)

// StubTravelCommand is a stub implementation of commands.Travel.
type StubTravelCommand struct {
	ExecuteCallCount int
	ExecuteErr       error
	Result           *commands.TravelResult
	LastSettings     *entities.Settings
	LastOpts         commands.TravelOptions
}

var _ commands.Travel = (*StubTravelCommand)(nil)

func (s *StubTravelCommand) Execute(
	_ context.Context,
	settings *entities.Settings,
	opts commands.TravelOptions,
) (*commands.TravelResult, error) {
	s.ExecuteCallCount++
	s.LastSettings = settings
	s.LastOpts = opts
	return s.Result, s.ExecuteErr
}
