//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/regtravel/internal/domain/commands"
	"github.com/rios0rios0/regtravel/internal/domain/entities"
)

func TestCleanCommandExecute(t *testing.T) {
	t.Parallel()

	t.Run("should remove mirrors and snapshots of every registry", func(t *testing.T) {
		t.Parallel()

		// given
		fx := newTravelFixture()
		fx.history.Removed = map[string][]string{"Main": {"/c/Main.history"}, "Extra": {"/c/Extra.history"}}
		fx.snapshots.Removed = map[string][]string{"Main": {"/c/Main"}, "Extra": {"/c/Extra@0123456789ab"}}
		cmd := commands.NewCleanCommand(fx.factory)

		// when
		removed, err := cmd.Execute(context.Background(), fx.settings, commands.CleanOptions{})

		// then
		require.NoError(t, err)
		assert.Equal(t, []string{
			"/c/Main.history", "/c/Main", "/c/Extra.history", "/c/Extra@0123456789ab",
		}, removed)
	})

	t.Run("should only remove the named registries", func(t *testing.T) {
		t.Parallel()

		// given
		fx := newTravelFixture()
		fx.history.Removed = map[string][]string{"Main": {"/c/Main.history"}, "Extra": {"/c/Extra.history"}}
		cmd := commands.NewCleanCommand(fx.factory)

		// when
		removed, err := cmd.Execute(context.Background(), fx.settings, commands.CleanOptions{Names: []string{"Extra"}})

		// then
		require.NoError(t, err)
		assert.Equal(t, []string{"/c/Extra.history"}, removed)
	})

	t.Run("should reject an unknown registry name", func(t *testing.T) {
		t.Parallel()

		// given
		fx := newTravelFixture()
		cmd := commands.NewCleanCommand(fx.factory)

		// when
		_, err := cmd.Execute(context.Background(), fx.settings, commands.CleanOptions{Names: []string{"Nope"}})

		// then
		require.ErrorIs(t, err, entities.ErrInvalidRegistry)
		assert.Empty(t, fx.factory.Settings)
	})

	t.Run("should stop at the first removal failure", func(t *testing.T) {
		t.Parallel()

		// given
		fx := newTravelFixture()
		fx.history.RemoveErr = errors.New("permission denied")
		cmd := commands.NewCleanCommand(fx.factory)

		// when
		_, err := cmd.Execute(context.Background(), fx.settings, commands.CleanOptions{})

		// then
		require.ErrorIs(t, err, fx.history.RemoveErr)
	})
}

func TestSelectSources(t *testing.T) {
	t.Parallel()

	sources := []entities.RegistrySource{
		{Name: "General", URL: "g"},
		{Name: "Main", URL: "m"},
		{Name: "Extra", URL: "e"},
	}

	t.Run("should keep source order regardless of name order", func(t *testing.T) {
		t.Parallel()

		// when
		selected, err := commands.SelectSources(sources, []string{"Extra", "General"})

		// then
		require.NoError(t, err)
		assert.Equal(t, []string{"General", "Extra"}, entities.SourceNames(selected))
	})

	t.Run("should return every source when no names are given", func(t *testing.T) {
		t.Parallel()

		// when
		selected, err := commands.SelectSources(sources, nil)

		// then
		require.NoError(t, err)
		assert.Len(t, selected, 3)
	})
}
