//go:build unit

package controllers_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/regtravel/internal/infrastructure/controllers"
	"github.com/rios0rios0/regtravel/test/domain/commanddoubles"
)

func TestCleanControllerExecute(t *testing.T) {
	t.Parallel()

	t.Run("should pass registry names and print removed directories", func(t *testing.T) {
		t.Parallel()

		// given
		stub := &commanddoubles.StubCleanCommand{Removed: []string{"/c/Extra.history", "/c/Extra"}}
		ctrl := controllers.NewCleanController(stub)

		// when
		out, err := runController(t, ctrl, "Extra", "--config", writeConfig(t))

		// then
		require.NoError(t, err)
		assert.Equal(t, []string{"Extra"}, stub.LastOpts.Names)
		assert.Equal(t, "/c/Extra.history\n/c/Extra\n", out)
	})

	t.Run("should print what was removed before failing", func(t *testing.T) {
		t.Parallel()

		// given
		stub := &commanddoubles.StubCleanCommand{
			Removed:    []string{"/c/Main.history"},
			ExecuteErr: errors.New("permission denied"),
		}
		ctrl := controllers.NewCleanController(stub)

		// when
		out, err := runController(t, ctrl, "--config", writeConfig(t))

		// then
		require.Error(t, err)
		assert.Contains(t, err.Error(), "clean failed")
		assert.Equal(t, "/c/Main.history\n", out)
	})
}
