//go:build unit

package entities_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/regtravel/internal/domain/entities"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "regtravel.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

//nolint:tparallel // some subtests use t.Setenv which is incompatible with t.Parallel on parent
func TestNewSettings(t *testing.T) {
	t.Run("should parse every field", func(t *testing.T) {
		// NOTE: cannot use t.Parallel() with t.Setenv()

		// given
		t.Setenv("REGTRAVEL_ROOT", "")
		path := writeConfig(t, `
root: /var/cache/regtravel
detector: registrator
snapshot_layout: commit
registries:
  - name: Main
    url: https://example.com/main.git
  - name: Extra
    url: https://example.com/extra.git
`)

		// when
		settings, err := entities.NewSettings(path)

		// then
		require.NoError(t, err)
		assert.Equal(t, "/var/cache/regtravel", settings.Root)
		assert.Equal(t, entities.LayoutCommit, settings.SnapshotLayout)
		assert.Equal(t, []string{"Main", "Extra"}, entities.SourceNames(settings.Registries))
	})

	t.Run("should expand environment variables", func(t *testing.T) {
		// NOTE: cannot use t.Parallel() with t.Setenv()

		// given
		t.Setenv("REGTRAVEL_ROOT", "")
		t.Setenv("TEST_REGISTRY_HOST", "git.example.com")
		t.Setenv("TEST_CACHE_ROOT", "/srv/cache")
		path := writeConfig(t, `
root: ${TEST_CACHE_ROOT}/regtravel
registries:
  - name: Main
    url: https://${TEST_REGISTRY_HOST}/main.git
`)

		// when
		settings, err := entities.NewSettings(path)

		// then
		require.NoError(t, err)
		assert.Equal(t, "/srv/cache/regtravel", settings.Root)
		assert.Equal(t, "https://git.example.com/main.git", settings.Registries[0].URL)
	})

	t.Run("should fill defaults for omitted fields", func(t *testing.T) {
		// NOTE: cannot use t.Parallel() with t.Setenv()

		// given
		t.Setenv("REGTRAVEL_ROOT", "/tmp/override")
		path := writeConfig(t, "{}\n")

		// when
		settings, err := entities.NewSettings(path)

		// then
		require.NoError(t, err)
		assert.Equal(t, "/tmp/override", settings.Root)
		assert.Equal(t, entities.DefaultDetector, settings.Detector)
		assert.Equal(t, entities.LayoutRegistry, settings.SnapshotLayout)
		require.Len(t, settings.Registries, 1)
		assert.Equal(t, entities.DefaultRegistryName, settings.Registries[0].Name)
		assert.Equal(t, entities.DefaultRegistryURL, settings.Registries[0].URL)
	})

	t.Run("should reject an unknown snapshot layout", func(t *testing.T) {
		// NOTE: cannot use t.Parallel() with t.Setenv()

		// given
		t.Setenv("REGTRAVEL_ROOT", "/tmp/override")
		path := writeConfig(t, "snapshot_layout: daily\n")

		// when
		_, err := entities.NewSettings(path)

		// then
		require.Error(t, err)
		assert.Contains(t, err.Error(), "snapshot_layout")
	})

	t.Run("should reject duplicate registry names", func(t *testing.T) {
		// NOTE: cannot use t.Parallel() with t.Setenv()

		// given
		t.Setenv("REGTRAVEL_ROOT", "/tmp/override")
		path := writeConfig(t, `
registries:
  - {name: Main, url: a}
  - {name: Main, url: b}
`)

		// when
		_, err := entities.NewSettings(path)

		// then
		require.ErrorIs(t, err, entities.ErrDuplicateRegistry)
	})

	t.Run("should fail on malformed yaml", func(t *testing.T) {
		// NOTE: cannot use t.Parallel() with t.Setenv()

		// given
		path := writeConfig(t, "registries: [\n")

		// when
		_, err := entities.NewSettings(path)

		// then
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to parse config file")
	})

	t.Run("should fail on a missing file", func(t *testing.T) {
		t.Parallel()

		// when
		_, err := entities.NewSettings(filepath.Join(t.TempDir(), "missing.yaml"))

		// then
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to read config file")
	})
}

//nolint:paralleltest // uses t.Setenv
func TestDefaultSettings(t *testing.T) {
	t.Run("should default the root to the user cache directory", func(t *testing.T) {
		// given
		t.Setenv("REGTRAVEL_ROOT", "")

		// when
		settings, err := entities.DefaultSettings()

		// then
		require.NoError(t, err)
		assert.Equal(t, "regtravel", filepath.Base(settings.Root))
		assert.NoError(t, settings.Validate())
	})
}
