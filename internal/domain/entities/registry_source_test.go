//go:build unit

package entities_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/regtravel/internal/domain/entities"
)

func TestParseRegistrySource(t *testing.T) {
	t.Parallel()

	t.Run("should split name and url on the first equals sign", func(t *testing.T) {
		t.Parallel()

		// given
		raw := "Extra=https://example.com/extra.git?ref=a=b"

		// when
		source, err := entities.ParseRegistrySource(raw)

		// then
		require.NoError(t, err)
		assert.Equal(t, "Extra", source.Name)
		assert.Equal(t, "https://example.com/extra.git?ref=a=b", source.URL)
	})

	t.Run("should fail without a url", func(t *testing.T) {
		t.Parallel()

		// when
		_, err := entities.ParseRegistrySource("Extra")

		// then
		require.Error(t, err)
		assert.Contains(t, err.Error(), "name=url")
	})
}

func TestValidateSources(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		sources []entities.RegistrySource
		wantErr error
	}{
		{
			name:    "should fail on an empty list",
			sources: nil,
			wantErr: entities.ErrInvalidRegistry,
		},
		{
			name:    "should fail on a missing url",
			sources: []entities.RegistrySource{{Name: "Main"}},
			wantErr: entities.ErrInvalidRegistry,
		},
		{
			name:    "should fail on a name that escapes the root",
			sources: []entities.RegistrySource{{Name: "../Main", URL: "u"}},
			wantErr: entities.ErrInvalidRegistry,
		},
		{
			name: "should fail on a name that would land on another mirror",
			sources: []entities.RegistrySource{
				{Name: "Main", URL: "a"},
				{Name: "Main.history", URL: "b"},
			},
			wantErr: entities.ErrInvalidRegistry,
		},
		{
			name:    "should fail on a name shaped like a commit-keyed snapshot",
			sources: []entities.RegistrySource{{Name: "Main@0123456789ab", URL: "u"}},
			wantErr: entities.ErrInvalidRegistry,
		},
		{
			name:    "should fail on glob metacharacters",
			sources: []entities.RegistrySource{{Name: "Main*", URL: "u"}},
			wantErr: entities.ErrInvalidRegistry,
		},
		{
			name:    "should fail on a bracket",
			sources: []entities.RegistrySource{{Name: "Main[1]", URL: "u"}},
			wantErr: entities.ErrInvalidRegistry,
		},
		{
			name: "should fail on duplicate names",
			sources: []entities.RegistrySource{
				{Name: "Main", URL: "a"},
				{Name: "Main", URL: "b"},
			},
			wantErr: entities.ErrDuplicateRegistry,
		},
		{
			name: "should accept distinct registries",
			sources: []entities.RegistrySource{
				{Name: "Main", URL: "a"},
				{Name: "Extra", URL: "b"},
				{Name: "history", URL: "c"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			// when
			err := entities.ValidateSources(tt.sources)

			// then
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}
