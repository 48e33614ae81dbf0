//go:build unit

package entities_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/regtravel/internal/domain/entities"
)

func TestNewCommitRecord(t *testing.T) {
	t.Parallel()

	t.Run("should keep the original offset", func(t *testing.T) {
		t.Parallel()

		// given
		raw := "2023-05-01T12:00:00+02:00\n"

		// when
		record, err := entities.NewCommitRecord(" abc123 ", raw)

		// then
		require.NoError(t, err)
		assert.Equal(t, "abc123", record.Hash)
		assert.Equal(t, "2023-05-01T12:00:00+02:00", record.Raw)
		_, offset := record.Timestamp.Zone()
		assert.Equal(t, 2*60*60, offset)
		assert.Equal(t, 10, record.Timestamp.UTC().Hour())
	})

	t.Run("should fail on an empty hash", func(t *testing.T) {
		t.Parallel()

		// when
		_, err := entities.NewCommitRecord("", "2023-05-01T10:00:00+00:00")

		// then
		require.Error(t, err)
	})

	t.Run("should fail on a date git did not print in strict ISO form", func(t *testing.T) {
		t.Parallel()

		// when
		_, err := entities.NewCommitRecord("abc", "2023-05-01 10:00:00 +0000")

		// then
		require.Error(t, err)
		assert.Contains(t, err.Error(), "parse commit date")
	})
}

func TestCommitRecordNotAfter(t *testing.T) {
	t.Parallel()

	t.Run("should compare instants across offsets", func(t *testing.T) {
		t.Parallel()

		// given
		earlier, err := entities.NewCommitRecord("a", "2023-05-01T11:00:00+02:00") // 09:00Z
		require.NoError(t, err)
		later, err := entities.NewCommitRecord("b", "2023-05-01T10:00:00+00:00")
		require.NoError(t, err)

		// when / then
		assert.True(t, earlier.NotAfter(*later))
		assert.False(t, later.NotAfter(*earlier))
		assert.True(t, later.NotAfter(*later))
	})

	t.Run("should bound by the committer date of a release", func(t *testing.T) {
		t.Parallel()

		// given
		release, err := entities.NewReleaseRecord("r", "2023-05-01T10:00:00+00:00", "2023-05-01T10:05:00+00:00")
		require.NoError(t, err)
		between, err := entities.NewCommitRecord("c", "2023-05-01T10:03:00+00:00")
		require.NoError(t, err)

		// when
		raw, bound := release.Bound()

		// then
		assert.Equal(t, "2023-05-01T10:05:00+00:00", raw)
		assert.True(t, bound.Equal(release.Committed))
		assert.True(t, between.NotAfter(*release))
		assert.Equal(t, "2023-05-01T10:00:00+00:00", release.Raw)
	})
}

func TestNewReleaseRecord(t *testing.T) {
	t.Parallel()

	t.Run("should reject a malformed committer date", func(t *testing.T) {
		t.Parallel()

		// when
		_, err := entities.NewReleaseRecord("r", "2023-05-01T10:00:00+00:00", "yesterday")

		// then
		require.Error(t, err)
		assert.Contains(t, err.Error(), "parse committer date")
	})
}

func TestCommitRecordShortHash(t *testing.T) {
	t.Parallel()

	t.Run("should truncate long hashes to twelve characters", func(t *testing.T) {
		t.Parallel()

		// given
		record := entities.CommitRecord{Hash: "0123456789abcdef0123"}

		// when
		short := record.ShortHash()

		// then
		assert.Equal(t, "0123456789ab", short)
	})

	t.Run("should keep short hashes as-is", func(t *testing.T) {
		t.Parallel()

		// given
		record := entities.CommitRecord{Hash: "abc"}

		// when / then
		assert.Equal(t, "abc", record.ShortHash())
	})
}
