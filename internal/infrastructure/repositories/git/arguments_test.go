//go:build unit

package git_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rios0rios0/regtravel/internal/domain/entities"
	"github.com/rios0rios0/regtravel/internal/infrastructure/repositories/git"
	"github.com/rios0rios0/regtravel/internal/infrastructure/repositories/registrator"
)

func TestArguments(t *testing.T) {
	t.Parallel()

	t.Run("should clone history without blobs or checkout", func(t *testing.T) {
		t.Parallel()

		// when
		args := git.CloneHistoryArgs("https://example.com/r.git", "/c/Main.history")

		// then
		assert.Equal(t, []string{
			"clone", "--filter=blob:none", "--no-checkout", "--single-branch",
			"https://example.com/r.git", "/c/Main.history",
		}, args)
	})

	t.Run("should search first-parent history with a fixed string", func(t *testing.T) {
		t.Parallel()

		// when
		args := git.SearchArgs("origin/master", "New version: json-lib v1.9.3")

		// then
		assert.Contains(t, args, "--first-parent")
		assert.Contains(t, args, "--fixed-strings")
		assert.Contains(t, args, "--grep=New version: json-lib v1.9.3")
		assert.Contains(t, args, "--format=%H\x1f%B\x1e")
		assert.Equal(t, "origin/master", args[len(args)-1])
	})

	t.Run("should pass the raw date through unmodified", func(t *testing.T) {
		t.Parallel()

		// when
		args := git.BeforeDateArgs("origin/main", "2023-04-20T12:00:00-03:00")

		// then
		assert.Contains(t, args, "--before=2023-04-20T12:00:00-03:00")
		assert.Contains(t, args, "--max-count=1")
	})

	t.Run("should build a fresh slice on every call", func(t *testing.T) {
		t.Parallel()

		// given
		first := git.PinnedFetchArgs("aaaa")

		// when
		second := git.PinnedFetchArgs("bbbb")

		// then
		assert.Equal(t, []string{"fetch", "--depth=1", "origin", "aaaa"}, first)
		assert.Equal(t, []string{"fetch", "--depth=1", "origin", "bbbb"}, second)
		assert.Equal(t, []string{"clone", "--depth=1", "u", "d"}, git.ShallowCloneArgs("u", "d"))
	})
}

func TestFirstMatch(t *testing.T) {
	t.Parallel()

	ref := entities.PackageReference{Name: "json-lib", Version: "1.9.3"}

	t.Run("should skip longer versions caught by the fixed-string search", func(t *testing.T) {
		t.Parallel()

		// given
		out := git.LogRecord("c3", "New version: json-lib v1.9.30") +
			git.LogRecord("c2", "New version: json-lib v1.9.3") +
			git.LogRecord("c1", "New version: json-lib v1.9.2")

		// when
		hash := git.FirstMatch(registrator.NewDetector(), out, ref)

		// then
		assert.Equal(t, "c2", hash)
	})

	t.Run("should skip packages whose names extend the wanted one", func(t *testing.T) {
		t.Parallel()

		// given
		out := git.LogRecord("d2", "New version: json-lib-extras v1.9.3") +
			git.LogRecord("d1", "New package: json-lib v1.9.3")

		// when
		hash := git.FirstMatch(registrator.NewDetector(), out, ref)

		// then
		assert.Equal(t, "d1", hash)
	})

	t.Run("should accept a squash-merge suffix", func(t *testing.T) {
		t.Parallel()

		// given
		out := git.LogRecord("e1", "New version: json-lib v1.9.3 (#88234)\n")

		// when
		hash := git.FirstMatch(registrator.NewDetector(), out, ref)

		// then
		assert.Equal(t, "e1", hash)
	})

	t.Run("should find a release line in the message body", func(t *testing.T) {
		t.Parallel()

		// given
		out := git.LogRecord("f2", "Merge pull request #12 from bot/registrator\n\nNew version: json-lib v1.9.3\n") +
			git.LogRecord("f1", "Batch release\n\nNew version: other-lib v2.0.0\nNew version: json-lib v1.9.2\n")

		// when
		hash := git.FirstMatch(registrator.NewDetector(), out, ref)

		// then
		assert.Equal(t, "f2", hash)
	})

	t.Run("should look past other packages released in the same commit", func(t *testing.T) {
		t.Parallel()

		// given
		out := git.LogRecord("g1", "Batch release\n\nNew version: other-lib v2.0.0\nNew version: json-lib v1.9.3\n")

		// when
		hash := git.FirstMatch(registrator.NewDetector(), out, ref)

		// then
		assert.Equal(t, "g1", hash)
	})

	t.Run("should return nothing for empty output", func(t *testing.T) {
		t.Parallel()

		// when / then
		assert.Empty(t, git.FirstMatch(registrator.NewDetector(), "", ref))
	})
}
