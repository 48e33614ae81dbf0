//go:build integration || unit || test

package gitseed //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"os"
	"path/filepath"
	"strconv"
	"testing"
	"time"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/stretchr/testify/require"
)

// markerFile changes on every commit so no commit is empty.
const markerFile = ".revision"

// Commit describes one commit of a seeded registry.
type Commit struct {
	Message string
	// AuthorDate and CommitterDate are RFC 3339; an empty CommitterDate
	// reuses AuthorDate.
	AuthorDate    string
	CommitterDate string
	// Files are written (relative, slash separated) before committing and
	// stay in the tree for later commits.
	Files map[string]string
}

// Registry creates a repository on master with exactly the given commits and
// returns its file URL together with the commit hashes in order.
func Registry(t *testing.T, commits []Commit) (string, []string) {
	t.Helper()

	dir := t.TempDir()
	repository, err := gogit.PlainInit(dir, false)
	require.NoError(t, err)
	worktree, err := repository.Worktree()
	require.NoError(t, err)

	hashes := make([]string, 0, len(commits))
	for i, commit := range commits {
		files := map[string]string{markerFile: strconv.Itoa(i) + "\n"}
		for name, content := range commit.Files {
			files[name] = content
		}
		for name, content := range files {
			path := filepath.Join(dir, filepath.FromSlash(name))
			require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
			require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
			_, err = worktree.Add(name)
			require.NoError(t, err)
		}

		committerDate := commit.CommitterDate
		if committerDate == "" {
			committerDate = commit.AuthorDate
		}
		hash, commitErr := worktree.Commit(commit.Message, &gogit.CommitOptions{
			Author:    signature(t, commit.AuthorDate),
			Committer: signature(t, committerDate),
		})
		require.NoError(t, commitErr)
		hashes = append(hashes, hash.String())
	}

	return "file://" + filepath.ToSlash(dir), hashes
}

func signature(t *testing.T, date string) *object.Signature {
	t.Helper()
	when, err := time.Parse(time.RFC3339, date)
	require.NoError(t, err)
	return &object.Signature{Name: "Registrator", Email: "registrator@example.com", When: when}
}
