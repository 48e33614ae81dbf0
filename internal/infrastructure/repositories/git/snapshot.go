package git

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	gogit "github.com/go-git/go-git/v5"
	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/regtravel/internal/domain/entities"
	"github.com/rios0rios0/regtravel/internal/domain/repositories"
)

// SnapshotRepository implements repositories.SnapshotRepository. The clone
// transfers the current head at depth 1, then exactly the pinned commit.
type SnapshotRepository struct {
	binary    string
	workspace entities.Workspace
}

// NewSnapshotRepository creates a snapshot repository rooted at the workspace.
func NewSnapshotRepository(binary string, workspace entities.Workspace) *SnapshotRepository {
	return &SnapshotRepository{binary: binary, workspace: workspace}
}

var _ repositories.SnapshotRepository = (*SnapshotRepository)(nil)

// Materialize pins a working tree of source to commit. When the snapshot
// directory exists nothing is fetched, even if it is pinned elsewhere.
func (it *SnapshotRepository) Materialize(
	ctx context.Context,
	source entities.RegistrySource,
	commit entities.CommitRecord,
) (*entities.RegistrySnapshot, error) {
	dir := it.workspace.SnapshotDir(source.Name, commit)
	snapshot := &entities.RegistrySnapshot{Source: source, Commit: commit, Dir: dir}

	if dirExists(dir) {
		snapshot.Reused = true
		it.warnIfRepinned(snapshot)
		logger.Infof("[git] Reusing snapshot of %q at %s", source.Name, dir)
		return snapshot, nil
	}

	logger.Infof("[git] Materializing %q at %s", source.Name, commit)

	if err := os.MkdirAll(it.workspace.Root, dirMode); err != nil {
		return nil, fmt.Errorf("failed to create root %s: %w", it.workspace.Root, err)
	}

	root := NewRepo(it.binary, it.workspace.Root)
	if _, err := root.run(ctx, shallowCloneArgs(source.URL, dir)...); err != nil {
		return nil, &entities.CloneError{Registry: source.Name, Op: "shallow clone", Output: stderrOf(err), Err: err}
	}

	repo := NewRepo(it.binary, dir)
	if _, err := repo.run(ctx, pinnedFetchArgs(commit.Hash)...); err != nil {
		return nil, &entities.CloneError{Registry: source.Name, Op: "fetch " + commit.ShortHash(), Output: stderrOf(err), Err: err}
	}
	if _, err := repo.run(ctx, checkoutArgs(commit.Hash)...); err != nil {
		return nil, &entities.CloneError{Registry: source.Name, Op: "checkout " + commit.ShortHash(), Output: stderrOf(err), Err: err}
	}

	head, err := headOf(dir)
	if err != nil {
		return nil, &entities.CloneError{Registry: source.Name, Op: "verify checkout", Err: err}
	}
	if head != commit.Hash {
		return nil, &entities.CloneError{
			Registry: source.Name,
			Op:       "verify checkout",
			Err:      fmt.Errorf("HEAD is %s, expected %s", head, commit.Hash),
		}
	}

	return snapshot, nil
}

// warnIfRepinned logs when a reused snapshot is checked out at a different
// commit than the one just resolved.
func (it *SnapshotRepository) warnIfRepinned(snapshot *entities.RegistrySnapshot) {
	head, err := headOf(snapshot.Dir)
	if err != nil {
		logger.Warnf("[git] Cannot read HEAD of existing snapshot %s: %v", snapshot.Dir, err)
		return
	}
	if head != snapshot.Commit.Hash {
		logger.Warnf(
			"[git] Snapshot %s is pinned to %s, not %s; remove it or use snapshot_layout: %s",
			snapshot.Dir, head, snapshot.Commit.Hash, entities.LayoutCommit,
		)
	}
}

// Remove deletes every snapshot directory of the registry, under either layout.
func (it *SnapshotRepository) Remove(_ context.Context, source entities.RegistrySource) ([]string, error) {
	var removed []string
	for _, pattern := range it.workspace.SnapshotGlob(source.Name) {
		matches, err := filepath.Glob(pattern)
		if err != nil {
			return removed, fmt.Errorf("invalid snapshot pattern %q: %w", pattern, err)
		}
		for _, dir := range matches {
			if removeErr := os.RemoveAll(dir); removeErr != nil {
				return removed, fmt.Errorf("failed to remove %s: %w", dir, removeErr)
			}
			removed = append(removed, dir)
		}
	}
	return removed, nil
}

// headOf resolves the checked-out commit of the repository at dir.
func headOf(dir string) (string, error) {
	repository, err := gogit.PlainOpen(dir)
	if err != nil {
		return "", fmt.Errorf("open %s: %w", dir, err)
	}

	ref, err := repository.Head()
	if err != nil {
		return "", fmt.Errorf("resolve HEAD of %s: %w", dir, err)
	}

	return ref.Hash().String(), nil
}
