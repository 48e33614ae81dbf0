package git

import (
	"context"
	"fmt"
	"os"
	"strings"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/regtravel/internal/domain/entities"
	"github.com/rios0rios0/regtravel/internal/domain/repositories"
)

const dirMode = 0o755

// HistoryRepository implements repositories.HistoryRepository on top of the
// git CLI. Partial clones are not something go-git can produce, so mirrors
// and commit searches go through git itself.
type HistoryRepository struct {
	binary    string
	workspace entities.Workspace
	detector  repositories.ReleaseDetector
}

// NewHistoryRepository creates a history repository rooted at the workspace.
func NewHistoryRepository(
	binary string,
	workspace entities.Workspace,
	detector repositories.ReleaseDetector,
) *HistoryRepository {
	return &HistoryRepository{binary: binary, workspace: workspace, detector: detector}
}

var _ repositories.HistoryRepository = (*HistoryRepository)(nil)

// EnsureHistory clones the registry history without blobs or a working tree,
// unless the mirror directory already exists.
func (it *HistoryRepository) EnsureHistory(
	ctx context.Context,
	source entities.RegistrySource,
) (*entities.HistoryMirror, error) {
	dir := it.workspace.HistoryDir(source.Name)

	if dirExists(dir) {
		logger.Debugf("[git] History mirror for %q already exists at %s", source.Name, dir)
	} else {
		logger.Infof("[git] Cloning history of %q from %s", source.Name, source.URL)

		if err := os.MkdirAll(it.workspace.Root, dirMode); err != nil {
			return nil, fmt.Errorf("failed to create root %s: %w", it.workspace.Root, err)
		}

		root := NewRepo(it.binary, it.workspace.Root)
		if _, err := root.run(ctx, cloneHistoryArgs(source.URL, dir)...); err != nil {
			return nil, &entities.CloneError{
				Registry: source.Name, Op: "clone history", Output: stderrOf(err), Err: err,
			}
		}
	}

	repo := NewRepo(it.binary, dir)
	out, err := repo.run(ctx, defaultBranchArgs()...)
	if err != nil {
		return nil, &entities.CloneError{
			Registry: source.Name, Op: "read default branch", Output: stderrOf(err), Err: err,
		}
	}

	return &entities.HistoryMirror{
		Source: source,
		Dir:    dir,
		Branch: strings.TrimSpace(out),
	}, nil
}

// LocateRelease tries each of the detector's patterns in order and returns the
// newest first-parent commit whose message the detector attributes to ref.
// The record reports the author date and carries the committer date as its
// bound.
func (it *HistoryRepository) LocateRelease(
	ctx context.Context,
	mirror *entities.HistoryMirror,
	ref entities.PackageReference,
) (*entities.CommitRecord, error) {
	repo := NewRepo(it.binary, mirror.Dir)

	for _, pattern := range it.detector.Patterns(ref) {
		out, err := repo.run(ctx, searchArgs(mirror.TrackingRef(), pattern)...)
		if err != nil {
			return nil, &entities.CloneError{
				Registry: mirror.Source.Name, Op: "search history", Output: stderrOf(err), Err: err,
			}
		}

		hash := it.firstMatch(out, ref)
		if hash == "" {
			logger.Debugf("[git] %q: no commit matches %q", mirror.Source.Name, pattern)
			continue
		}

		dateOut, dateErr := repo.run(ctx, releaseDatesArgs(hash)...)
		if dateErr != nil {
			return nil, &entities.CloneError{
				Registry: mirror.Source.Name, Op: "read commit date", Output: stderrOf(dateErr), Err: dateErr,
			}
		}

		authored, committed, found := strings.Cut(strings.TrimSpace(dateOut), fieldSep)
		if !found {
			return nil, fmt.Errorf("registry %q: unexpected git show output %q", mirror.Source.Name, dateOut)
		}

		record, parseErr := entities.NewReleaseRecord(hash, authored, committed)
		if parseErr != nil {
			return nil, fmt.Errorf("registry %q: %w", mirror.Source.Name, parseErr)
		}

		logger.Infof("[git] %q: %s released in %s", mirror.Source.Name, ref, record)
		return record, nil
	}

	return nil, &entities.PackageNotFoundError{
		Package:    ref.Name,
		Version:    ref.Version,
		Registries: []string{mirror.Source.Name},
	}
}

// firstMatch scans log output (newest first) for a message line the detector
// attributes to exactly ref. The fixed-string grep also hits longer names
// and versions, e.g. v1.9.30 for v1.9.3.
func (it *HistoryRepository) firstMatch(out string, ref entities.PackageReference) string {
	for _, record := range strings.Split(out, recordSep) {
		record = strings.TrimSpace(record)
		if record == "" {
			continue
		}

		hash, message, ok := strings.Cut(record, fieldSep)
		if !ok {
			continue
		}

		for _, line := range strings.Split(message, "\n") {
			name, version, matched := it.detector.Match(line)
			if matched && name == ref.Name && version == ref.Version {
				return hash
			}
		}
	}
	return ""
}

// ResolveBeforeOrAt returns the newest first-parent commit git considers not
// after the bound of target. The record carries the commit date git compared
// against.
func (it *HistoryRepository) ResolveBeforeOrAt(
	ctx context.Context,
	mirror *entities.HistoryMirror,
	target entities.CommitRecord,
) (*entities.CommitRecord, error) {
	repo := NewRepo(it.binary, mirror.Dir)
	bound, _ := target.Bound()

	out, err := repo.run(ctx, beforeDateArgs(mirror.TrackingRef(), bound)...)
	if err != nil {
		return nil, &entities.CloneError{
			Registry: mirror.Source.Name, Op: "search history by date", Output: stderrOf(err), Err: err,
		}
	}

	line := strings.TrimSpace(out)
	if line == "" {
		return nil, &entities.NoCommitBeforeDateError{Registry: mirror.Source.Name, Timestamp: bound}
	}

	hash, date, ok := strings.Cut(line, fieldSep)
	if !ok {
		return nil, fmt.Errorf("registry %q: unexpected git log output %q", mirror.Source.Name, line)
	}

	record, parseErr := entities.NewCommitRecord(hash, date)
	if parseErr != nil {
		return nil, fmt.Errorf("registry %q: %w", mirror.Source.Name, parseErr)
	}

	if !record.NotAfter(target) {
		return nil, fmt.Errorf(
			"registry %q: git returned %s which is after %s",
			mirror.Source.Name, record, bound,
		)
	}

	logger.Infof("[git] %q: pinned to %s", mirror.Source.Name, record)
	return record, nil
}

// Remove deletes the mirror directory of the registry.
func (it *HistoryRepository) Remove(_ context.Context, source entities.RegistrySource) ([]string, error) {
	dir := it.workspace.HistoryDir(source.Name)
	if !dirExists(dir) {
		return nil, nil
	}
	if err := os.RemoveAll(dir); err != nil {
		return nil, fmt.Errorf("failed to remove %s: %w", dir, err)
	}
	return []string{dir}, nil
}
