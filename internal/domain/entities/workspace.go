package entities

import "path/filepath"

// SnapshotLayout decides how snapshot directories are named.
type SnapshotLayout string

const (
	// LayoutRegistry keeps one snapshot per registry: <root>/<name>.
	// An existing snapshot is never repointed at another commit.
	LayoutRegistry SnapshotLayout = "registry"
	// LayoutCommit keys snapshots by commit: <root>/<name>@<hash[:12]>.
	LayoutCommit SnapshotLayout = "commit"

	historySuffix = ".history"
)

// Workspace maps registries onto directories under Root. Directory existence
// is the only state it knows about.
type Workspace struct {
	Root   string
	Layout SnapshotLayout
}

// HistoryDir is where the history mirror of the named registry lives.
func (w Workspace) HistoryDir(name string) string {
	return filepath.Join(w.Root, name+historySuffix)
}

// SnapshotDir is where the snapshot of the registry at commit lives.
func (w Workspace) SnapshotDir(name string, commit CommitRecord) string {
	if w.Layout == LayoutCommit {
		return filepath.Join(w.Root, name+"@"+commit.ShortHash())
	}
	return filepath.Join(w.Root, name)
}

// SnapshotGlob matches every snapshot directory of the registry under
// either layout.
func (w Workspace) SnapshotGlob(name string) []string {
	return []string{
		filepath.Join(w.Root, name),
		filepath.Join(w.Root, name+"@*"),
	}
}
