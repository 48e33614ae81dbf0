package entities

// HistoryMirror is a blob-less, checkout-less clone of a registry used only
// for commit searches. Branch is the remote default branch it tracks.
type HistoryMirror struct {
	Source RegistrySource
	Dir    string
	Branch string
}

// TrackingRef is the remote-tracking ref the mirror's searches start from.
func (m HistoryMirror) TrackingRef() string {
	return "origin/" + m.Branch
}

// RegistrySnapshot is a working tree of a registry pinned to one commit.
type RegistrySnapshot struct {
	Source RegistrySource
	Commit CommitRecord
	Dir    string
	// Reused is true when the directory already existed and nothing was fetched.
	Reused bool
}
