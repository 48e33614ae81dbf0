package entities

import (
	"fmt"
	"strings"
	"time"
)

// CommitRecord is a commit hash plus its date exactly as git reported it.
// Raw keeps the original offset; Timestamp is the same instant parsed with
// that fixed offset.
//
// A release record also carries the committer date. git log --before
// compares committer dates, so date bounds use it when it is known.
type CommitRecord struct {
	Hash      string
	Timestamp time.Time
	Raw       string

	Committed    time.Time
	CommittedRaw string
}

// NewCommitRecord parses a strict ISO 8601 date as printed by %aI or %cI.
func NewCommitRecord(hash, raw string) (*CommitRecord, error) {
	hash = strings.TrimSpace(hash)
	raw = strings.TrimSpace(raw)
	if hash == "" {
		return nil, fmt.Errorf("empty commit hash")
	}

	timestamp, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return nil, fmt.Errorf("parse commit date %q: %w", raw, err)
	}

	return &CommitRecord{Hash: hash, Timestamp: timestamp, Raw: raw}, nil
}

// NewReleaseRecord parses the author and committer dates of a release commit.
func NewReleaseRecord(hash, authorRaw, committerRaw string) (*CommitRecord, error) {
	record, err := NewCommitRecord(hash, authorRaw)
	if err != nil {
		return nil, err
	}

	committerRaw = strings.TrimSpace(committerRaw)
	committed, err := time.Parse(time.RFC3339, committerRaw)
	if err != nil {
		return nil, fmt.Errorf("parse committer date %q: %w", committerRaw, err)
	}

	record.Committed = committed
	record.CommittedRaw = committerRaw
	return record, nil
}

// Bound returns the date other commits are compared against: the committer
// date when known, otherwise Raw.
func (c CommitRecord) Bound() (string, time.Time) {
	if c.CommittedRaw != "" {
		return c.CommittedRaw, c.Committed
	}
	return c.Raw, c.Timestamp
}

// ShortHash returns the first 12 characters of the hash.
func (c CommitRecord) ShortHash() string {
	const shortLen = 12
	if len(c.Hash) > shortLen {
		return c.Hash[:shortLen]
	}
	return c.Hash
}

// NotAfter reports whether the commit is at or before the bound of other.
func (c CommitRecord) NotAfter(other CommitRecord) bool {
	_, bound := other.Bound()
	return !c.Timestamp.After(bound)
}

func (c CommitRecord) String() string {
	return fmt.Sprintf("%s (%s)", c.ShortHash(), c.Raw)
}
