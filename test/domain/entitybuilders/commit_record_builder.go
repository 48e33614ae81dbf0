//go:build integration || unit || test

package entitybuilders //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"time"

	"github.com/rios0rios0/regtravel/internal/domain/entities"
	testkit "github.com/rios0rios0/testkit/pkg/test"
)

const (
	defaultCommitHash = "0123456789abcdef0123456789abcdef01234567"
	defaultCommitDate = "2023-05-01T10:00:00+00:00"
)

// CommitRecordBuilder helps create test commit records with a fluent interface.
type CommitRecordBuilder struct {
	*testkit.BaseBuilder
	hash string
	raw  string
}

// NewCommitRecordBuilder creates a new commit record builder with sensible defaults.
func NewCommitRecordBuilder() *CommitRecordBuilder {
	return &CommitRecordBuilder{
		BaseBuilder: testkit.NewBaseBuilder(),
		hash:        defaultCommitHash,
		raw:         defaultCommitDate,
	}
}

// WithHash sets the commit hash.
func (b *CommitRecordBuilder) WithHash(hash string) *CommitRecordBuilder {
	b.hash = hash
	return b
}

// WithDate sets the raw ISO 8601 date, offset included.
func (b *CommitRecordBuilder) WithDate(raw string) *CommitRecordBuilder {
	b.raw = raw
	return b
}

// Build creates the commit record (satisfies testkit.Builder interface).
func (b *CommitRecordBuilder) Build() interface{} {
	return b.BuildCommitRecord()
}

// BuildCommitRecord creates the commit record with a concrete return type.
// It panics on an unparsable date, which is a broken test.
func (b *CommitRecordBuilder) BuildCommitRecord() entities.CommitRecord {
	timestamp, err := time.Parse(time.RFC3339, b.raw)
	if err != nil {
		panic(err)
	}
	return entities.CommitRecord{Hash: b.hash, Timestamp: timestamp, Raw: b.raw}
}

// Reset clears the builder state, allowing it to be reused.
func (b *CommitRecordBuilder) Reset() testkit.Builder {
	b.BaseBuilder.Reset()
	b.hash = defaultCommitHash
	b.raw = defaultCommitDate
	return b
}

// Clone creates a deep copy of the CommitRecordBuilder.
func (b *CommitRecordBuilder) Clone() testkit.Builder {
	return &CommitRecordBuilder{
		BaseBuilder: b.BaseBuilder.Clone().(*testkit.BaseBuilder),
		hash:        b.hash,
		raw:         b.raw,
	}
}
