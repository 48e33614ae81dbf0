package git

import (
	"github.com/rios0rios0/regtravel/internal/domain/entities"
	"github.com/rios0rios0/regtravel/internal/domain/repositories"
)

// Argument builders exported for testing.
var (
	CloneHistoryArgs = cloneHistoryArgs //nolint:gochecknoglobals // test export
	SearchArgs       = searchArgs       //nolint:gochecknoglobals // test export
	BeforeDateArgs   = beforeDateArgs   //nolint:gochecknoglobals // test export
	ShallowCloneArgs = shallowCloneArgs //nolint:gochecknoglobals // test export
	PinnedFetchArgs  = pinnedFetchArgs  //nolint:gochecknoglobals // test export
)

// LogRecord formats one record the way searchArgs asks git to print it.
func LogRecord(hash, subject string) string {
	return hash + fieldSep + subject + recordSep + "\n"
}

// FirstMatch exposes the log scanning of HistoryRepository.
func FirstMatch(detector repositories.ReleaseDetector, out string, ref entities.PackageReference) string {
	it := &HistoryRepository{detector: detector}
	return it.firstMatch(out, ref)
}
