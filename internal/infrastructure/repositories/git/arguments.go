package git

// Every git invocation gets a freshly built argument list. Nothing is
// patched into a shared template.

const (
	// recordSep and fieldSep delimit log records, so multi-line subjects
	// cannot break parsing.
	recordSep = "\x1e"
	fieldSep  = "\x1f"
)

func cloneHistoryArgs(url, dir string) []string {
	return []string{"clone", "--filter=blob:none", "--no-checkout", "--single-branch", url, dir}
}

func defaultBranchArgs() []string {
	return []string{"rev-parse", "--abbrev-ref", "HEAD"}
}

// searchArgs prints the full message (%B), since --grep also matches bodies.
func searchArgs(trackingRef, pattern string) []string {
	return []string{
		"log",
		"--first-parent",
		"--fixed-strings",
		"--grep=" + pattern,
		"--format=%H" + fieldSep + "%B" + recordSep,
		trackingRef,
	}
}

func releaseDatesArgs(hash string) []string {
	return []string{"show", "-s", "--format=%aI" + fieldSep + "%cI", hash}
}

func beforeDateArgs(trackingRef, before string) []string {
	return []string{
		"log",
		"--first-parent",
		"--max-count=1",
		"--before=" + before,
		"--format=%H" + fieldSep + "%cI",
		trackingRef,
	}
}

func shallowCloneArgs(url, dir string) []string {
	return []string{"clone", "--depth=1", url, dir}
}

func pinnedFetchArgs(hash string) []string {
	return []string{"fetch", "--depth=1", "origin", hash}
}

func checkoutArgs(hash string) []string {
	return []string{"checkout", "--quiet", hash}
}
