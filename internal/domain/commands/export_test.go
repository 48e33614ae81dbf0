package commands

// SelectSources exports selectSources for testing.
var SelectSources = selectSources //nolint:gochecknoglobals // test export
