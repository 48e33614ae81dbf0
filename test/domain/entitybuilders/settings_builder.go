//go:build integration || unit || test

package entitybuilders //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"github.com/rios0rios0/regtravel/internal/domain/entities"
	testkit "github.com/rios0rios0/testkit/pkg/test"
)

// SettingsBuilder helps create test settings with a fluent interface.
type SettingsBuilder struct {
	*testkit.BaseBuilder
	root       string
	detector   string
	layout     entities.SnapshotLayout
	registries []entities.RegistrySource
}

// NewSettingsBuilder creates a new settings builder with sensible defaults.
func NewSettingsBuilder() *SettingsBuilder {
	return &SettingsBuilder{
		BaseBuilder: testkit.NewBaseBuilder(),
		root:        "/tmp/regtravel",
		detector:    entities.DefaultDetector,
		layout:      entities.LayoutRegistry,
	}
}

// WithRoot sets the workspace root.
func (b *SettingsBuilder) WithRoot(root string) *SettingsBuilder {
	b.root = root
	return b
}

// WithLayout sets the snapshot layout.
func (b *SettingsBuilder) WithLayout(layout entities.SnapshotLayout) *SettingsBuilder {
	b.layout = layout
	return b
}

// WithRegistry appends a registry source.
func (b *SettingsBuilder) WithRegistry(name, url string) *SettingsBuilder {
	b.registries = append(b.registries, entities.RegistrySource{Name: name, URL: url})
	return b
}

// Build creates the settings (satisfies testkit.Builder interface).
func (b *SettingsBuilder) Build() interface{} {
	return b.BuildSettings()
}

// BuildSettings creates the settings with a concrete return type.
func (b *SettingsBuilder) BuildSettings() *entities.Settings {
	registries := make([]entities.RegistrySource, len(b.registries))
	copy(registries, b.registries)
	return &entities.Settings{
		Root:           b.root,
		Detector:       b.detector,
		SnapshotLayout: b.layout,
		Registries:     registries,
	}
}

// Reset clears the builder state, allowing it to be reused.
func (b *SettingsBuilder) Reset() testkit.Builder {
	b.BaseBuilder.Reset()
	b.root = "/tmp/regtravel"
	b.detector = entities.DefaultDetector
	b.layout = entities.LayoutRegistry
	b.registries = nil
	return b
}

// Clone creates a deep copy of the SettingsBuilder.
func (b *SettingsBuilder) Clone() testkit.Builder {
	registries := make([]entities.RegistrySource, len(b.registries))
	copy(registries, b.registries)
	return &SettingsBuilder{
		BaseBuilder: b.BaseBuilder.Clone().(*testkit.BaseBuilder),
		root:        b.root,
		detector:    b.detector,
		layout:      b.layout,
		registries:  registries,
	}
}
