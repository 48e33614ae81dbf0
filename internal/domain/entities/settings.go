package entities

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	logger "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

const (
	// DefaultRegistryName and DefaultRegistryURL describe the registry used
	// when nothing else is configured.
	DefaultRegistryName = "General"
	DefaultRegistryURL  = "https://github.com/JuliaRegistries/General.git"

	// DefaultDetector is the release detector for Registrator-style registries.
	DefaultDetector = "registrator"

	rootEnvVar = "REGTRAVEL_ROOT"
	appDirName = "regtravel"
)

// Settings is the top-level configuration for regtravel.
type Settings struct {
	Root           string           `yaml:"root"`
	Detector       string           `yaml:"detector"`
	SnapshotLayout SnapshotLayout   `yaml:"snapshot_layout"`
	Registries     []RegistrySource `yaml:"registries"`
}

// envVarPattern matches ${VAR_NAME} placeholders.
var envVarPattern = regexp.MustCompile(`\$\{([^}]+)}`)

// NewSettings reads and parses a configuration file, expanding environment
// variables and filling defaults.
func NewSettings(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %q: %w", path, err)
	}

	var settings Settings
	if unmarshalErr := yaml.Unmarshal(data, &settings); unmarshalErr != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", unmarshalErr)
	}

	settings.Root = expandEnv(settings.Root)
	for i := range settings.Registries {
		settings.Registries[i].Name = expandEnv(settings.Registries[i].Name)
		settings.Registries[i].URL = expandEnv(settings.Registries[i].URL)
	}

	if defaultsErr := settings.applyDefaults(); defaultsErr != nil {
		return nil, defaultsErr
	}
	if validateErr := settings.Validate(); validateErr != nil {
		return nil, validateErr
	}

	return &settings, nil
}

// DefaultSettings returns the settings used when no config file exists.
func DefaultSettings() (*Settings, error) {
	settings := &Settings{}
	if err := settings.applyDefaults(); err != nil {
		return nil, err
	}
	return settings, nil
}

// FindConfigFile searches for a configuration file in standard locations.
// Returns the path to the first file found or an error if none is found.
func FindConfigFile() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = ""
	}

	locations := []string{
		".",
		".config",
		"configs",
	}
	if homeDir != "" {
		locations = append(
			locations,
			homeDir,
			filepath.Join(homeDir, ".config"),
		)
	}

	patterns := []string{
		".regtravel.yaml",
		".regtravel.yml",
		"regtravel.yaml",
		"regtravel.yml",
	}

	for _, loc := range locations {
		for _, pat := range patterns {
			p := filepath.Join(loc, pat)
			if _, statErr := os.Stat(p); statErr == nil {
				return p, nil
			}
		}
	}

	return "", errors.New("config file not found in default locations")
}

// Workspace returns the directory layout described by these settings.
func (s *Settings) Workspace() Workspace {
	return Workspace{Root: s.Root, Layout: s.SnapshotLayout}
}

// Validate checks for required configuration values.
func (s *Settings) Validate() error {
	if s.Root == "" {
		return errors.New("root is required")
	}
	switch s.SnapshotLayout {
	case LayoutRegistry, LayoutCommit:
	default:
		return fmt.Errorf(
			"snapshot_layout %q is invalid (expected %q or %q)",
			s.SnapshotLayout, LayoutRegistry, LayoutCommit,
		)
	}
	return ValidateSources(s.Registries)
}

func (s *Settings) applyDefaults() error {
	if root := os.Getenv(rootEnvVar); root != "" {
		s.Root = root
	}
	if s.Root == "" {
		cacheDir, err := os.UserCacheDir()
		if err != nil {
			return fmt.Errorf("cannot determine default root (set %s): %w", rootEnvVar, err)
		}
		s.Root = filepath.Join(cacheDir, appDirName)
	}
	if s.Detector == "" {
		s.Detector = DefaultDetector
	}
	if s.SnapshotLayout == "" {
		s.SnapshotLayout = LayoutRegistry
	}
	if len(s.Registries) == 0 {
		s.Registries = []RegistrySource{{Name: DefaultRegistryName, URL: DefaultRegistryURL}}
	}
	return nil
}

// expandEnv replaces ${ENV_VAR} references with their values.
func expandEnv(raw string) string {
	if raw == "" {
		return raw
	}

	return envVarPattern.ReplaceAllStringFunc(raw, func(match string) string {
		varName := envVarPattern.FindStringSubmatch(match)[1]
		if val := os.Getenv(varName); val != "" {
			return val
		}
		logger.Warnf("Environment variable %q is not set", varName)
		return ""
	})
}
