package controllers

import (
	"fmt"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/regtravel/internal/domain/entities"
)

// loadSettings resolves settings from --config, a discovered config file or
// the defaults, then applies the --root and --registry overrides.
func loadSettings(cmd *cobra.Command) (*entities.Settings, error) {
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		logger.SetLevel(logger.DebugLevel)
	}

	configPath, _ := cmd.Flags().GetString("config")
	if configPath == "" {
		if found, err := entities.FindConfigFile(); err == nil {
			configPath = found
		}
	}

	var settings *entities.Settings
	var err error
	if configPath != "" {
		logger.Infof("Using config file: %s", configPath)
		settings, err = entities.NewSettings(configPath)
	} else {
		logger.Debug("No config file found, using defaults")
		settings, err = entities.DefaultSettings()
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if root, _ := cmd.Flags().GetString("root"); root != "" {
		settings.Root = root
	}

	if cmd.Flags().Lookup("registry") != nil {
		raw, _ := cmd.Flags().GetStringArray("registry")
		if len(raw) > 0 {
			sources, parseErr := parseSources(raw)
			if parseErr != nil {
				return nil, parseErr
			}
			settings.Registries = sources
		}
	}

	if validateErr := settings.Validate(); validateErr != nil {
		return nil, validateErr
	}
	return settings, nil
}

func parseSources(raw []string) ([]entities.RegistrySource, error) {
	sources := make([]entities.RegistrySource, 0, len(raw))
	for _, value := range raw {
		source, err := entities.ParseRegistrySource(value)
		if err != nil {
			return nil, err
		}
		sources = append(sources, source)
	}
	return sources, nil
}

// addReferenceFlags adds the flags shared by commands taking a package reference.
func addReferenceFlags(cmd *cobra.Command) {
	cmd.Flags().String("uuid", "", "Package UUID, to disambiguate packages sharing a name")
	cmd.Flags().StringArray("registry", nil,
		"Registry as name=url; repeat for several (default: configured registries)")
}

func referenceFromArgs(cmd *cobra.Command, args []string) (entities.PackageReference, error) {
	uuid, _ := cmd.Flags().GetString("uuid")
	return entities.NewPackageReference(args[0], args[1], uuid)
}
