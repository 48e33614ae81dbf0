package controllers

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rios0rios0/regtravel/internal/domain/commands"
	"github.com/rios0rios0/regtravel/internal/domain/entities"
)

// LocateController handles the "locate" subcommand.
type LocateController struct {
	command commands.Locate
}

// NewLocateController creates a new LocateController.
func NewLocateController(command commands.Locate) *LocateController {
	return &LocateController{command: command}
}

// GetBind returns the Cobra command metadata for the locate controller.
func (it *LocateController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "locate <package> <version>",
		Short: "Show the commit and date that published a release",
		Long: `Search the history of each configured registry, in order, for the
commit that published the given package version. Only commit metadata is
downloaded; no snapshot is created.`,
		Args: cobra.ExactArgs(2), //nolint:mnd // package and version
	}
}

// AddFlags adds the locate-specific flags to the given Cobra command.
func (it *LocateController) AddFlags(cmd *cobra.Command) {
	addReferenceFlags(cmd)
}

// Execute runs the release lookup.
func (it *LocateController) Execute(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	settings, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	ref, err := referenceFromArgs(cmd, args)
	if err != nil {
		return err
	}

	result, err := it.command.Execute(ctx, settings, commands.LocateOptions{Reference: ref})
	if err != nil {
		return fmt.Errorf("locate failed: %w", err)
	}

	_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\n",
		result.Registry.Name, result.Release.Hash, result.Release.Raw)
	return err
}
