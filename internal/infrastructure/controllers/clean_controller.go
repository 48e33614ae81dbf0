package controllers

import (
	"context"
	"fmt"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/regtravel/internal/domain/commands"
	"github.com/rios0rios0/regtravel/internal/domain/entities"
)

// CleanController handles the "clean" subcommand.
type CleanController struct {
	command commands.Clean
}

// NewCleanController creates a new CleanController.
func NewCleanController(command commands.Clean) *CleanController {
	return &CleanController{command: command}
}

// GetBind returns the Cobra command metadata for the clean controller.
func (it *CleanController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "clean [registry...]",
		Short: "Remove history mirrors and snapshots",
		Long: `Delete the history mirror and every snapshot of the named registries
(all configured registries when none is named). Directories are never
refreshed or repaired automatically, so this is how an interrupted clone
is recovered.`,
		Args: cobra.ArbitraryArgs,
	}
}

// AddFlags adds the clean-specific flags to the given Cobra command.
func (it *CleanController) AddFlags(cmd *cobra.Command) {
	cmd.Flags().StringArray("registry", nil, "Registry as name=url; repeat for several")
}

// Execute removes the selected directories.
func (it *CleanController) Execute(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	settings, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	removed, err := it.command.Execute(ctx, settings, commands.CleanOptions{Names: args})
	for _, dir := range removed {
		fmt.Fprintln(cmd.OutOrStdout(), dir)
	}
	if err != nil {
		return fmt.Errorf("clean failed: %w", err)
	}
	if len(removed) == 0 {
		logger.Info("Nothing to clean.")
	}
	return nil
}
