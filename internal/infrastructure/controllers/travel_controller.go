package controllers

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rios0rios0/regtravel/internal/domain/commands"
	"github.com/rios0rios0/regtravel/internal/domain/entities"
)

// TravelController handles the "travel" subcommand.
type TravelController struct {
	command commands.Travel
}

// NewTravelController creates a new TravelController.
func NewTravelController(command commands.Travel) *TravelController {
	return &TravelController{command: command}
}

// GetBind returns the Cobra command metadata for the travel controller.
func (it *TravelController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "travel <package> <version>",
		Short: "Rebuild every registry as it was when a release was published",
		Long: `Find the commit that published the given package version, then pin
every configured registry to the latest commit not after that date and
materialize a snapshot of each one.

History mirrors and snapshots are created once and reused afterwards.
Use "regtravel clean" to discard them.`,
		Args: cobra.ExactArgs(2), //nolint:mnd // package and version
	}
}

// AddFlags adds the travel-specific flags to the given Cobra command.
func (it *TravelController) AddFlags(cmd *cobra.Command) {
	addReferenceFlags(cmd)
}

// Execute runs the full resolution pipeline and prints one row per registry.
func (it *TravelController) Execute(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	settings, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	ref, err := referenceFromArgs(cmd, args)
	if err != nil {
		return err
	}

	result, err := it.command.Execute(ctx, settings, commands.TravelOptions{Reference: ref})
	if err != nil {
		return fmt.Errorf("travel failed: %w", err)
	}

	_, err = fmt.Fprint(cmd.OutOrStdout(), renderTravelResult(result))
	return err
}

// renderTravelResult renders the pinned registries as a table.
func renderTravelResult(result *commands.TravelResult) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("%s was published in %s at %s (%s)\n",
		result.Reference, result.ReleaseRegistry, result.Release.Raw, result.Release.ShortHash()))
	if pkg := result.Package; pkg != nil {
		tree := "not recorded"
		if version, ok := pkg.Version(result.Reference.Version); ok {
			tree = version.TreeSHA1
		}
		sb.WriteString(fmt.Sprintf("%s [%s] %s, git-tree-sha1 %s\n",
			pkg.Entry.Name, pkg.Entry.UUID, pkg.Repo, tree))
	}
	sb.WriteString("\n")

	sb.WriteString(fmt.Sprintf("%-16s %-12s %-25s %-8s %s\n",
		"REGISTRY", "COMMIT", "DATE", "PACKAGES", "SNAPSHOT"))
	sb.WriteString(strings.Repeat("-", 80) + "\n") //nolint:mnd // separator width

	for _, registry := range result.Registries {
		packages := 0
		if registry.Index != nil {
			packages = registry.Index.PackageCount()
		}
		dir := registry.Snapshot.Dir
		if registry.Snapshot.Reused {
			dir += " (reused)"
		}
		sb.WriteString(fmt.Sprintf("%-16s %-12s %-25s %-8d %s\n",
			registry.Source.Name, registry.Commit.ShortHash(), registry.Commit.Raw, packages, dir))
	}

	return sb.String()
}
