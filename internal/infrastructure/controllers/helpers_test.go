//go:build unit

package controllers_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/regtravel/internal/domain/entities"
)

// runController executes ctrl as cobra would, with the root persistent flags
// declared locally, and returns what it printed.
func runController(t *testing.T, ctrl entities.Controller, args ...string) (string, error) {
	t.Helper()

	bind := ctrl.GetBind()
	cmd := &cobra.Command{
		Use:           bind.Use,
		Args:          bind.Args,
		RunE:          ctrl.Execute,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.Flags().StringP("config", "c", "", "")
	cmd.Flags().String("root", "", "")
	cmd.Flags().BoolP("verbose", "v", false, "")
	ctrl.AddFlags(cmd)

	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), err
}

func writeConfig(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "regtravel.yaml")
	content := "root: " + t.TempDir() + "\n" +
		"registries:\n" +
		"  - name: Main\n    url: https://example.com/main.git\n" +
		"  - name: Extra\n    url: https://example.com/extra.git\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}
