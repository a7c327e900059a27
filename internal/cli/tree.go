package cli

import (
	"github.com/spf13/cobra"

	"github.com/winkty-official/winkty-ui-sub001/internal/registry"
)

var treeProject string

var treeCmd = &cobra.Command{
	Use:   "tree <name>",
	Short: "Show the dependency tree and install plan of a component",
	Args:  cobra.ExactArgs(1),
	RunE:  runTree,
}

func init() {
	treeCmd.Flags().StringVar(&treeProject, "project", "", "Project directory used to detect installed components (default install.project)")
	rootCmd.AddCommand(treeCmd)
}

func runTree(cmd *cobra.Command, args []string) error {
	m, err := loadManifest()
	if err != nil {
		return err
	}

	plan, err := registry.BuildInstallPlan(m, args[0], projectDir(cmd, treeProject), false)
	if err != nil {
		return err
	}
	registry.PrintPlan(cmd.OutOrStdout(), plan)
	return nil
}

// projectDir returns the --project flag value when set, else install.project.
func projectDir(cmd *cobra.Command, flagValue string) string {
	if cmd.Flags().Changed("project") {
		return flagValue
	}
	return state.settings.Install.ProjectDir
}
