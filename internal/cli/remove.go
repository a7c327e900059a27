package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/winkty-official/winkty-ui-sub001/internal/registry"
)

var removeProject string

var removeCmd = &cobra.Command{
	Use:     "remove <name>",
	Aliases: []string{"uninstall"},
	Short:   "Remove an installed component from a project",
	Long: `Remove deletes the files an installed component added to the project.
Files that another installed component also uses are kept.`,
	Args: cobra.ExactArgs(1),
	RunE: runRemove,
}

func init() {
	removeCmd.Flags().StringVar(&removeProject, "project", "", "Project directory (default install.project)")
	rootCmd.AddCommand(removeCmd)
}

func runRemove(cmd *cobra.Command, args []string) error {
	m, err := loadManifest()
	if err != nil {
		return err
	}

	res, err := registry.RemoveComponent(m, args[0], projectDir(cmd, removeProject))
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, f := range res.Removed {
		fmt.Fprintf(out, "  - %s\n", f)
	}
	for _, f := range res.Kept {
		fmt.Fprintf(out, "  = %s (still used)\n", f)
	}
	fmt.Fprintf(out, "Removed %s\n", args[0])
	return nil
}
