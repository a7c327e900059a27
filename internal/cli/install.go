package cli

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/winkty-official/winkty-ui-sub001/internal/logging"
	"github.com/winkty-official/winkty-ui-sub001/internal/registry"
)

var (
	addProject string
	addSource  string
	addNoDeps  bool
	addYes     bool
)

var addCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Add a component and its dependencies to a project",
	Long: `Add copies a component's files, and those of every local registry
dependency, into a project. Remote dependencies and npm packages are listed
for you to install. Use --no-deps to copy only the named component.`,
	Args: cobra.ExactArgs(1),
	RunE: runAdd,
}

func init() {
	addCmd.Flags().StringVar(&addProject, "project", "", "Project directory (default install.project)")
	addCmd.Flags().StringVar(&addSource, "source", "", "Root the component files are read from (default build.source)")
	addCmd.Flags().BoolVar(&addNoDeps, "no-deps", false, "Install only the specified component, skip registry dependencies")
	addCmd.Flags().BoolVarP(&addYes, "yes", "y", false, "Skip confirmation prompt")
	rootCmd.AddCommand(addCmd)
}

func runAdd(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	logger := logging.FromContext(cmd.Context())

	m, err := loadManifest()
	if err != nil {
		return err
	}

	project := projectDir(cmd, addProject)
	source := state.settings.Build.Source
	if cmd.Flags().Changed("source") {
		source = addSource
	}

	plan, err := registry.BuildInstallPlan(m, args[0], project, addNoDeps)
	if err != nil {
		return err
	}

	if len(plan.Components) == 0 {
		fmt.Fprintln(out, "Nothing to install, all components are already installed.")
		return nil
	}

	registry.PrintPlan(out, plan)

	if !addYes {
		ok, err := confirm(cmd, "? Proceed with installation? (Y/n) ")
		if err != nil {
			return err
		}
		if !ok {
			fmt.Fprintln(out, "Installation cancelled.")
			return nil
		}
	}

	fmt.Fprintln(out, "Installing...")

	installed, failed := 0, 0
	for _, d := range plan.Components {
		if _, err := registry.InstallComponent(d, source, project); err != nil {
			logger.Error("install failed", "component", d.Name, "error", err)
			fmt.Fprintf(out, "  ✗ %s: %s (%v)\n", d.Kind, d.Name, err)
			failed++
			continue
		}
		fmt.Fprintf(out, "  ✓ %s: %s\n", d.Kind, d.Name)
		installed++
	}

	fmt.Fprintln(out)
	if installed > 0 {
		fmt.Fprintf(out, "✓ Installed %d %s.", installed, plural(installed, "component", "components"))
		if plan.SkipCount > 0 {
			fmt.Fprintf(out, " %d already installed (skipped).", plan.SkipCount)
		}
		fmt.Fprintln(out)
	}
	if len(plan.Packages) > 0 {
		pkgs := make([]string, len(plan.Packages))
		for i, p := range plan.Packages {
			pkgs[i] = p.String()
		}
		fmt.Fprintf(out, "  Install packages: npm install %s\n", strings.Join(pkgs, " "))
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d components failed to install", failed, len(plan.Components))
	}
	return nil
}

// confirm asks a yes/no question on the command's input. An empty answer
// means yes.
func confirm(cmd *cobra.Command, prompt string) (bool, error) {
	fmt.Fprint(cmd.OutOrStdout(), prompt)
	scanner := bufio.NewScanner(cmd.InOrStdin())
	if !scanner.Scan() {
		return true, scanner.Err()
	}
	answer := strings.TrimSpace(strings.ToLower(scanner.Text()))
	return answer == "" || answer == "y" || answer == "yes", nil
}
