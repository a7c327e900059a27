package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/winkty-official/winkty-ui-sub001/internal/manifest"
	"github.com/winkty-official/winkty-ui-sub001/internal/registry"
)

var validateCmd = &cobra.Command{
	Use:   "validate [path]",
	Short: "Validate a registry manifest",
	Long: `Validate checks a manifest file against the manifest schema and the
cross-component rules (unique names, resolvable dependencies, relative file
paths), and reports every problem found. Dependency cycles are reported too,
since they make a component impossible to install.

With no path, the configured manifest (or the built-in catalog) is checked.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	var (
		m   *manifest.Manifest
		err error
	)
	source := "built-in catalog"
	switch {
	case len(args) == 1:
		source = args[0]
		m, err = manifest.ParseFile(source)
	default:
		if state.settings.Manifest != "" {
			source = state.settings.Manifest
		}
		m, err = loadManifest()
	}

	var verrs *manifest.ValidationErrors
	if errors.As(err, &verrs) {
		fmt.Fprintf(out, "✗ %s\n", source)
		for _, fe := range verrs.Errors {
			fmt.Fprintf(out, "  - %s: %s\n", fe.Field, fe.Message)
		}
		return fmt.Errorf("%s: %d validation %s", source, verrs.Len(), plural(verrs.Len(), "error", "errors"))
	}
	if err != nil {
		return err
	}

	if _, err := registry.Order(m); err != nil {
		fmt.Fprintf(out, "✗ %s\n  - %v\n", source, err)
		return fmt.Errorf("%s: %w", source, err)
	}

	fmt.Fprintf(out, "✓ %s: %d %s\n", source, m.Len(), plural(m.Len(), "component", "components"))
	return nil
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
