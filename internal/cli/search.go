package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/winkty-official/winkty-ui-sub001/internal/manifest"
	"github.com/winkty-official/winkty-ui-sub001/internal/registry"
)

var (
	searchKindFilter    string
	searchPackageFilter string
	searchDepFilter     string
	searchJSON          bool
)

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search registry components",
	Long: `Search components by name, title and description (case-insensitive
substring). Use --kind, --package and --dep to narrow the results.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().StringVar(&searchKindFilter, "kind", "", "Filter by kind (ui, block)")
	searchCmd.Flags().StringVar(&searchPackageFilter, "package", "", "Filter by npm package dependency (e.g., framer-motion)")
	searchCmd.Flags().StringVar(&searchDepFilter, "dep", "", "Filter by registry dependency (component name or URL fragment)")
	searchCmd.Flags().BoolVar(&searchJSON, "json", false, "Output in JSON format")
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	q, err := buildQuery(args, searchKindFilter, searchPackageFilter, searchDepFilter)
	if err != nil {
		return err
	}

	m, err := loadManifest()
	if err != nil {
		return err
	}

	found := registry.Search(m, q)
	entries := make([]componentEntry, len(found))
	for i, d := range found {
		entries[i] = newComponentEntry(d)
	}
	if searchJSON {
		return printEntriesJSON(cmd, entries)
	}
	if len(found) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), noMatchMessage(q))
		return nil
	}
	return printEntriesTable(cmd, entries)
}

func buildQuery(args []string, kind, pkg, dep string) (registry.Query, error) {
	q := registry.Query{
		Package: strings.TrimSpace(pkg),
		Dep:     strings.TrimSpace(dep),
	}
	if len(args) > 0 {
		q.Text = strings.TrimSpace(args[0])
	}
	if kind != "" {
		k, err := manifest.ParseKind(kind)
		if err != nil {
			return registry.Query{}, err
		}
		q.Kind = k
	}
	return q, nil
}

func noMatchMessage(q registry.Query) string {
	msg := "No components found"
	if q.Text != "" {
		msg += fmt.Sprintf(" matching %q", q.Text)
	}
	if q.Kind != "" {
		msg += fmt.Sprintf(" with --kind=%s", q.Kind)
	}
	if q.Package != "" {
		msg += fmt.Sprintf(" with --package=%s", q.Package)
	}
	if q.Dep != "" {
		msg += fmt.Sprintf(" with --dep=%s", q.Dep)
	}
	return msg + "."
}
