package cli

import (
	"encoding/json"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/winkty-official/winkty-ui-sub001/internal/manifest"
)

var (
	listKindFilter string
	listJSON       bool
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List registry components",
	Long:  `List every component in the manifest, in manifest order.`,
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func init() {
	listCmd.Flags().StringVar(&listKindFilter, "kind", "", "Filter by kind (ui, block)")
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output in JSON format")
	rootCmd.AddCommand(listCmd)
}

// componentEntry is a descriptor as shown by list and search.
type componentEntry struct {
	Kind                 string   `json:"kind"`
	Name                 string   `json:"name"`
	Title                string   `json:"title,omitempty"`
	Description          string   `json:"description,omitempty"`
	RegistryDependencies []string `json:"registryDependencies,omitempty"`
	Dependencies         []string `json:"dependencies,omitempty"`
	Files                []string `json:"files"`
}

func newComponentEntry(d manifest.Descriptor) componentEntry {
	return componentEntry{
		Kind:                 string(d.Kind),
		Name:                 d.Name,
		Title:                d.Title,
		Description:          d.Description,
		RegistryDependencies: d.RegistryDependencyStrings(),
		Dependencies:         d.PackageDependencyStrings(),
		Files:                d.Files,
	}
}

func runList(cmd *cobra.Command, args []string) error {
	m, err := loadManifest()
	if err != nil {
		return err
	}

	var kind manifest.Kind
	if listKindFilter != "" {
		if kind, err = manifest.ParseKind(listKindFilter); err != nil {
			return err
		}
	}

	entries := []componentEntry{}
	for _, d := range m.Components() {
		if kind != "" && d.Kind != kind {
			continue
		}
		entries = append(entries, newComponentEntry(d))
	}

	if listJSON {
		return printEntriesJSON(cmd, entries)
	}
	if len(entries) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No components found.")
		return nil
	}
	return printEntriesTable(cmd, entries)
}

func printEntriesTable(cmd *cobra.Command, entries []componentEntry) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "KIND\tNAME\tDEPENDENCIES\tFILES")
	for _, e := range entries {
		deps := "-"
		if len(e.RegistryDependencies) > 0 {
			deps = strings.Join(e.RegistryDependencies, ", ")
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\n", e.Kind, e.Name, deps, len(e.Files))
	}
	return w.Flush()
}

func printEntriesJSON(cmd *cobra.Command, entries []componentEntry) error {
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return err
}
