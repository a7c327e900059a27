package registry

import (
	"fmt"
	"io"
	"strings"

	"github.com/winkty-official/winkty-ui-sub001/internal/manifest"
)

// BuildInstallPlan builds an install plan for the named component.
// If noDeps is true, only the root component is included (no registry
// dependency resolution); its package dependencies are still listed.
func BuildInstallPlan(m *manifest.Manifest, name, projectRoot string, noDeps bool) (*InstallPlan, error) {
	if noDeps {
		return buildNoDepsPlan(m, name)
	}

	root, err := BuildDependencyTree(m, name, projectRoot)
	if err != nil {
		return nil, err
	}

	components := FlattenTree(root)
	packages, warnings := mergePackages(components)

	return &InstallPlan{
		Root:       root,
		Components: components,
		Remote:     collectRemote(root),
		Packages:   packages,
		Warnings:   warnings,
		SkipCount:  countInstalled(root),
	}, nil
}

func buildNoDepsPlan(m *manifest.Manifest, name string) (*InstallPlan, error) {
	desc, err := m.Lookup(name)
	if err != nil {
		return nil, err
	}

	node := &DependencyNode{Name: name, Descriptor: &desc}
	components := []manifest.Descriptor{desc}
	packages, warnings := mergePackages(components)

	var skipped []string
	for _, dep := range desc.RegistryDependencies {
		skipped = append(skipped, dep.String())
	}
	if len(skipped) > 0 {
		warnings = append(warnings, fmt.Sprintf("registry dependencies not installed: %s", strings.Join(skipped, ", ")))
	}

	return &InstallPlan{
		Root:       node,
		Components: components,
		Packages:   packages,
		Warnings:   warnings,
	}, nil
}

func countInstalled(node *DependencyNode) int {
	if node == nil {
		return 0
	}
	count := 0
	if node.Installed {
		count = 1
	}
	for _, child := range node.Children {
		count += countInstalled(child)
	}
	return count
}

// PrintTree prints the dependency tree with box-drawing characters.
func PrintTree(w io.Writer, node *DependencyNode, prefix string, isLast bool) {
	if node == nil {
		return
	}

	connector := "├── "
	if isLast {
		connector = "└── "
	}

	label := node.Label()
	if node.Deduped {
		label += " (deduped)"
	} else if node.Installed {
		label += " (already installed)"
	}

	// For the root node, don't print a connector.
	if prefix == "" {
		fmt.Fprintf(w, "  %s\n", label)
	} else {
		fmt.Fprintf(w, "  %s%s%s\n", prefix, connector, label)
	}

	childPrefix := prefix
	if prefix != "" {
		if isLast {
			childPrefix += "    "
		} else {
			childPrefix += "│   "
		}
	} else {
		childPrefix = " "
	}

	for i, child := range node.Children {
		PrintTree(w, child, childPrefix, i == len(node.Children)-1)
	}
}

// PrintPlan prints the full install plan summary.
func PrintPlan(w io.Writer, plan *InstallPlan) {
	fmt.Fprintln(w, "Resolving dependencies...")
	fmt.Fprintln(w)

	PrintTree(w, plan.Root, "", true)
	fmt.Fprintln(w)

	counts := map[manifest.Kind]int{}
	for _, d := range plan.Components {
		counts[d.Kind]++
	}
	var parts []string
	for _, kind := range manifest.ValidKinds {
		if n := counts[kind]; n > 0 {
			parts = append(parts, fmt.Sprintf("%d %s", n, kind))
		}
	}
	if len(parts) > 0 {
		fmt.Fprintf(w, "  Install: %d %s (%s)\n", len(plan.Components),
			pluralize("component", len(plan.Components)), strings.Join(parts, ", "))
	}

	if len(plan.Packages) > 0 {
		pkgs := make([]string, len(plan.Packages))
		for i, p := range plan.Packages {
			pkgs[i] = p.String()
		}
		fmt.Fprintf(w, "  Packages: %s\n", strings.Join(pkgs, " "))
	}

	for _, url := range plan.Remote {
		fmt.Fprintf(w, "  Remote: %s\n", url)
	}

	if plan.SkipCount > 0 {
		fmt.Fprintf(w, "  (%d %s already installed, will be skipped)\n",
			plan.SkipCount, pluralize("component", plan.SkipCount))
	}

	for _, warning := range plan.Warnings {
		fmt.Fprintf(w, "\n  Warning: %s\n", warning)
	}

	fmt.Fprintln(w)
}

func pluralize(noun string, n int) string {
	if n == 1 {
		return noun
	}
	return noun + "s"
}
