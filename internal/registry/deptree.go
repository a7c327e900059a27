package registry

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/winkty-official/winkty-ui-sub001/internal/manifest"
)

// ErrCycle is wrapped by every *CycleError.
var ErrCycle = errors.New("dependency cycle")

// CycleError reports a cycle among local registry dependencies. Cycle
// starts and ends with the same component.
type CycleError struct {
	Cycle []string
}

func (e *CycleError) Error() string {
	return fmt.Sprintf("%v: %s", ErrCycle, strings.Join(e.Cycle, " -> "))
}

func (e *CycleError) Unwrap() error { return ErrCycle }

// BuildDependencyTree resolves a component and recursively builds its
// dependency tree. It marks nodes as Deduped if they appear more than once
// in the tree, and as Installed if the project at projectRoot records them.
// An empty projectRoot skips installed detection.
func BuildDependencyTree(m *manifest.Manifest, name, projectRoot string) (*DependencyNode, error) {
	installed := &InstalledIndex{}
	if projectRoot != "" {
		var err error
		if installed, err = LoadInstalled(projectRoot); err != nil {
			return nil, err
		}
	}
	b := &treeBuilder{m: m, installed: installed, seen: make(map[string]bool)}
	return b.node(name)
}

type treeBuilder struct {
	m         *manifest.Manifest
	installed *InstalledIndex
	seen      map[string]bool
	path      []string
}

func (b *treeBuilder) node(name string) (*DependencyNode, error) {
	if i := slices.Index(b.path, name); i >= 0 {
		cycle := append(slices.Clone(b.path[i:]), name)
		return nil, &CycleError{Cycle: cycle}
	}

	node := &DependencyNode{Name: name}

	desc, err := b.m.Lookup(name)
	if err != nil {
		if len(b.path) > 0 {
			return nil, fmt.Errorf("resolving dependencies of %s: %w", b.path[len(b.path)-1], err)
		}
		return nil, err
	}
	node.Descriptor = &desc

	if b.seen[name] {
		node.Deduped = true
		return node, nil
	}
	b.seen[name] = true
	node.Installed = b.installed.Has(name)

	b.path = append(b.path, name)
	defer func() { b.path = b.path[:len(b.path)-1] }()

	for _, dep := range desc.RegistryDependencies {
		resolved, err := ResolveDependency(b.m, dep)
		if err != nil {
			return nil, fmt.Errorf("resolving dependencies of %s: %w", name, err)
		}
		if resolved.IsRemote() {
			node.Children = append(node.Children, &DependencyNode{Remote: resolved.Remote})
			continue
		}
		child, err := b.node(resolved.Descriptor.Name)
		if err != nil {
			return nil, err
		}
		node.Children = append(node.Children, child)
	}

	return node, nil
}

// FlattenTree returns all components in topological order (dependencies
// first), with duplicates, remote items and already-installed components
// removed.
func FlattenTree(root *DependencyNode) []manifest.Descriptor {
	seen := make(map[string]bool)
	var result []manifest.Descriptor
	flattenRecursive(root, seen, &result)
	return result
}

func flattenRecursive(node *DependencyNode, seen map[string]bool, result *[]manifest.Descriptor) {
	if node == nil || node.Remote != "" || node.Deduped || node.Installed || seen[node.Name] {
		return
	}

	// Process children first (dependencies before dependents).
	for _, child := range node.Children {
		flattenRecursive(child, seen, result)
	}

	if !seen[node.Name] && node.Descriptor != nil {
		seen[node.Name] = true
		*result = append(*result, *node.Descriptor)
	}
}

// collectRemote returns remote dependency URLs reachable from root, in
// tree order, deduplicated.
func collectRemote(root *DependencyNode) []string {
	var urls []string
	var walk func(*DependencyNode)
	walk = func(n *DependencyNode) {
		if n == nil || n.Installed {
			return
		}
		if n.Remote != "" {
			if !slices.Contains(urls, n.Remote) {
				urls = append(urls, n.Remote)
			}
			return
		}
		for _, c := range n.Children {
			walk(c)
		}
	}
	walk(root)
	return urls
}

// Order returns every manifest component in a deterministic dependency
// order (dependencies before dependents, ties broken by name), or a
// *CycleError naming the first cycle found.
func Order(m *manifest.Manifest) ([]string, error) {
	const (
		unvisited = iota
		visiting
		done
	)
	state := make(map[string]int, m.Len())
	var order, path []string

	var visit func(name string) error
	visit = func(name string) error {
		switch state[name] {
		case done:
			return nil
		case visiting:
			i := slices.Index(path, name)
			return &CycleError{Cycle: append(slices.Clone(path[i:]), name)}
		}
		state[name] = visiting
		path = append(path, name)

		desc, err := m.Lookup(name)
		if err != nil {
			return err
		}
		deps := desc.LocalDependencies()
		slices.Sort(deps)
		for _, dep := range deps {
			if err := visit(dep); err != nil {
				return err
			}
		}

		path = path[:len(path)-1]
		state[name] = done
		order = append(order, name)
		return nil
	}

	names := m.Names()
	slices.Sort(names)
	for _, name := range names {
		if err := visit(name); err != nil {
			return nil, err
		}
	}
	return order, nil
}
