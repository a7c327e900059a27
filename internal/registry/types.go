package registry

import (
	"io"

	"github.com/winkty-official/winkty-ui-sub001/internal/manifest"
)

// ResolvedDependency is a registry dependency after lookup. Exactly one of
// Descriptor and Remote is set.
type ResolvedDependency struct {
	Descriptor *manifest.Descriptor
	Remote     string
}

// IsRemote reports whether the dependency points at another registry.
func (r ResolvedDependency) IsRemote() bool { return r.Remote != "" }

// DependencyNode represents a node in the dependency tree. Remote nodes are
// always leaves.
type DependencyNode struct {
	Name       string
	Remote     string // set for remote dependencies, Name is then empty
	Descriptor *manifest.Descriptor
	Children   []*DependencyNode
	Deduped    bool // true if this component was already seen earlier in the tree
	Installed  bool // true if the project already records it as installed
}

// Label returns the display label of the node.
func (n *DependencyNode) Label() string {
	if n.Remote != "" {
		return "remote: " + n.Remote
	}
	kind := manifest.KindUI
	if n.Descriptor != nil {
		kind = n.Descriptor.Kind
	}
	return string(kind) + ": " + n.Name
}

// InstallPlan summarizes what will be installed.
type InstallPlan struct {
	Root       *DependencyNode
	Components []manifest.Descriptor        // flattened, deduplicated, dependencies first
	Remote     []string                     // remote registry items to fetch, deduplicated
	Packages   []manifest.PackageDependency // merged npm dependencies
	Warnings   []string
	SkipCount  int // already-installed count
}

// InstallResult captures the outcome of an install operation.
type InstallResult struct {
	Installed int
	Skipped   int
	Files     []string
	Warnings  []string
}

// ConfirmFunc is called to confirm installation. Returns true to proceed.
type ConfirmFunc func() (bool, error)

// ProgressFunc is called to report progress during installation.
type ProgressFunc func(w io.Writer, name string, err error)
