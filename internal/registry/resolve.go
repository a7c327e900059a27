package registry

import (
	"fmt"

	"github.com/winkty-official/winkty-ui-sub001/internal/manifest"
)

// ResolveDependency looks up a registry dependency. Local dependencies must
// name a manifest component; remote ones resolve to their URL unchanged.
func ResolveDependency(m *manifest.Manifest, dep manifest.Dependency) (ResolvedDependency, error) {
	switch d := dep.(type) {
	case manifest.LocalDependency:
		desc, err := m.Lookup(d.Name)
		if err != nil {
			return ResolvedDependency{}, err
		}
		return ResolvedDependency{Descriptor: &desc}, nil
	case manifest.RemoteDependency:
		return ResolvedDependency{Remote: d.URL}, nil
	default:
		return ResolvedDependency{}, fmt.Errorf("unsupported dependency %T", dep)
	}
}
