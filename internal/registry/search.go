package registry

import (
	"strings"

	"github.com/winkty-official/winkty-ui-sub001/internal/manifest"
)

// Query filters manifest components. Zero fields match everything.
type Query struct {
	Text    string        // case-insensitive substring of name, title or description
	Kind    manifest.Kind // exact kind
	Package string        // package dependency name, e.g. "framer-motion"
	Dep     string        // registry dependency, local name or remote URL substring
}

// Search returns the components matching q, in manifest order.
func Search(m *manifest.Manifest, q Query) []manifest.Descriptor {
	var result []manifest.Descriptor
	for _, d := range m.Components() {
		if q.matches(d) {
			result = append(result, d)
		}
	}
	return result
}

func (q Query) matches(d manifest.Descriptor) bool {
	if q.Kind != "" && d.Kind != q.Kind {
		return false
	}

	if q.Text != "" {
		text := strings.ToLower(q.Text)
		if !strings.Contains(strings.ToLower(d.Name), text) &&
			!strings.Contains(strings.ToLower(d.Title), text) &&
			!strings.Contains(strings.ToLower(d.Description), text) {
			return false
		}
	}

	if q.Package != "" {
		found := false
		for _, p := range d.PackageDependencies {
			if strings.EqualFold(p.Name, q.Package) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}

	if q.Dep != "" {
		found := false
		for _, dep := range d.RegistryDependencies {
			switch dep := dep.(type) {
			case manifest.LocalDependency:
				found = dep.Name == q.Dep
			case manifest.RemoteDependency:
				found = strings.Contains(dep.URL, q.Dep)
			}
			if found {
				break
			}
		}
		if !found {
			return false
		}
	}

	return true
}
