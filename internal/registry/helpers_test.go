package registry

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/winkty-official/winkty-ui-sub001/internal/manifest"
)

const popoverURL = "https://ui.shadcn.com/r/styles/default/popover.json"

func local(name string) manifest.Dependency { return manifest.LocalDependency{Name: name} }

func pkg(name, constraint string) manifest.PackageDependency {
	return manifest.PackageDependency{Name: name, Constraint: constraint}
}

// testManifest mirrors the shape of the shipped catalog: a block on top of
// components that share input.tsx.
func testManifest(t *testing.T) *manifest.Manifest {
	t.Helper()
	m, err := manifest.New("test", "", []manifest.Descriptor{
		{
			Name:                "input",
			Kind:                manifest.KindUI,
			PackageDependencies: []manifest.PackageDependency{pkg("clsx", "")},
			Files:               []string{"components/ui/input.tsx", "lib/utils.ts"},
		},
		{
			Name:                 "auto-complete",
			Kind:                 manifest.KindUI,
			RegistryDependencies: []manifest.Dependency{local("input"), manifest.RemoteDependency{URL: popoverURL}},
			PackageDependencies:  []manifest.PackageDependency{pkg("framer-motion", "^11.0.0"), pkg("lucide-react", "")},
			Files:                []string{"components/ui/auto-complete.tsx", "components/ui/input.tsx"},
		},
		{
			Name:                "radio-group",
			Kind:                manifest.KindUI,
			PackageDependencies: []manifest.PackageDependency{pkg("framer-motion", "11.3.0")},
			Files:               []string{"components/ui/radio-group.tsx"},
		},
		{
			Name:                 "payment-form",
			Kind:                 manifest.KindBlock,
			RegistryDependencies: []manifest.Dependency{local("input"), local("auto-complete"), local("radio-group")},
			PackageDependencies:  []manifest.PackageDependency{pkg("lucide-react", ""), pkg("react-hook-form", "^7.51.0")},
			Files:                []string{"components/blocks/payment-form.tsx"},
		},
	})
	if err != nil {
		t.Fatalf("manifest.New: %v", err)
	}
	return m
}

// writeSources creates every file of every component under a temp dir and
// returns it.
func writeSources(t *testing.T, m *manifest.Manifest) string {
	t.Helper()
	root := t.TempDir()
	for _, d := range m.Components() {
		for _, f := range d.Files {
			path := filepath.Join(root, filepath.FromSlash(f))
			if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
				t.Fatal(err)
			}
			if err := os.WriteFile(path, []byte("// "+f+"\n"), 0644); err != nil {
				t.Fatal(err)
			}
		}
	}
	return root
}

func names(descs []manifest.Descriptor) []string {
	out := make([]string, len(descs))
	for i, d := range descs {
		out[i] = d.Name
	}
	return out
}
