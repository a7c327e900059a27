package registry

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/winkty-official/winkty-ui-sub001/internal/manifest"
)

func TestResolveDependency(t *testing.T) {
	m := testManifest(t)

	r, err := ResolveDependency(m, local("input"))
	require.NoError(t, err)
	require.False(t, r.IsRemote())
	require.Equal(t, "input", r.Descriptor.Name)

	r, err = ResolveDependency(m, manifest.RemoteDependency{URL: popoverURL})
	require.NoError(t, err)
	require.True(t, r.IsRemote())
	require.Nil(t, r.Descriptor)

	_, err = ResolveDependency(m, local("ghost-component"))
	require.ErrorIs(t, err, manifest.ErrNotFound)
}

func TestBuildDependencyTree(t *testing.T) {
	m := testManifest(t)

	root, err := BuildDependencyTree(m, "payment-form", "")
	require.NoError(t, err)
	require.Equal(t, "payment-form", root.Name)
	require.Len(t, root.Children, 3)

	input, autoComplete, radio := root.Children[0], root.Children[1], root.Children[2]
	require.False(t, input.Deduped)
	require.Equal(t, "auto-complete", autoComplete.Name)
	require.False(t, radio.Deduped)

	// auto-complete -> input (deduped) and the remote popover.
	require.Len(t, autoComplete.Children, 2)
	require.True(t, autoComplete.Children[0].Deduped, "second input reference should be deduped")
	require.Equal(t, popoverURL, autoComplete.Children[1].Remote)
}

func TestBuildDependencyTreeUnknownRoot(t *testing.T) {
	_, err := BuildDependencyTree(testManifest(t), "ghost-component", "")
	if !errors.Is(err, manifest.ErrNotFound) {
		t.Fatalf("error = %v, want ErrNotFound", err)
	}
}

func cyclicManifest(t *testing.T) *manifest.Manifest {
	t.Helper()
	m, err := manifest.New("test", "", []manifest.Descriptor{
		{Name: "a", Kind: manifest.KindUI, Files: []string{"a.tsx"}, RegistryDependencies: []manifest.Dependency{local("b")}},
		{Name: "b", Kind: manifest.KindUI, Files: []string{"b.tsx"}, RegistryDependencies: []manifest.Dependency{local("c")}},
		{Name: "c", Kind: manifest.KindUI, Files: []string{"c.tsx"}, RegistryDependencies: []manifest.Dependency{local("a")}},
		{Name: "d", Kind: manifest.KindUI, Files: []string{"d.tsx"}, RegistryDependencies: []manifest.Dependency{local("b")}},
	})
	require.NoError(t, err, "the manifest itself does not reject cycles")
	return m
}

func TestBuildDependencyTreeCycle(t *testing.T) {
	_, err := BuildDependencyTree(cyclicManifest(t), "d", "")

	var cycleErr *CycleError
	require.ErrorAs(t, err, &cycleErr)
	require.ErrorIs(t, err, ErrCycle)
	if diff := cmp.Diff([]string{"b", "c", "a", "b"}, cycleErr.Cycle); diff != "" {
		t.Errorf("cycle mismatch (-want +got):\n%s", diff)
	}
	require.Contains(t, err.Error(), "b -> c -> a -> b")
}

func TestBuildDependencyTreeInstalledDetection(t *testing.T) {
	m := testManifest(t)
	project := t.TempDir()

	idx, err := LoadInstalled(project)
	require.NoError(t, err)
	idx.Components["input"] = InstalledComponent{Files: []string{"components/ui/input.tsx"}}
	require.NoError(t, idx.Save(project))

	root, err := BuildDependencyTree(m, "auto-complete", project)
	require.NoError(t, err)
	require.True(t, root.Children[0].Installed, "input should be marked as installed")
	require.False(t, root.Installed)
}

func TestFlattenTree(t *testing.T) {
	root, err := BuildDependencyTree(testManifest(t), "payment-form", "")
	require.NoError(t, err)

	got := names(FlattenTree(root))
	want := []string{"input", "auto-complete", "radio-group", "payment-form"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("FlattenTree mismatch (-want +got):\n%s", diff)
	}
}

func TestOrder(t *testing.T) {
	order, err := Order(testManifest(t))
	require.NoError(t, err)
	want := []string{"input", "auto-complete", "radio-group", "payment-form"}
	if diff := cmp.Diff(want, order); diff != "" {
		t.Errorf("Order mismatch (-want +got):\n%s", diff)
	}

	_, err = Order(cyclicManifest(t))
	require.ErrorIs(t, err, ErrCycle)
}

func TestPrintTree(t *testing.T) {
	root, err := BuildDependencyTree(testManifest(t), "auto-complete", "")
	require.NoError(t, err)

	var buf bytes.Buffer
	PrintTree(&buf, root, "", true)
	out := buf.String()

	for _, want := range []string{
		"ui: auto-complete",
		"├── ui: input",
		"└── remote: " + popoverURL,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("tree output missing %q:\n%s", want, out)
		}
	}
}
