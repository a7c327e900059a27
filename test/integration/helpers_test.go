//go:build integration

package integration_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/winkty-official/winkty-ui-sub001/internal/branding"
	"github.com/winkty-official/winkty-ui-sub001/internal/manifest"
)

// testEnv holds paths to isolated test directories.
type testEnv struct {
	SourceDir  string // component sources, laid out like the catalog's file paths
	DestDir    string // packaging output
	ProjectDir string // a consumer project components get installed into
}

// setupTestEnv creates isolated temp directories and clears WINKTY_*
// overrides so tests never pick up the developer's environment.
func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()

	for _, key := range []string{"COPY_SOURCE", "COPY_DEST", "MANIFEST"} {
		t.Setenv(branding.EnvVar(key), "")
	}

	root := t.TempDir()
	return &testEnv{
		SourceDir:  filepath.Join(root, "src"),
		DestDir:    filepath.Join(root, "public", "r"),
		ProjectDir: filepath.Join(root, "app"),
	}
}

// setupSources writes every file the manifest lists under env.SourceDir,
// skipping the named components. File content names the file so copies are
// easy to check.
func setupSources(t *testing.T, env *testEnv, m *manifest.Manifest, skip ...string) {
	t.Helper()
	skipped := map[string]bool{}
	for _, name := range skip {
		skipped[name] = true
	}
	for _, d := range m.Components() {
		if skipped[d.Name] {
			continue
		}
		for _, f := range d.Files {
			writeFile(t, filepath.Join(env.SourceDir, filepath.FromSlash(f)), sourceContent(f))
		}
	}
}

func sourceContent(file string) string {
	return "// " + file + "\nexport {}\n"
}

// writeFile creates a file at the given path with the given content.
func writeFile(t *testing.T, path, content string) {
	t.Helper()
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("creating dir %s: %v", dir, err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
}

// assertFileExists fails the test if the file does not exist.
func assertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err != nil {
		t.Errorf("expected file to exist: %s (error: %v)", path, err)
	}
}

// assertFileNotExists fails the test if the file exists.
func assertFileNotExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err == nil {
		t.Errorf("expected file NOT to exist: %s", path)
	}
}

// assertFileContains fails if the file doesn't exist or doesn't contain substr.
func assertFileContains(t *testing.T, path, substr string) {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Errorf("reading %s: %v", path, err)
		return
	}
	if !strings.Contains(string(data), substr) {
		t.Errorf("file %s does not contain %q.\nContents:\n%s", path, substr, string(data))
	}
}
