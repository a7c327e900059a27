package manifest

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

const testdataDir = "testdata"

func testPath(name string) string {
	return filepath.Join(testdataDir, name)
}

func TestParseFile_ValidYAML(t *testing.T) {
	m, err := ParseFile(testPath("valid.yaml"))
	if err != nil {
		t.Fatalf("ParseFile error: %v", err)
	}

	if m.Name() != "test-registry" {
		t.Errorf("Name() = %q, want %q", m.Name(), "test-registry")
	}
	if m.Homepage() != "https://example.com" {
		t.Errorf("Homepage() = %q, want %q", m.Homepage(), "https://example.com")
	}
	if diff := cmp.Diff([]string{"input", "auto-complete", "payment-form"}, m.Names()); diff != "" {
		t.Errorf("Names() mismatch (-want +got):\n%s", diff)
	}

	ac, err := m.Lookup("auto-complete")
	if err != nil {
		t.Fatalf("Lookup(auto-complete): %v", err)
	}
	if ac.Kind != KindUI {
		t.Errorf("Kind = %q, want %q (registry: prefix should be normalized)", ac.Kind, KindUI)
	}
	if ac.Title != "Auto Complete" {
		t.Errorf("Title = %q, want %q", ac.Title, "Auto Complete")
	}

	wantDeps := []Dependency{
		LocalDependency{Name: "input"},
		RemoteDependency{URL: "https://ui.shadcn.com/r/styles/default/popover.json"},
	}
	if diff := cmp.Diff(wantDeps, ac.RegistryDependencies); diff != "" {
		t.Errorf("RegistryDependencies mismatch (-want +got):\n%s", diff)
	}

	wantPkgs := []PackageDependency{
		{Name: "lucide-react"},
		{Name: "@radix-ui/react-popover", Constraint: "^1.1.0"},
	}
	if diff := cmp.Diff(wantPkgs, ac.PackageDependencies); diff != "" {
		t.Errorf("PackageDependencies mismatch (-want +got):\n%s", diff)
	}

	wantFiles := []string{"components/ui/auto-complete.tsx", "components/ui/input.tsx"}
	if diff := cmp.Diff(wantFiles, ac.Files); diff != "" {
		t.Errorf("Files mismatch (-want +got):\n%s", diff)
	}
}

func TestParseFile_ValidJSON(t *testing.T) {
	m, err := ParseFile(testPath("valid.json"))
	if err != nil {
		t.Fatalf("ParseFile error: %v", err)
	}
	if m.Name() != "json-registry" {
		t.Errorf("Name() = %q, want %q", m.Name(), "json-registry")
	}
	if m.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", m.Len())
	}
	pw, err := m.Lookup("password-input")
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	if diff := cmp.Diff([]string{"input"}, pw.LocalDependencies()); diff != "" {
		t.Errorf("LocalDependencies mismatch (-want +got):\n%s", diff)
	}
}

func TestParseFile_BareList(t *testing.T) {
	m, err := ParseFile(testPath("list.yaml"))
	if err != nil {
		t.Fatalf("ParseFile error: %v", err)
	}
	if diff := cmp.Diff([]string{"typing-text", "blur-text"}, m.Names()); diff != "" {
		t.Errorf("Names() mismatch (-want +got):\n%s", diff)
	}
	if m.Name() == "" {
		t.Error("expected default registry name for a bare list document")
	}
}

func TestParseFile_ReportsEveryViolation(t *testing.T) {
	_, err := ParseFile(testPath("invalid-many.yaml"))
	if err == nil {
		t.Fatal("expected validation error, got nil")
	}

	var verrs *ValidationErrors
	if !errors.As(err, &verrs) {
		t.Fatalf("expected *ValidationErrors, got %T: %v", err, err)
	}

	wantFields := []string{
		"components[1].name",                    // duplicate name
		"components[2].files",                   // empty files (schema)
		"components[3].kind",                    // invalid kind (schema)
		"components[4].files[0]",                // ../ escape
		"components[4].files[1]",                // absolute path
		"components[5].registryDependencies[0]", // unknown component
		"components[5].registryDependencies[1]", // self dependency
	}
	got := make(map[string]bool)
	for _, fe := range verrs.Errors {
		got[fe.Field] = true
	}
	for _, f := range wantFields {
		if !got[f] {
			t.Errorf("missing violation for %s; got:\n%v", f, err)
		}
	}
	if verrs.Len() < len(wantFields) {
		t.Errorf("Len() = %d, want at least %d", verrs.Len(), len(wantFields))
	}

	if !strings.Contains(err.Error(), "validation errors") {
		t.Errorf("error message should summarize all errors, got: %v", err)
	}
}

func TestParseFile_DuplicateNameMentionsFirstDefinition(t *testing.T) {
	_, err := ParseFile(testPath("invalid-many.yaml"))
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), `duplicate name "input" (first defined at components[0])`) {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestParseFile_MissingComponents(t *testing.T) {
	_, err := ParseFile(testPath("invalid-missing-components.yaml"))
	var verrs *ValidationErrors
	if !errors.As(err, &verrs) {
		t.Fatalf("expected *ValidationErrors, got %v", err)
	}
}

func TestParseFile_InvalidYAML(t *testing.T) {
	_, err := ParseFile(testPath("invalid-not-yaml.yaml"))
	if err == nil {
		t.Fatal("expected error for invalid YAML, got nil")
	}
	var verrs *ValidationErrors
	if errors.As(err, &verrs) {
		t.Error("a syntax error should not be reported as a validation error")
	}
}

func TestParseFile_NotFound(t *testing.T) {
	_, err := ParseFile(testPath("nonexistent.yaml"))
	if err == nil {
		t.Fatal("expected error for nonexistent file, got nil")
	}
}

func TestParse_BadDependencyURL(t *testing.T) {
	doc := `
components:
  - name: broken
    kind: ui
    registryDependencies:
      - "https://"
    files: [components/ui/broken.tsx]
`
	_, err := Parse([]byte(doc))
	if err == nil {
		t.Fatal("expected error for URL without host")
	}
	if !strings.Contains(err.Error(), "components[0].registryDependencies[0]") {
		t.Errorf("error should point at the dependency, got: %v", err)
	}
}

func TestEncodeRoundTrip(t *testing.T) {
	m, err := ParseFile(testPath("valid.yaml"))
	if err != nil {
		t.Fatalf("ParseFile: %v", err)
	}
	data, err := Encode(m)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	again, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse(Encode(m)): %v\n%s", err, data)
	}
	if diff := cmp.Diff(m.Components(), again.Components()); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestDefaultCatalog(t *testing.T) {
	m, err := Default()
	if err != nil {
		t.Fatalf("Default(): %v", err)
	}
	for _, name := range []string{"auto-complete", "input", "radio-group", "payment-form", "file-tree"} {
		if !m.Has(name) {
			t.Errorf("default catalog is missing %q", name)
		}
	}
	again, err := Default()
	if err != nil {
		t.Fatalf("Default() second call: %v", err)
	}
	if again != m {
		t.Error("Default() should return the same manifest instance")
	}
}
