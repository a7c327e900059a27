package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestLoadDefaults(t *testing.T) {
	t.Chdir(t.TempDir())

	c, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.File() != "" {
		t.Errorf("File() = %q, want empty when no config exists", c.File())
	}

	s, err := c.Settings()
	if err != nil {
		t.Fatalf("Settings: %v", err)
	}
	want := &Settings{
		Copy: CopySettings{
			Source:      "components/ui",
			Dest:        "registry/components",
			Ext:         ".tsx",
			Concurrency: 1,
			Components:  []string{},
		},
		Build:   BuildSettings{Source: ".", Dest: "public/r"},
		Serve:   ServeSettings{Addr: ":8080", Dir: "public/r"},
		Log:     LogSettings{Level: "info", Format: "text"},
		Install: InstallSettings{ProjectDir: "."},
	}
	if diff := cmp.Diff(want, s, cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("Settings mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadProjectFileAndEnv(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	content := `copy:
  source: src/components
  ext: ts
  components: [auto-complete, input]
log:
  format: json
`
	if err := os.WriteFile(filepath.Join(dir, DefaultFileName()), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("WINKTY_COPY_DEST", "out/registry")

	c, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	s, err := c.Settings()
	if err != nil {
		t.Fatalf("Settings: %v", err)
	}
	if s.Copy.Source != "src/components" {
		t.Errorf("Copy.Source = %q", s.Copy.Source)
	}
	if s.Copy.Dest != "out/registry" {
		t.Errorf("Copy.Dest = %q, want env override", s.Copy.Dest)
	}
	if s.Copy.Ext != ".ts" {
		t.Errorf("Copy.Ext = %q, want leading dot added", s.Copy.Ext)
	}
	if diff := cmp.Diff([]string{"auto-complete", "input"}, s.Copy.Components); diff != "" {
		t.Errorf("Copy.Components mismatch (-want +got):\n%s", diff)
	}
	if s.Log.Format != "json" {
		t.Errorf("Log.Format = %q", s.Log.Format)
	}
}

func TestLoadExplicitMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("expected error for missing explicit config file")
	}
}

func TestLoadRejectsBadValues(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(path, []byte("log:\n  format: xml\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected error for unsupported log format")
	}
}

func TestSetAndGet(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", DefaultFileName())

	if err := Set(path, KeyCopyDest, "dist/registry"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := Set(path, KeyCopyConcurrency, "4"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := Set(path, KeyCopyComponents, "input, auto-complete"); err != nil {
		t.Fatalf("Set: %v", err)
	}

	c, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got := c.Get(KeyCopyDest); got != "dist/registry" {
		t.Errorf("Get(%s) = %q", KeyCopyDest, got)
	}
	if got := c.Get(KeyCopyConcurrency); got != "4" {
		t.Errorf("Get(%s) = %q", KeyCopyConcurrency, got)
	}
	if got := c.Get(KeyCopyComponents); got != "input,auto-complete" {
		t.Errorf("Get(%s) = %q", KeyCopyComponents, got)
	}
	// Defaults stay out of the file.
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if got := string(data); strings.Contains(got, "serve") {
		t.Errorf("config file should only hold explicitly set keys, got:\n%s", got)
	}
}

func TestSetRejectsUnknownKeyAndBadInt(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultFileName())
	if err := Set(path, "no.such.key", "x"); err == nil {
		t.Error("expected error for unknown key")
	}
	if err := Set(path, KeyCopyConcurrency, "many"); err == nil {
		t.Error("expected error for non-integer concurrency")
	}
}
