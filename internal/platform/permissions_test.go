package platform

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

func TestChmod(t *testing.T) {
	path := filepath.Join(t.TempDir(), "input.tsx")
	if err := os.WriteFile(path, []byte("export {}"), 0600); err != nil {
		t.Fatal(err)
	}

	if err := Chmod(path, 0644); err != nil {
		t.Fatalf("Chmod: %v", err)
	}
	if runtime.GOOS == "windows" {
		return
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if perm := info.Mode().Perm(); perm != 0644 {
		t.Errorf("permissions = %o, want 644", perm)
	}
}

func TestReplaceFile(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, ".input.tsx.tmp")
	dst := filepath.Join(dir, "input.tsx")

	if err := os.WriteFile(dst, []byte("old"), 0444); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(src, []byte("new"), 0644); err != nil {
		t.Fatal(err)
	}

	if err := ReplaceFile(src, dst); err != nil {
		t.Fatalf("ReplaceFile: %v", err)
	}
	data, err := os.ReadFile(dst)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "new" {
		t.Errorf("dst = %q, want %q", data, "new")
	}
	if _, err := os.Stat(src); !os.IsNotExist(err) {
		t.Errorf("src still exists after replace: %v", err)
	}
}

func TestReplaceFileMissingSource(t *testing.T) {
	dir := t.TempDir()
	err := ReplaceFile(filepath.Join(dir, "nope"), filepath.Join(dir, "dst"))
	if !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("ReplaceFile error = %v, want fs.ErrNotExist", err)
	}
}

func TestReplaceFileOntoNonEmptyDirectory(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, ".input.tsx.tmp")
	dst := filepath.Join(dir, "input.tsx")

	if err := os.WriteFile(src, []byte("new"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.MkdirAll(filepath.Join(dst, "nested"), 0755); err != nil {
		t.Fatal(err)
	}

	if err := ReplaceFile(src, dst); err == nil {
		t.Fatal("expected error replacing a non-empty directory")
	}
	if _, err := os.Stat(src); err != nil {
		t.Errorf("src should survive a failed replace: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dst, "nested")); err != nil {
		t.Errorf("dst contents should be untouched: %v", err)
	}
}
