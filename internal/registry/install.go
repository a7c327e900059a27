package registry

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"time"

	"github.com/winkty-official/winkty-ui-sub001/internal/manifest"
	"github.com/winkty-official/winkty-ui-sub001/internal/platform"
)

// InstallComponent copies the descriptor's files from sourceRoot into
// projectRoot, keeping their relative paths and file modes, and records the
// component as installed. Existing files are overwritten. It returns the
// project-relative paths written.
func InstallComponent(d manifest.Descriptor, sourceRoot, projectRoot string) ([]string, error) {
	installed, err := LoadInstalled(projectRoot)
	if err != nil {
		return nil, err
	}

	written := make([]string, 0, len(d.Files))
	for _, f := range d.Files {
		src := filepath.Join(sourceRoot, filepath.FromSlash(f))
		dst := filepath.Join(projectRoot, filepath.FromSlash(f))
		if err := copyFile(src, dst); err != nil {
			return written, fmt.Errorf("installing %s: %w", d.Name, err)
		}
		written = append(written, f)
	}

	installed.Components[d.Name] = InstalledComponent{
		Files:       slices.Clone(d.Files),
		InstalledAt: time.Now().UTC(),
	}
	if err := installed.Save(projectRoot); err != nil {
		return written, err
	}
	return written, nil
}

// RemoveResult lists what RemoveComponent did, as project-relative paths.
type RemoveResult struct {
	Removed []string
	Kept    []string // still owned by another installed component
}

// RemoveComponent deletes the files of an installed component from
// projectRoot. Files that another installed component also lists are kept.
// Directories left empty are pruned up to projectRoot.
//
// The install record is saved even when some deletions fail: the component
// stays recorded with only the files still on disk, and the failures are
// returned joined together with the partial result.
func RemoveComponent(m *manifest.Manifest, name, projectRoot string) (*RemoveResult, error) {
	installed, err := LoadInstalled(projectRoot)
	if err != nil {
		return nil, err
	}
	entry, ok := installed.Components[name]
	if !ok {
		return nil, fmt.Errorf("component %s is not installed", name)
	}
	delete(installed.Components, name)

	res := &RemoveResult{}
	var failed []string
	var errs []error
	for _, f := range entry.Files {
		if sharedWith(m, installed, f) != "" {
			res.Kept = append(res.Kept, f)
			continue
		}
		path := filepath.Join(projectRoot, filepath.FromSlash(f))
		if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
			failed = append(failed, f)
			errs = append(errs, fmt.Errorf("removing %s: %w", path, err))
			continue
		}
		pruneEmptyDirs(filepath.Dir(path), projectRoot)
		res.Removed = append(res.Removed, f)
	}

	if len(failed) > 0 {
		entry.Files = failed
		installed.Components[name] = entry
	}
	if err := installed.Save(projectRoot); err != nil {
		errs = append(errs, err)
	}
	if len(errs) > 0 {
		return res, errors.Join(errs...)
	}
	return res, nil
}

// sharedWith returns an installed component that also owns file, or "".
// Both the install record and the manifest count as ownership.
func sharedWith(m *manifest.Manifest, installed *InstalledIndex, file string) string {
	for _, other := range installed.Names() {
		if slices.Contains(installed.Components[other].Files, file) {
			return other
		}
	}
	if m == nil {
		return ""
	}
	for _, owner := range m.Owners(file) {
		if installed.Has(owner) {
			return owner
		}
	}
	return ""
}

func pruneEmptyDirs(dir, root string) {
	root = filepath.Clean(root)
	for dir = filepath.Clean(dir); dir != root && len(dir) > len(root); dir = filepath.Dir(dir) {
		if err := os.Remove(dir); err != nil {
			return
		}
	}
}

// copyFile copies a single file from src to dst, preserving permissions.
func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	srcInfo, err := in.Stat()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(dst), 0755); err != nil {
		return err
	}

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, srcInfo.Mode().Perm())
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	if err := out.Close(); err != nil {
		return err
	}
	return platform.Chmod(dst, srcInfo.Mode().Perm())
}
