package packager

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/winkty-official/winkty-ui-sub001/internal/platform"
)

const filePerm os.FileMode = 0644

// copyFile copies src to dst byte-for-byte. dst is replaced atomically, so a
// failed copy never leaves a truncated file behind. Errors opening or
// reading src are wrapped in *sourceError.
func copyFile(src, dst string) (int64, error) {
	in, err := os.Open(src)
	if err != nil {
		return 0, &sourceError{Path: src, Err: err}
	}
	defer in.Close()

	info, err := in.Stat()
	if err != nil {
		return 0, &sourceError{Path: src, Err: err}
	}
	if info.IsDir() {
		return 0, fmt.Errorf("%s is a directory", src)
	}

	var n int64
	err = writeAtomic(dst, func(w io.Writer) error {
		var cerr error
		n, cerr = io.Copy(w, in)
		if cerr != nil {
			return fmt.Errorf("copying %s: %w", src, cerr)
		}
		return nil
	})
	return n, err
}

// writeFile atomically replaces path with data.
func writeFile(path string, data []byte) error {
	return writeAtomic(path, func(w io.Writer) error {
		_, err := w.Write(data)
		return err
	})
}

// writeAtomic writes through a temp file in the target directory and renames
// it over path once fill succeeds.
func writeAtomic(path string, fill func(io.Writer) error) (err error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating directory %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("creating temp file in %s: %w", dir, err)
	}
	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmp.Name())
		}
	}()

	if err := fill(tmp); err != nil {
		return err
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	if err := platform.Chmod(tmp.Name(), filePerm); err != nil {
		return fmt.Errorf("setting permissions on %s: %w", path, err)
	}
	if err := platform.ReplaceFile(tmp.Name(), path); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
