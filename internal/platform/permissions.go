package platform

import (
	"errors"
	"io/fs"
	"os"
	"runtime"
)

// Chmod sets file permissions. On Windows this is a no-op because Windows
// does not support Unix-style permission bits.
func Chmod(path string, mode os.FileMode) error {
	if runtime.GOOS == "windows" {
		return nil
	}
	return os.Chmod(path, mode)
}

// ReplaceFile moves src over dst. On Windows a rename onto a read-only
// target fails, so the target is made writable and removed before retrying.
func ReplaceFile(src, dst string) error {
	err := os.Rename(src, dst)
	if err == nil || runtime.GOOS != "windows" {
		return err
	}
	if _, statErr := os.Stat(dst); errors.Is(statErr, fs.ErrNotExist) {
		return err
	}
	if chErr := os.Chmod(dst, 0644); chErr != nil {
		return errors.Join(err, chErr)
	}
	if rmErr := os.Remove(dst); rmErr != nil {
		return errors.Join(err, rmErr)
	}
	return os.Rename(src, dst)
}
