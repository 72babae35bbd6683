// Package files provides file utilities: temporary files and directories,
// file time manipulation, recursive lookup by extension and change
// notification. On unix-like targets it additionally exposes file ownership
// by user and group name, and permission bit helpers.
package files

import (
	"os"
	"time"
)

// TempFile creates a new temporary file in dir (the system default when
// empty), opened for reading and writing. The caller removes it when done.
func TempFile(dir, pattern string) (*os.File, error) {
	return os.CreateTemp(dir, pattern)
}

// TempDir creates a new temporary directory in dir (the system default when
// empty). The caller removes it when done.
func TempDir(dir, pattern string) (string, error) {
	return os.MkdirTemp(dir, pattern)
}

// SetTimes sets the access and modification times of the named file.
func SetTimes(path string, atime, mtime time.Time) error {
	return os.Chtimes(path, atime, mtime)
}

// SetMtime sets the modification time of the named file, leaving the access
// time untouched.
func SetMtime(path string, mtime time.Time) error {
	return os.Chtimes(path, time.Time{}, mtime)
}
