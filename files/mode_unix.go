//go:build unix

package files

import "os"

// Executable reports whether the named file has any execute bit set.
func Executable(path string) (bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		return false, err
	}
	return info.Mode().Perm()&0o111 != 0, nil
}

// SetExecutable sets the execute bit for every class that can read the file,
// like chmod +x.
func SetExecutable(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	perm := info.Mode().Perm()
	return os.Chmod(path, perm|(perm&0o444)>>2)
}

// SetMode sets the permission bits of the named file.
func SetMode(path string, mode os.FileMode) error {
	return os.Chmod(path, mode)
}
