package files

import (
	"io/fs"
	"path/filepath"
	"strings"
)

// FindByExt recursively searches root for all files whose name ends with the
// given extension and returns their full paths.
func FindByExt(root, extension string) ([]string, error) {
	if extension == "" {
		panic("extension must not be empty")
	}

	var found []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(d.Name(), extension) {
			found = append(found, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return found, nil
}
