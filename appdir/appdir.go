// Package appdir resolves and creates per-application data and cache
// directories under the conventional user locations for the platform.
//
// Programs set their identity once at startup:
//
//	appdir.SetInfo(appdir.Info{Name: "mytool"})
//	cache, err := appdir.Cache("downloads")
package appdir

import (
	"errors"
	"os"
	"path/filepath"
)

// Info identifies the application owning the directories.
type Info struct {
	Name   string
	Author string
}

var current Info

// SetInfo sets the application identity used by Data and Cache. It is meant
// to be called once, before any directory is resolved.
func SetInfo(info Info) {
	current = info
}

// ErrNoInfo is returned when directories are requested before SetInfo.
var ErrNoInfo = errors.New("application info not set, call SetInfo first")

// Data returns the application's data directory, created if necessary. If
// subdir is not empty an additional sub directory is created within it.
func Data(subdir string) (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return ensure(base, subdir)
}

// Cache returns the application's cache directory, created if necessary. If
// subdir is not empty an additional sub directory is created within it.
func Cache(subdir string) (string, error) {
	base, err := os.UserCacheDir()
	if err != nil {
		return "", err
	}
	return ensure(base, subdir)
}

func ensure(base, subdir string) (string, error) {
	if current.Name == "" {
		return "", ErrNoInfo
	}
	dir := filepath.Join(base, current.Name)
	if subdir != "" {
		dir = filepath.Join(dir, subdir)
	}
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return "", err
	}
	return dir, nil
}
