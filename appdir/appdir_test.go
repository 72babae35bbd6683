package appdir

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDirsRequireInfo(t *testing.T) {
	SetInfo(Info{})
	t.Cleanup(func() { SetInfo(Info{}) })

	_, err := Data("")
	require.ErrorIs(t, err, ErrNoInfo)

	_, err = Cache("")
	require.ErrorIs(t, err, ErrNoInfo)
}

func TestDataAndCache(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(home, "config"))
	t.Setenv("XDG_CACHE_HOME", filepath.Join(home, "cache"))

	SetInfo(Info{Name: "burlap-test", Author: "burlap"})
	t.Cleanup(func() { SetInfo(Info{}) })

	data, err := Data("")
	require.NoError(t, err)
	require.DirExists(t, data)
	require.Equal(t, "burlap-test", filepath.Base(data))

	sub, err := Data("projects")
	require.NoError(t, err)
	require.DirExists(t, sub)
	require.Equal(t, filepath.Join(data, "projects"), sub)

	cache, err := Cache("")
	require.NoError(t, err)
	require.DirExists(t, cache)
	require.NotEqual(t, data, cache)
}
