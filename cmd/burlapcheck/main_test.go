package main

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRun_DefaultSelection(t *testing.T) {
	out := &bytes.Buffer{}

	err := run(out, []string{"-t", "linux"})

	require.NoError(t, err)
	require.Contains(t, out.String(), "selection default on linux: 12 of 12 capabilities")
	require.Contains(t, out.String(), "hashing")
	require.Contains(t, out.String(), "exec")
}

func TestRun_WindowsTarget(t *testing.T) {
	out := &bytes.Buffer{}

	err := run(out, []string{"--target", "windows"})

	require.NoError(t, err)
	require.Contains(t, out.String(), "selection default on windows: 11 of 12 capabilities")
	require.Contains(t, out.String(), "unavailable on windows")
}

func TestRun_CustomSelection(t *testing.T) {
	out := &bytes.Buffer{}

	err := run(out, []string{"-t", "linux", "errors", "logging"})

	require.NoError(t, err)
	require.Contains(t, out.String(), "selection errors+logging on linux: 2 of 2 capabilities")
	require.NotContains(t, out.String(), "hashing")
}

func TestRun_RequiresClosure(t *testing.T) {
	out := &bytes.Buffer{}

	err := run(out, []string{"-t", "linux", "process"})

	require.NoError(t, err)
	require.Contains(t, out.String(), "selection process on linux: 2 of 2 capabilities")
	require.Contains(t, out.String(), "exec")
}

func TestRun_UnknownGroup(t *testing.T) {
	out := &bytes.Buffer{}

	err := run(out, []string{"telepathy"})

	var exitErr *ExitError
	require.ErrorAs(t, err, &exitErr)
	require.Equal(t, 2, exitErr.Code)
	require.Contains(t, exitErr.Message, `unknown feature group "telepathy"`)
}

func TestRun_ListGroups(t *testing.T) {
	out := &bytes.Buffer{}

	err := run(out, []string{"--list"})

	require.NoError(t, err)
	require.Contains(t, out.String(), "default")
	require.Contains(t, out.String(), "process")
}

func TestRun_Help(t *testing.T) {
	out := &bytes.Buffer{}

	err := run(out, []string{"-h"})

	require.NoError(t, err)
	require.Contains(t, out.String(), "Usage:")
}

func TestRun_ParseError(t *testing.T) {
	out := &bytes.Buffer{}

	err := run(out, []string{"--this-is-not-a-valid-flag"})

	var exitErr *ExitError
	require.True(t, errors.As(err, &exitErr))
	require.Equal(t, 2, exitErr.Code)
}
