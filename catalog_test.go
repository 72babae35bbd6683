package burlap

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

// allCapabilities is the documented capability set, sorted the way Resolve
// sorts.
var allCapabilities = []string{
	"app", "args", "errors", "exec", "files", "hashing",
	"logging", "process", "regex", "signals", "term", "time",
}

func capNames(capabilities []Capability) []string {
	out := make([]string, 0, len(capabilities))
	for _, capability := range capabilities {
		out = append(out, capability.Name)
	}
	return out
}

func TestCheck(t *testing.T) {
	require.NoError(t, Check())
}

func TestDefault_AllTwelveCapabilities(t *testing.T) {
	require.Equal(t, allCapabilities, capNames(Default()))
}

func TestDefault_OnUnixTarget(t *testing.T) {
	active := ActiveOn("linux", Default())
	require.Equal(t, allCapabilities, capNames(active))
}

func TestDefault_OnNonUnixTarget(t *testing.T) {
	active := ActiveOn("windows", Default())
	require.Len(t, active, 11)
	require.NotContains(t, capNames(active), "exec")
}

func TestResolve_ErrorsAndLoggingOnly(t *testing.T) {
	resolved, err := Resolve("errors", "logging")
	require.NoError(t, err)
	require.Equal(t, []string{"errors", "logging"}, capNames(resolved))
}

func TestResolve_ProcessGroupIncludesExec(t *testing.T) {
	resolved, err := Resolve("process")
	require.NoError(t, err)
	require.Equal(t, []string{"exec", "process"}, capNames(resolved))
}

func TestResolve_UnknownGroup(t *testing.T) {
	_, err := Resolve("logging", "telepathy")
	require.Error(t, err)

	var unknown *UnknownGroupError
	require.ErrorAs(t, err, &unknown)
	require.Equal(t, "telepathy", unknown.Name)
}

func TestResolve_IsDeterministic(t *testing.T) {
	first, err := Resolve("files", "hashing", "process")
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		again, err := Resolve("files", "hashing", "process")
		require.NoError(t, err)
		require.Empty(t, cmp.Diff(first, again))
	}
}

func TestCapabilities_NoBindingCollisions(t *testing.T) {
	owner := make(map[Binding]string)
	for _, capability := range Capabilities() {
		for _, binding := range capability.Bindings {
			prev, taken := owner[binding]
			require.False(t, taken, "capabilities %q and %q both bind %s.%s", prev, capability.Name, binding.Package, binding.Symbol)
			owner[binding] = capability.Name
		}
	}
}

func TestCapabilities_EveryDependencyResolved(t *testing.T) {
	for _, capability := range Capabilities() {
		require.NotEmpty(t, capability.Dependencies, "capability %q has no dependencies", capability.Name)
		for _, dep := range capability.Dependencies {
			require.NotEmpty(t, dep.Version, "capability %q: dependency %q has no pinned version", capability.Name, dep.Module)
		}
	}
}

func TestCapabilities_OnlyExecIsGated(t *testing.T) {
	for _, capability := range Capabilities() {
		if capability.Name == "exec" {
			require.Equal(t, PlatformUnix, capability.Platform)
			require.Contains(t, capability.Requires, "process")
		} else {
			require.Equal(t, PlatformAny, capability.Platform, "capability %q", capability.Name)
		}
	}
}

func TestGroups_DefaultCoversEveryOtherGroup(t *testing.T) {
	var def *Group
	others := make(map[string]bool)
	for _, group := range Groups() {
		group := group
		if group.Name == DefaultGroup {
			def = &group
			continue
		}
		others[group.Name] = true
	}
	require.NotNil(t, def)
	require.Empty(t, def.Capabilities, "default enables capabilities only through other groups")
	require.Len(t, def.Groups, len(others))
	for _, name := range def.Groups {
		require.True(t, others[name], "default includes unknown group %q", name)
	}
}
