package manifest

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

// resolverCatalog exercises group nesting, the requires closure and platform
// gating without depending on the embedded catalog.
const resolverCatalog = `
module "example.com/lib" {
  version = "1.2.3"
}

capability "base" {
  package = "base"

  dependency "example.com/lib" {
    constraint = ">= 1.0.0"
  }
}

capability "extra" {
  package  = "extra"
  requires = ["base"]

  dependency "example.com/lib" {
    constraint = ">= 1.0.0"
  }
}

capability "gated" {
  package  = "gated"
  platform = "unix"

  dependency "example.com/lib" {
    constraint = ">= 1.0.0"
  }
}

group "base" {
  capabilities = ["base"]
}

group "extra" {
  capabilities = ["extra"]
}

group "gated" {
  capabilities = ["gated"]
}

group "default" {
  groups = ["base", "extra", "gated"]
}
`

func names(capabilities []*Capability) []string {
	out := make([]string, 0, len(capabilities))
	for _, capability := range capabilities {
		out = append(out, capability.Name)
	}
	return out
}

func TestResolve_EmptySelectionMeansDefault(t *testing.T) {
	catalog, err := Parse("test.hcl", []byte(resolverCatalog))
	require.NoError(t, err)

	resolved, err := catalog.Resolve()
	require.NoError(t, err)
	require.Equal(t, []string{"base", "extra", "gated"}, names(resolved))
}

func TestResolve_UnknownGroupIsFatal(t *testing.T) {
	catalog, err := Parse("test.hcl", []byte(resolverCatalog))
	require.NoError(t, err)

	_, err = catalog.Resolve("base", "ghost")
	require.Error(t, err)

	var unknown *UnknownGroupError
	require.ErrorAs(t, err, &unknown)
	require.Equal(t, "ghost", unknown.Name)
	require.Contains(t, err.Error(), `unknown feature group "ghost"`)
}

func TestResolve_RequiresClosure(t *testing.T) {
	catalog, err := Parse("test.hcl", []byte(resolverCatalog))
	require.NoError(t, err)

	// Selecting only "extra" must pull in "base" through the requires edge.
	resolved, err := catalog.Resolve("extra")
	require.NoError(t, err)
	require.Equal(t, []string{"base", "extra"}, names(resolved))
}

func TestResolve_IsDeterministic(t *testing.T) {
	catalog, err := Parse("test.hcl", []byte(resolverCatalog))
	require.NoError(t, err)

	first, err := catalog.Resolve("gated", "base")
	require.NoError(t, err)

	for i := 0; i < 10; i++ {
		again, err := catalog.Resolve("gated", "base")
		require.NoError(t, err)
		require.Empty(t, cmp.Diff(names(first), names(again)))
	}
}

func TestActiveOn_FiltersGatedCapabilities(t *testing.T) {
	catalog, err := Parse("test.hcl", []byte(resolverCatalog))
	require.NoError(t, err)

	resolved, err := catalog.Resolve()
	require.NoError(t, err)

	require.Equal(t, []string{"base", "extra", "gated"}, names(ActiveOn("linux", resolved)))
	require.Equal(t, []string{"base", "extra", "gated"}, names(ActiveOn("darwin", resolved)))
	require.Equal(t, []string{"base", "extra"}, names(ActiveOn("windows", resolved)))
	require.Equal(t, []string{"base", "extra"}, names(ActiveOn("plan9", resolved)))
}

func TestUnixLike(t *testing.T) {
	for _, goos := range []string{"linux", "darwin", "freebsd", "openbsd", "netbsd", "dragonfly", "solaris", "illumos", "aix", "android", "ios"} {
		require.True(t, UnixLike(goos), goos)
	}
	for _, goos := range []string{"windows", "plan9", "js", "wasip1"} {
		require.False(t, UnixLike(goos), goos)
	}
}
