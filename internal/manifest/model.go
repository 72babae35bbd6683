package manifest

// PlatformAny and PlatformUnix are the allowed values of a capability's
// platform constraint. An empty constraint means the capability is available
// on every target.
const (
	PlatformAny  = ""
	PlatformUnix = "unix"
)

// DefaultGroup is the name of the group substituted when a consumer selects
// no groups at all.
const DefaultGroup = "default"

// unixLike is the set of GOOS values satisfying the "unix" platform
// constraint. It matches the Go toolchain's `unix` build constraint, which is
// what the gated source files use, so the metadata and the build tags cannot
// disagree about where a symbol exists.
var unixLike = map[string]bool{
	"aix":       true,
	"android":   true,
	"darwin":    true,
	"dragonfly": true,
	"freebsd":   true,
	"illumos":   true,
	"ios":       true,
	"linux":     true,
	"netbsd":    true,
	"openbsd":   true,
	"solaris":   true,
}

// UnixLike reports whether the given GOOS satisfies the "unix" platform
// constraint.
func UnixLike(goos string) bool {
	return unixLike[goos]
}

// Catalog is the format-agnostic representation of the whole capability
// catalog. It is immutable after a successful Load.
type Catalog struct {
	Modules      map[string]*Module
	Capabilities map[string]*Capability
	Groups       map[string]*Group

	// capabilityOrder preserves authoring order for deterministic listings.
	capabilityOrder []string
	groupOrder      []string
}

// Module is one concrete underlying library, pinned to the version the
// toolkit is built against.
type Module struct {
	Path    string
	Version string
}

// Capability is a named unit of optional functionality together with
// everything the composer and the platform gate need to know about it.
type Capability struct {
	Name         string
	Description  string
	Package      string
	Platform     string
	Requires     []string
	Dependencies []*Dependency
	Binds        []string
}

// Dependency references a declared module under a version constraint.
type Dependency struct {
	Module     string
	Constraint string
}

// Group is a user-selectable bundle. Membership is the union of its listed
// capabilities and the membership of every group it includes.
type Group struct {
	Name         string
	Capabilities []string
	Groups       []string
}

// CapabilityNames returns all capability names in authoring order.
func (c *Catalog) CapabilityNames() []string {
	out := make([]string, len(c.capabilityOrder))
	copy(out, c.capabilityOrder)
	return out
}

// GroupNames returns all group names in authoring order.
func (c *Catalog) GroupNames() []string {
	out := make([]string, len(c.groupOrder))
	copy(out, c.groupOrder)
	return out
}

// AvailableOn reports whether the capability can exist on the given GOOS.
func (cp *Capability) AvailableOn(goos string) bool {
	return cp.Platform == PlatformAny || (cp.Platform == PlatformUnix && UnixLike(goos))
}
