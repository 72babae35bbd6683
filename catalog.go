package burlap

import (
	"fmt"

	"github.com/burlapkit/burlap/internal/manifest"
)

// Platform restricts where a capability exists. The zero value means the
// capability is available everywhere.
type Platform string

const (
	// PlatformAny marks a capability available on every target.
	PlatformAny Platform = ""
	// PlatformUnix marks a capability compiled only for unix-like targets.
	PlatformUnix Platform = "unix"
)

// Capability is a read-only view of one catalog entry: a named,
// independently toggleable unit of functionality backed by external
// libraries.
type Capability struct {
	// Name is the catalog-wide unique identifier, e.g. "logging".
	Name string
	// Description is a one-line summary from the catalog.
	Description string
	// Package is the import path element under this module holding the
	// capability's bindings.
	Package string
	// Platform gates availability; see PlatformUnix.
	Platform Platform
	// Requires lists capabilities this one cannot be active without.
	Requires []string
	// Dependencies are the underlying libraries with the constraints the
	// forwarding code was written against and the pinned version in use.
	Dependencies []Dependency
	// Bindings are the public symbols the capability binds.
	Bindings []Binding
}

// Dependency is one underlying library of a capability.
type Dependency struct {
	Module     string
	Constraint string
	// Version is the concrete pinned version from the catalog's module
	// registry.
	Version string
}

// Binding is a single public name a capability makes resolvable.
type Binding struct {
	Package string
	Symbol  string
}

// Group is a user-selectable bundle of capabilities. The default group's
// membership is the union of every other group.
type Group struct {
	Name string
	// Capabilities it enables directly.
	Capabilities []string
	// Groups it includes.
	Groups []string
}

// UnknownGroupError reports a selection naming a feature group the catalog
// does not define.
type UnknownGroupError = manifest.UnknownGroupError

// DefaultGroup is the group substituted for an empty selection.
const DefaultGroup = manifest.DefaultGroup

// catalog returns the embedded catalog, panicking if it does not validate.
// A broken embedded catalog is an authoring defect that burlapcheck and the
// tests catch before publication, so consumers never see this panic.
func catalog() *manifest.Catalog {
	c, err := manifest.Load()
	if err != nil {
		panic(fmt.Errorf("embedded capability catalog is invalid: %w", err))
	}
	return c
}

// Check validates the embedded catalog and returns every defect found,
// instead of panicking. It is the entry point for authoring-time tooling.
func Check() error {
	_, err := manifest.Load()
	return err
}

// Capabilities lists every capability in the catalog in authoring order,
// regardless of selection or platform.
func Capabilities() []Capability {
	c := catalog()
	out := make([]Capability, 0, len(c.Capabilities))
	for _, name := range c.CapabilityNames() {
		out = append(out, view(c, c.Capabilities[name]))
	}
	return out
}

// Groups lists every feature group in authoring order.
func Groups() []Group {
	c := catalog()
	out := make([]Group, 0, len(c.Groups))
	for _, name := range c.GroupNames() {
		g := c.Groups[name]
		out = append(out, Group{
			Name:         g.Name,
			Capabilities: append([]string(nil), g.Capabilities...),
			Groups:       append([]string(nil), g.Groups...),
		})
	}
	return out
}

// Resolve computes the active capability set for the given feature group
// selection. An empty selection resolves the default group. Unknown group
// names return an UnknownGroupError; a selection never silently resolves to
// a partial set. The result is sorted by capability name and depends only on
// the selection.
func Resolve(groups ...string) ([]Capability, error) {
	c := catalog()
	resolved, err := c.Resolve(groups...)
	if err != nil {
		return nil, err
	}
	out := make([]Capability, 0, len(resolved))
	for _, capability := range resolved {
		out = append(out, view(c, capability))
	}
	return out, nil
}

// Default resolves the default group.
func Default() []Capability {
	resolved, err := Resolve()
	if err != nil {
		// The embedded catalog always defines the default group; Resolve on
		// an empty selection cannot fail once the catalog loaded.
		panic(err)
	}
	return resolved
}

// AvailableOn reports whether the capability exists when building for the
// given GOOS, per its Platform gate.
func (c Capability) AvailableOn(goos string) bool {
	return c.Platform == PlatformAny || (c.Platform == PlatformUnix && manifest.UnixLike(goos))
}

// ActiveOn filters a resolved set down to the capabilities that exist when
// building for the given GOOS. This mirrors the //go:build gates on the
// platform-restricted source files.
func ActiveOn(goos string, capabilities []Capability) []Capability {
	out := make([]Capability, 0, len(capabilities))
	for _, capability := range capabilities {
		if capability.AvailableOn(goos) {
			out = append(out, capability)
		}
	}
	return out
}

// UnixLike reports whether the given GOOS counts as unix-like for platform
// gating. The set matches Go's `unix` build constraint.
func UnixLike(goos string) bool {
	return manifest.UnixLike(goos)
}

// view converts an internal capability into the public read-only form,
// resolving each dependency's pinned version from the module registry.
func view(c *manifest.Catalog, capability *manifest.Capability) Capability {
	deps := make([]Dependency, 0, len(capability.Dependencies))
	for _, dep := range capability.Dependencies {
		version := ""
		if module, ok := c.Modules[dep.Module]; ok {
			version = module.Version
		}
		deps = append(deps, Dependency{
			Module:     dep.Module,
			Constraint: dep.Constraint,
			Version:    version,
		})
	}
	binds := make([]Binding, 0, len(capability.Binds))
	for _, symbol := range capability.Binds {
		binds = append(binds, Binding{Package: capability.Package, Symbol: symbol})
	}
	return Capability{
		Name:         capability.Name,
		Description:  capability.Description,
		Package:      capability.Package,
		Platform:     Platform(capability.Platform),
		Requires:     append([]string(nil), capability.Requires...),
		Dependencies: deps,
		Bindings:     binds,
	}
}
