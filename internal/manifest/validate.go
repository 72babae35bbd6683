package manifest

import (
	"fmt"

	"github.com/Masterminds/semver/v3"
	"go.uber.org/multierr"
)

// Validate performs a strict integrity check of the catalog. All defects are
// collected and returned together so an author sees every problem in one
// pass. A nil return means the catalog is safe to publish.
func (c *Catalog) Validate() error {
	var errs error

	for _, name := range c.capabilityOrder {
		capability := c.Capabilities[name]

		if capability.Package == "" {
			errs = multierr.Append(errs, fmt.Errorf("capability %q: package must not be empty", name))
		}
		if capability.Platform != PlatformAny && capability.Platform != PlatformUnix {
			errs = multierr.Append(errs, fmt.Errorf("capability %q: unknown platform constraint %q", name, capability.Platform))
		}
		if len(capability.Dependencies) == 0 {
			errs = multierr.Append(errs, fmt.Errorf("capability %q: must declare at least one dependency", name))
		}

		for _, dep := range capability.Dependencies {
			module, ok := c.Modules[dep.Module]
			if !ok {
				errs = multierr.Append(errs, fmt.Errorf("capability %q: dependency %q is not a declared module", name, dep.Module))
				continue
			}
			constraint, err := semver.NewConstraint(dep.Constraint)
			if err != nil {
				errs = multierr.Append(errs, fmt.Errorf("capability %q: dependency %q: invalid constraint %q: %w", name, dep.Module, dep.Constraint, err))
				continue
			}
			version, err := semver.NewVersion(module.Version)
			if err != nil {
				errs = multierr.Append(errs, fmt.Errorf("module %q: invalid version %q: %w", module.Path, module.Version, err))
				continue
			}
			if !constraint.Check(version) {
				errs = multierr.Append(errs, fmt.Errorf("capability %q: dependency %q: pinned version %s does not satisfy constraint %q", name, dep.Module, module.Version, dep.Constraint))
			}
		}

		for _, req := range capability.Requires {
			if _, ok := c.Capabilities[req]; !ok {
				errs = multierr.Append(errs, fmt.Errorf("capability %q: requires unknown capability %q", name, req))
			} else if req == name {
				errs = multierr.Append(errs, fmt.Errorf("capability %q: requires itself", name))
			}
		}
	}

	errs = multierr.Append(errs, c.validateBindings())
	errs = multierr.Append(errs, c.validateGroups())

	return errs
}

// validateBindings rejects two capabilities claiming the same public
// (package, symbol) pair. Absence of collisions is a catalog-wide property,
// independent of any particular selection.
func (c *Catalog) validateBindings() error {
	var errs error

	owner := make(map[[2]string]string)
	for _, name := range c.capabilityOrder {
		capability := c.Capabilities[name]
		seen := make(map[string]bool, len(capability.Binds))
		for _, symbol := range capability.Binds {
			if seen[symbol] {
				errs = multierr.Append(errs, fmt.Errorf("capability %q: binding %q listed more than once", name, symbol))
				continue
			}
			seen[symbol] = true

			key := [2]string{capability.Package, symbol}
			if prev, taken := owner[key]; taken {
				errs = multierr.Append(errs, fmt.Errorf("binding collision: capabilities %q and %q both bind %s.%s", prev, name, capability.Package, symbol))
				continue
			}
			owner[key] = name
		}
	}

	return errs
}

// validateGroups checks that every group references only known capabilities
// and groups, that group inclusion is acyclic, and that the default group
// exists and is the union of every other group.
func (c *Catalog) validateGroups() error {
	var errs error

	for _, name := range c.groupOrder {
		group := c.Groups[name]
		for _, capName := range group.Capabilities {
			if _, ok := c.Capabilities[capName]; !ok {
				errs = multierr.Append(errs, fmt.Errorf("group %q: unknown capability %q", name, capName))
			}
		}
		for _, sub := range group.Groups {
			if sub == name {
				errs = multierr.Append(errs, fmt.Errorf("group %q: includes itself", name))
			} else if _, ok := c.Groups[sub]; !ok {
				errs = multierr.Append(errs, fmt.Errorf("group %q: includes unknown group %q", name, sub))
			}
		}
		if err := c.checkGroupCycle(name); err != nil {
			errs = multierr.Append(errs, err)
		}
	}

	def, ok := c.Groups[DefaultGroup]
	if !ok {
		return multierr.Append(errs, fmt.Errorf("catalog does not define the %q group", DefaultGroup))
	}

	// The default group must cover every capability reachable through the
	// other groups; a capability no group enables would be dead weight.
	if err := c.checkGroupCycle(DefaultGroup); err == nil {
		covered := make(map[string]bool)
		c.expandGroup(def, covered, make(map[string]bool))
		for _, name := range c.capabilityOrder {
			if !covered[name] {
				errs = multierr.Append(errs, fmt.Errorf("capability %q is not reachable from the %q group", name, DefaultGroup))
			}
		}
	}

	return errs
}

// checkGroupCycle walks group inclusion from the given root and reports a
// cycle if the root is reachable from itself.
func (c *Catalog) checkGroupCycle(root string) error {
	var walk func(name string, path []string) error
	walk = func(name string, path []string) error {
		group, ok := c.Groups[name]
		if !ok {
			return nil
		}
		for _, sub := range group.Groups {
			for _, seen := range path {
				if seen == sub {
					return fmt.Errorf("group inclusion cycle involving %q", sub)
				}
			}
			if err := walk(sub, append(path, sub)); err != nil {
				return err
			}
		}
		return nil
	}
	return walk(root, []string{root})
}

// expandGroup accumulates the capability membership of a group, following
// nested group inclusion. visited guards against cycles so validation can
// report them separately instead of recursing forever.
func (c *Catalog) expandGroup(group *Group, into map[string]bool, visited map[string]bool) {
	if visited[group.Name] {
		return
	}
	visited[group.Name] = true

	for _, capName := range group.Capabilities {
		into[capName] = true
	}
	for _, sub := range group.Groups {
		if subGroup, ok := c.Groups[sub]; ok {
			c.expandGroup(subGroup, into, visited)
		}
	}
}
