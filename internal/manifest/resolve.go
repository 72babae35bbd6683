package manifest

import (
	"fmt"
	"sort"
)

// UnknownGroupError is returned by Resolve when a selection names a feature
// group the catalog does not define.
type UnknownGroupError struct {
	Name string
}

func (e *UnknownGroupError) Error() string {
	return fmt.Sprintf("unknown feature group %q", e.Name)
}

// Resolve computes the active capability set for a selection of feature
// group names. An empty selection means the default group. The result is the
// union of the selected groups' membership, completed under every
// capability's `requires` closure, in sorted order. Resolution is a pure
// function of the selection; it never depends on prior calls.
func (c *Catalog) Resolve(selection ...string) ([]*Capability, error) {
	if len(selection) == 0 {
		selection = []string{DefaultGroup}
	}

	active := make(map[string]bool)
	for _, name := range selection {
		group, ok := c.Groups[name]
		if !ok {
			return nil, &UnknownGroupError{Name: name}
		}
		c.expandGroup(group, active, make(map[string]bool))
	}

	// Close the set under prerequisite capabilities. The current catalog has
	// a single edge (exec requires process) but the loop handles chains.
	queue := make([]string, 0, len(active))
	for name := range active {
		queue = append(queue, name)
	}
	for len(queue) > 0 {
		name := queue[0]
		queue = queue[1:]
		capability, ok := c.Capabilities[name]
		if !ok {
			continue
		}
		for _, req := range capability.Requires {
			if !active[req] {
				active[req] = true
				queue = append(queue, req)
			}
		}
	}

	names := make([]string, 0, len(active))
	for name := range active {
		names = append(names, name)
	}
	sort.Strings(names)

	out := make([]*Capability, 0, len(names))
	for _, name := range names {
		out = append(out, c.Capabilities[name])
	}
	return out, nil
}

// ActiveOn filters a resolved capability set down to what actually exists
// when building for the given GOOS. Platform-gated capabilities are removed
// entirely; this mirrors the build tags on the gated source files.
func ActiveOn(goos string, capabilities []*Capability) []*Capability {
	out := make([]*Capability, 0, len(capabilities))
	for _, capability := range capabilities {
		if capability.AvailableOn(goos) {
			out = append(out, capability)
		}
	}
	return out
}
