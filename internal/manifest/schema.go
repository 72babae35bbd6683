package manifest

import (
	"github.com/hashicorp/hcl/v2"
)

// --- HCL schema ---
//
// These structs mirror the block layout of burlap.hcl one-to-one. They are
// decoded with gohcl and then translated into the format-agnostic model in
// model.go; nothing outside this package sees them.

// catalogSchema is the top-level structure of the catalog file.
type catalogSchema struct {
	Modules      []*moduleSchema     `hcl:"module,block"`
	Capabilities []*capabilitySchema `hcl:"capability,block"`
	Groups       []*groupSchema      `hcl:"group,block"`
}

// moduleSchema declares one concrete underlying library the catalog may
// reference. The version is kept as an expression so a malformed value can be
// reported with the module path attached instead of a bare decode error.
type moduleSchema struct {
	Path    string         `hcl:"path,label"`
	Version hcl.Expression `hcl:"version"`
}

// capabilitySchema is a `capability` block: one named, independently
// toggleable unit of functionality.
type capabilitySchema struct {
	Name         string              `hcl:"name,label"`
	Description  string              `hcl:"description,optional"`
	Package      string              `hcl:"package"`
	Platform     string              `hcl:"platform,optional"`
	Requires     []string            `hcl:"requires,optional"`
	Dependencies []*dependencySchema `hcl:"dependency,block"`
	Binds        []string            `hcl:"binds,optional"`
}

// dependencySchema binds a capability to a declared module under a version
// constraint.
type dependencySchema struct {
	Module     string         `hcl:"module,label"`
	Constraint hcl.Expression `hcl:"constraint"`
}

// groupSchema is a `group` block: a user-selectable bundle of capabilities.
// A group may also include other groups; the default group is defined purely
// in terms of the others.
type groupSchema struct {
	Name         string   `hcl:"name,label"`
	Capabilities []string `hcl:"capabilities,optional"`
	Groups       []string `hcl:"groups,optional"`
}
