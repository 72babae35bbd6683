package manifest

import (
	_ "embed"
	"fmt"
	"sync"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
)

//go:embed burlap.hcl
var embedded []byte

// EmbeddedFilename is the name the embedded catalog is reported under in
// diagnostics.
const EmbeddedFilename = "burlap.hcl"

var loadOnce = sync.OnceValues(func() (*Catalog, error) {
	return Parse(EmbeddedFilename, embedded)
})

// Load returns the embedded catalog, parsing and validating it on first use.
// The returned Catalog is shared and must be treated as read-only.
func Load() (*Catalog, error) {
	return loadOnce()
}

// Source returns the raw bytes of the embedded catalog file.
func Source() []byte {
	out := make([]byte, len(embedded))
	copy(out, embedded)
	return out
}

// Parse decodes catalog HCL from src, translates it into the agnostic model
// and validates it. The filename is only used in diagnostics.
func Parse(filename string, src []byte) (*Catalog, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse catalog file %s: %w", filename, diags)
	}

	var raw catalogSchema
	if diags := gohcl.DecodeBody(file.Body, nil, &raw); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode catalog file %s: %w", filename, diags)
	}

	catalog, err := translate(&raw)
	if err != nil {
		return nil, err
	}
	if err := catalog.Validate(); err != nil {
		return nil, err
	}
	return catalog, nil
}

// translate converts the decoded HCL schema into the agnostic model. Version
// and constraint expressions are evaluated here so malformed values are
// reported with the owning module or capability named.
func translate(raw *catalogSchema) (*Catalog, error) {
	catalog := &Catalog{
		Modules:      make(map[string]*Module, len(raw.Modules)),
		Capabilities: make(map[string]*Capability, len(raw.Capabilities)),
		Groups:       make(map[string]*Group, len(raw.Groups)),
	}

	for _, m := range raw.Modules {
		version, err := stringValue(m.Version)
		if err != nil {
			return nil, fmt.Errorf("module %q: invalid version: %w", m.Path, err)
		}
		if _, exists := catalog.Modules[m.Path]; exists {
			return nil, fmt.Errorf("module %q declared more than once", m.Path)
		}
		catalog.Modules[m.Path] = &Module{Path: m.Path, Version: version}
	}

	for _, c := range raw.Capabilities {
		if _, exists := catalog.Capabilities[c.Name]; exists {
			return nil, fmt.Errorf("capability %q declared more than once", c.Name)
		}
		deps := make([]*Dependency, 0, len(c.Dependencies))
		for _, d := range c.Dependencies {
			constraint, err := stringValue(d.Constraint)
			if err != nil {
				return nil, fmt.Errorf("capability %q: dependency %q: invalid constraint: %w", c.Name, d.Module, err)
			}
			deps = append(deps, &Dependency{Module: d.Module, Constraint: constraint})
		}
		catalog.Capabilities[c.Name] = &Capability{
			Name:         c.Name,
			Description:  c.Description,
			Package:      c.Package,
			Platform:     c.Platform,
			Requires:     c.Requires,
			Dependencies: deps,
			Binds:        c.Binds,
		}
		catalog.capabilityOrder = append(catalog.capabilityOrder, c.Name)
	}

	for _, g := range raw.Groups {
		if _, exists := catalog.Groups[g.Name]; exists {
			return nil, fmt.Errorf("group %q declared more than once", g.Name)
		}
		catalog.Groups[g.Name] = &Group{
			Name:         g.Name,
			Capabilities: g.Capabilities,
			Groups:       g.Groups,
		}
		catalog.groupOrder = append(catalog.groupOrder, g.Name)
	}

	return catalog, nil
}

// stringValue evaluates an expression with no variables in scope and requires
// the result to be a known, non-null string.
func stringValue(expr hcl.Expression) (string, error) {
	val, diags := expr.Value(nil)
	if diags.HasErrors() {
		return "", diags
	}
	if val.IsNull() || !val.IsKnown() || val.Type() != cty.String {
		return "", fmt.Errorf("expected a string, got %s", val.Type().FriendlyName())
	}
	return val.AsString(), nil
}
