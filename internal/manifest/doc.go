// Package manifest owns the capability catalog: the single source of truth
// for which capabilities burlap ships, which underlying modules back them,
// how they bundle into feature groups, and which of them are restricted to
// unix-like targets.
//
// The catalog is authored in HCL (see burlap.hcl, embedded into the binary)
// and loaded exactly once. After loading it is validated strictly: every
// defect an author could introduce (duplicate capability, dangling
// dependency, binding collision, unsatisfiable version constraint, broken
// group reference) is reported by name, all at once, before the catalog can
// be used. A catalog that fails validation never becomes visible to callers.
package manifest
