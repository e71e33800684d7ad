// Package registry provides the central store for widget type definitions.
//
// The Registry maps widget type names to their definitions: the frozen
// parameter contract declared by the type and the names of the types it
// extends. Definitions arrive from two sources — compiled-in widget modules
// registered during application startup, and HCL manifests loaded from disk —
// and are frozen before any instance is constructed.
//
// After population the registry is validated to ensure every 'extends'
// reference resolves and the ancestry graph is acyclic, preventing a class
// of construction-time surprises.
package registry
