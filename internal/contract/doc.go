// Package contract implements the parameter-contract mechanism at the heart
// of the engine.
//
// A widget type declares, once, which named construction parameters it
// accepts: a bare name is required, a name with a default value is optional,
// and the no-parameters sentinel means the type takes nothing at all. The
// declarations of a type are collected by a Builder and frozen into an
// immutable Contract before any instance exists.
//
// The effective contract of a type is derived on demand by Resolve, which
// walks an explicit ancestor graph (the Node interface) and concatenates the
// type's own declarations with those of every ancestor, own declarations
// first. Derivation is pure: no caching, no hidden mutation, and the same
// node always resolves to equal results.
//
// Reconciliation is the construction-time half: the caller's parameter bag
// is checked name-by-name against the resolved contract, defaults are filled
// in for absent names, and missing required names or undeclared names fail
// the construction with a typed error.
package contract
