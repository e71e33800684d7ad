// Package model defines the format-agnostic widget definition record and
// the logic for parsing widget manifests from HCL.
//
// A Widget is the reusable definition or "template" for a kind of view
// component. It declares a contract: which named construction parameters
// instances of the type accept, which are required, and which carry
// defaults. Constructing an instance is a call against that contract, so
// mistakes like a misspelled parameter name are caught when the instance is
// built rather than surfacing later as an undefined value.
package model
