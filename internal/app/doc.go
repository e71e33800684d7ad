// Package app wires the pieces of the engine together: configuration,
// logging, the built-in widget modules, manifest loading, and registry
// validation. It exposes the constructed registry and the Construct entry
// point to the CLI and to embedders.
package app
