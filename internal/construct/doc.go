// Package construct is the instance-validation half of the contract
// mechanism: the single entry point through which widget instances are
// built.
//
// Construct resolves the effective contract of the requested type, routes
// every supplied parameter through the unknown-parameter check, reconciles
// the bag against the contract (filling defaults, rejecting missing required
// names), and only then hands back a usable Instance. Any failure aborts the
// construction; no partially-assigned instance escapes.
package construct
