package contract

import "github.com/zclconf/go-cty/cty"

// Node is the ancestor-graph abstraction the resolver walks. Implementations
// expose a type's own frozen declarations and its direct ancestors in
// resolution order. The registry adapts stored widget definitions into
// Nodes; tests can implement it directly.
type Node interface {
	// OwnDeclarations returns the type's own declaration list, most-derived
	// declarations for this type only.
	OwnDeclarations() []Declaration

	// Ancestors returns the direct ancestors in resolution order.
	Ancestors() []Node
}

// Resolve derives the effective contract for a node: the node's own
// declarations concatenated with the resolved declarations of every
// ancestor, own declarations first, ancestors depth-first in declared
// order. Each node contributes its declarations once even when reachable
// through several paths.
//
// Resolve is a pure function of the graph and returns a fresh Resolved on
// every call; callers cannot mutate the underlying contracts through it.
func Resolve(n Node) *Resolved {
	var decls []Declaration
	visited := make(map[Node]bool)

	var walk func(Node)
	walk = func(node Node) {
		if node == nil || visited[node] {
			return
		}
		visited[node] = true
		decls = append(decls, node.OwnDeclarations()...)
		for _, anc := range node.Ancestors() {
			walk(anc)
		}
	}
	walk(n)

	return newResolved(decls)
}

// Resolved is the derived view of a type's effective contract. It has no
// identity of its own: it is recomputed from the declaration chain on every
// Resolve call and is safe for concurrent reads.
type Resolved struct {
	decls    []Declaration
	declared bool
	names    []string
	members  map[string]struct{}
	defaults map[string]cty.Value
}

func newResolved(decls []Declaration) *Resolved {
	r := &Resolved{
		decls:    decls,
		declared: len(decls) > 0,
		members:  make(map[string]struct{}),
		defaults: make(map[string]cty.Value),
	}
	for _, d := range decls {
		if d.NoParams {
			continue
		}
		// Duplicate names across the chain are kept in order; membership
		// behaves as a set.
		r.names = append(r.names, d.Name)
		r.members[d.Name] = struct{}{}
		if d.Default != nil {
			// Most-derived default wins: the chain is ordered own-first, so
			// an earlier entry is never overwritten by a later one.
			if _, ok := r.defaults[d.Name]; !ok {
				r.defaults[d.Name] = *d.Default
			}
		}
	}
	return r
}

// Declarations returns a copy of the full resolved declaration sequence.
func (r *Resolved) Declarations() []Declaration {
	out := make([]Declaration, len(r.decls))
	copy(out, r.decls)
	return out
}

// HasContract reports whether any declaration exists anywhere in the chain.
// The no-parameters sentinel counts: a type declaring it has a contract that
// accepts nothing. A type with no declarations at all has no contract and
// accepts any parameter bag.
func (r *Resolved) HasContract() bool {
	return r.declared
}

// RequiredNames returns the flattened parameter names of the resolved
// contract in declared order. Names optional-with-default are included;
// duplicates across the chain are preserved.
func (r *Resolved) RequiredNames() []string {
	out := make([]string, len(r.names))
	copy(out, r.names)
	return out
}

// DefaultValues returns the name-to-default mapping of the resolved
// contract, most-derived precedence already applied.
func (r *Resolved) DefaultValues() map[string]cty.Value {
	out := make(map[string]cty.Value, len(r.defaults))
	for k, v := range r.defaults {
		out[k] = v
	}
	return out
}

// IsUnknown reports whether the given name falls outside the declared set of
// a type that has a contract. Types without a contract never report unknown
// names.
func (r *Resolved) IsUnknown(name string) bool {
	if !r.declared {
		return false
	}
	_, ok := r.members[name]
	return !ok
}

// Reconcile merges the resolved contract with the caller's parameter bag:
// absent names with a declared default are filled in, then every required
// name must be assigned. On success it returns a new map holding the bag
// augmented with applied defaults; the caller's bag is never mutated. When
// required names remain unassigned it fails with a *MissingParametersError
// listing every missing name in declared order.
func (r *Resolved) Reconcile(bag map[string]cty.Value) (map[string]cty.Value, error) {
	out := make(map[string]cty.Value, len(bag)+len(r.defaults))
	for name, val := range bag {
		out[name] = val
	}
	for name, def := range r.defaults {
		if _, assigned := out[name]; !assigned {
			out[name] = def
		}
	}

	var missing []string
	reported := make(map[string]struct{})
	for _, name := range r.names {
		if _, assigned := out[name]; assigned {
			continue
		}
		if _, dup := reported[name]; dup {
			continue
		}
		reported[name] = struct{}{}
		missing = append(missing, name)
	}
	if len(missing) > 0 {
		return nil, &MissingParametersError{Names: missing}
	}
	return out, nil
}
