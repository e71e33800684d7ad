package registry

import (
	"fmt"

	"github.com/vk/needsgo/internal/contract"
	"github.com/vk/needsgo/internal/model"
)

// widgetNode adapts a stored widget definition to the contract.Node
// interface. Nodes are shared through a per-resolution cache so that a type
// reachable through several extends paths is a single node and contributes
// its declarations once.
type widgetNode struct {
	reg   *Registry
	def   *model.Widget
	cache map[string]*widgetNode
}

func (r *Registry) node(name string, cache map[string]*widgetNode) *widgetNode {
	if n, ok := cache[name]; ok {
		return n
	}
	def, ok := r.widgetRegistry[name]
	if !ok {
		return nil
	}
	n := &widgetNode{reg: r, def: def, cache: cache}
	cache[name] = n
	return n
}

// OwnDeclarations returns the type's own frozen declaration list.
func (n *widgetNode) OwnDeclarations() []contract.Declaration {
	return n.def.Contract.Declarations()
}

// Ancestors returns the direct ancestors in the order they were declared in
// 'extends'. Unresolvable ancestors are skipped here; Resolve checks the
// full chain up front so the walk never sees one.
func (n *widgetNode) Ancestors() []contract.Node {
	out := make([]contract.Node, 0, len(n.def.Extends))
	for _, name := range n.def.Extends {
		if anc := n.reg.node(name, n.cache); anc != nil {
			out = append(out, anc)
		}
	}
	return out
}

// Resolve derives the effective contract for the named widget type by
// walking its extends chain, own declarations first. It fails when the type
// or any type in its ancestry is not registered.
func (r *Registry) Resolve(name string) (*contract.Resolved, error) {
	if _, ok := r.widgetRegistry[name]; !ok {
		return nil, fmt.Errorf("unknown widget type '%s'", name)
	}
	if err := r.checkAncestry(name); err != nil {
		return nil, err
	}
	return contract.Resolve(r.node(name, make(map[string]*widgetNode))), nil
}

// checkAncestry verifies that every type transitively reachable through
// 'extends' is registered.
func (r *Registry) checkAncestry(name string) error {
	visited := make(map[string]bool)
	var walk func(string) error
	walk = func(typeName string) error {
		if visited[typeName] {
			return nil
		}
		visited[typeName] = true
		def := r.widgetRegistry[typeName]
		for _, anc := range def.Extends {
			if _, ok := r.widgetRegistry[anc]; !ok {
				return fmt.Errorf("widget '%s' extends unknown type '%s'", typeName, anc)
			}
			if err := walk(anc); err != nil {
				return err
			}
		}
		return nil
	}
	return walk(name)
}
