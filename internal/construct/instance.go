package construct

import (
	"sort"

	"github.com/zclconf/go-cty/cty"
)

// Instance is a successfully constructed widget: its type name and the full
// reconciled parameter set, defaults included. Instances are immutable once
// returned by Construct.
type Instance struct {
	typeName string
	values   map[string]cty.Value
}

// Type returns the widget type name the instance was constructed as.
func (i *Instance) Type() string {
	return i.typeName
}

// Get returns the value assigned to a parameter name.
func (i *Instance) Get(name string) (cty.Value, bool) {
	v, ok := i.values[name]
	return v, ok
}

// Names returns the assigned parameter names in sorted order.
func (i *Instance) Names() []string {
	names := make([]string, 0, len(i.values))
	for name := range i.values {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Values returns a copy of the full reconciled parameter map.
func (i *Instance) Values() map[string]cty.Value {
	out := make(map[string]cty.Value, len(i.values))
	for k, v := range i.values {
		out[k] = v
	}
	return out
}
