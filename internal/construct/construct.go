package construct

import (
	"context"
	"sort"

	"github.com/vk/needsgo/internal/contract"
	"github.com/vk/needsgo/internal/ctxlog"
	"github.com/vk/needsgo/internal/registry"
	"github.com/zclconf/go-cty/cty"
)

// Constructor builds validated widget instances against the contracts held
// in a registry. It is a pure reader of the registry and is safe for
// concurrent use once the registry is populated.
type Constructor struct {
	reg *registry.Registry
}

// New creates a Constructor over the given registry.
func New(reg *registry.Registry) *Constructor {
	return &Constructor{reg: reg}
}

// Construct validates the supplied parameter bag against the resolved
// contract of the named widget type and returns the instance on success.
//
// Supplied names are checked first, one at a time in deterministic order:
// the first name outside the declared set fails the construction with an
// *contract.UnknownParameterError. The bag is then reconciled with the
// contract's defaults; required names still unassigned fail with a
// *contract.MissingParametersError. The caller's bag is never mutated.
func (c *Constructor) Construct(ctx context.Context, typeName string, bag map[string]cty.Value) (*Instance, error) {
	logger := ctxlog.FromContext(ctx)

	resolved, err := c.reg.Resolve(typeName)
	if err != nil {
		return nil, err
	}

	inst := &Instance{
		typeName: typeName,
		values:   make(map[string]cty.Value, len(bag)),
	}

	supplied := make([]string, 0, len(bag))
	for name := range bag {
		supplied = append(supplied, name)
	}
	sort.Strings(supplied)

	for _, name := range supplied {
		if err := inst.assignOne(resolved, name, bag[name]); err != nil {
			logger.Debug("Widget construction rejected.", "type", typeName, "error", err)
			return nil, err
		}
	}

	reconciled, err := resolved.Reconcile(bag)
	if err != nil {
		if missing, ok := err.(*contract.MissingParametersError); ok {
			missing.TypeName = typeName
		}
		logger.Debug("Widget construction rejected.", "type", typeName, "error", err)
		return nil, err
	}

	// Defaults applied by reconciliation are already part of the declared
	// set, so they bypass the unknown check.
	for name, val := range reconciled {
		inst.values[name] = val
	}

	logger.Debug("Constructed widget instance.", "type", typeName, "parameters", len(inst.values))
	return inst, nil
}

// assignOne is the per-parameter assignment path: it rejects names outside
// the declared set of a type that has a contract, then records the value.
func (i *Instance) assignOne(resolved *contract.Resolved, name string, val cty.Value) error {
	if resolved.IsUnknown(name) {
		return &contract.UnknownParameterError{
			TypeName: i.typeName,
			Name:     name,
			Accepted: resolved.RequiredNames(),
		}
	}
	i.values[name] = val
	return nil
}
