// Package panel provides the built-in 'panel' widget, a container type that
// other widgets commonly extend to inherit its sizing contract.
package panel

import (
	"github.com/vk/needsgo/internal/contract"
	"github.com/vk/needsgo/internal/model"
	"github.com/vk/needsgo/internal/registry"
	"github.com/zclconf/go-cty/cty"
)

// Module implements the registry.Module interface for this package.
type Module struct{}

// Register registers the 'panel' widget type with the engine.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterWidget(&model.Widget{
		Type:        "panel",
		Description: "A sized container.",
		Source:      "builtin",
		Contract: contract.NewBuilder().
			Declare(contract.WithDefault("width", cty.NumberIntVal(12))).
			MustBuild(),
	})
}
