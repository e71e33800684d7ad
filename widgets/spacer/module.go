// Package spacer provides the built-in 'spacer' widget. It declares the
// no-parameters sentinel: constructing it with any parameter at all is an
// unknown-parameter error.
package spacer

import (
	"github.com/vk/needsgo/internal/contract"
	"github.com/vk/needsgo/internal/model"
	"github.com/vk/needsgo/internal/registry"
)

// Module implements the registry.Module interface for this package.
type Module struct{}

// Register registers the 'spacer' widget type with the engine.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterWidget(&model.Widget{
		Type:        "spacer",
		Description: "Fixed empty space.",
		Source:      "builtin",
		Contract: contract.NewBuilder().
			Declare(contract.NoParameters()).
			MustBuild(),
	})
}
