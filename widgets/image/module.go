// Package image provides the built-in 'image' widget: a required source
// plus alternative text that defaults to empty.
package image

import (
	"github.com/vk/needsgo/internal/contract"
	"github.com/vk/needsgo/internal/model"
	"github.com/vk/needsgo/internal/registry"
	"github.com/zclconf/go-cty/cty"
)

// Module implements the registry.Module interface for this package.
type Module struct{}

// Register registers the 'image' widget type with the engine.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterWidget(&model.Widget{
		Type:        "image",
		Description: "An image reference.",
		Source:      "builtin",
		Contract: contract.NewBuilder().
			Declare(
				contract.Bare("src"),
				contract.WithDefault("alt", cty.StringVal("")),
			).
			MustBuild(),
	})
}
