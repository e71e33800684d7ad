// Package text provides the built-in 'text' widget: a leaf component that
// renders a single required piece of content.
package text

import (
	"github.com/vk/needsgo/internal/contract"
	"github.com/vk/needsgo/internal/model"
	"github.com/vk/needsgo/internal/registry"
)

// Module implements the registry.Module interface for this package.
type Module struct{}

// Register registers the 'text' widget type with the engine.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterWidget(&model.Widget{
		Type:        "text",
		Description: "A run of text content.",
		Source:      "builtin",
		Contract: contract.NewBuilder().
			Declare(contract.Bare("content")).
			MustBuild(),
	})
}
