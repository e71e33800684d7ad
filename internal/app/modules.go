package app

import (
	"github.com/vk/needsgo/internal/registry"
	"github.com/vk/needsgo/widgets/image"
	"github.com/vk/needsgo/widgets/panel"
	"github.com/vk/needsgo/widgets/spacer"
	"github.com/vk/needsgo/widgets/text"
)

// builtinModules lists the compiled-in widget modules registered into every
// App instance before manifests are loaded.
func builtinModules() []registry.Module {
	return []registry.Module{
		&text.Module{},
		&image.Module{},
		&panel.Module{},
		&spacer.Module{},
	}
}
