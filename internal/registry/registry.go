package registry

import (
	"fmt"
	"log/slog"
	"sort"

	"github.com/vk/needsgo/internal/model"
)

// Module is the interface that all compiled-in widget packages implement to
// be registered.
type Module interface {
	Register(r *Registry)
}

// Registry holds all the widget definitions for a single application
// instance. Population happens during startup, strictly before any
// construction; afterwards the registry is read-only.
type Registry struct {
	widgetRegistry map[string]*model.Widget
}

// New creates and initializes a new Registry instance.
func New() *Registry {
	return &Registry{
		widgetRegistry: make(map[string]*model.Widget),
	}
}

// RegisterWidget registers a compiled-in widget definition. Registering the
// same type name twice is a programming error and panics.
func (r *Registry) RegisterWidget(w *model.Widget) {
	if _, exists := r.widgetRegistry[w.Type]; exists {
		panic(fmt.Sprintf("widget type '%s' already registered", w.Type))
	}
	slog.Debug("Registering widget type.", "type", w.Type)
	r.widgetRegistry[w.Type] = w
}

// AddWidget registers a widget definition loaded from a manifest. Unlike
// RegisterWidget it returns an error on a duplicate type name, since a
// manifest collision is user input, not a programming mistake.
func (r *Registry) AddWidget(w *model.Widget) error {
	if prev, exists := r.widgetRegistry[w.Type]; exists {
		return fmt.Errorf("widget type '%s' is already defined (first seen in %s)", w.Type, prev.Source)
	}
	slog.Debug("Adding widget type from manifest.", "type", w.Type, "source", w.Source)
	r.widgetRegistry[w.Type] = w
	return nil
}

// Widget returns the definition for a type name, if present.
func (r *Registry) Widget(name string) (*model.Widget, bool) {
	w, ok := r.widgetRegistry[name]
	return w, ok
}

// Types returns all registered type names in sorted order.
func (r *Registry) Types() []string {
	names := make([]string, 0, len(r.widgetRegistry))
	for name := range r.widgetRegistry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
