package registry

import (
	"context"
	"fmt"
	"strings"

	"github.com/vk/needsgo/internal/ctxlog"
)

// Validate performs a strict consistency check over the populated registry.
// It verifies that every 'extends' reference points at a registered type and
// that the ancestry graph contains no cycles, collecting every problem
// before failing so the user sees the full picture at once.
func (r *Registry) Validate(ctx context.Context) error {
	var errs []string
	logger := ctxlog.FromContext(ctx)

	for _, name := range r.Types() {
		def := r.widgetRegistry[name]
		for _, anc := range def.Extends {
			if _, ok := r.widgetRegistry[anc]; !ok {
				errs = append(errs, fmt.Sprintf("widget '%s': extends unknown type '%s'", name, anc))
			}
		}
	}

	for _, name := range r.Types() {
		if cycle := r.findCycle(name); cycle != nil {
			errs = append(errs, fmt.Sprintf("widget '%s': extends cycle: %s", name, strings.Join(cycle, " -> ")))
			break
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("registry validation failed:\n- %s", strings.Join(errs, "\n- "))
	}

	logger.Debug("Registry validated.", "widget_types", len(r.widgetRegistry))
	return nil
}

// findCycle walks the extends graph from the given type and returns the
// first cycle found as a path of type names, or nil.
func (r *Registry) findCycle(start string) []string {
	onPath := make(map[string]bool)
	var path []string

	var walk func(string) []string
	walk = func(name string) []string {
		if onPath[name] {
			return append(append([]string{}, path...), name)
		}
		def, ok := r.widgetRegistry[name]
		if !ok {
			return nil // unknown ancestors are reported separately
		}
		onPath[name] = true
		path = append(path, name)
		for _, anc := range def.Extends {
			if cycle := walk(anc); cycle != nil {
				return cycle
			}
		}
		path = path[:len(path)-1]
		onPath[name] = false
		return nil
	}
	return walk(start)
}
