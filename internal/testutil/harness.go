// Package testutil provides shared helpers for tests that parse widget
// manifests from in-memory HCL strings.
package testutil

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/vk/needsgo/internal/model"
	"github.com/vk/needsgo/internal/registry"
	"github.com/zclconf/go-cty/cty"
)

// CtyValueComparer teaches go-cmp to compare cty values by raw equality.
var CtyValueComparer = cmp.Comparer(func(a, b cty.Value) bool {
	return a.RawEquals(b)
})

// ParseWidgetsHCL parses widget definitions from an in-memory manifest
// string. Parse and authoring problems come back as the error.
func ParseWidgetsHCL(t *testing.T, src string) ([]*model.Widget, error) {
	t.Helper()

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL([]byte(src), "test.hcl")
	if diags.HasErrors() {
		return nil, diags
	}
	return model.NewWidgets(context.Background(), file, "test.hcl")
}

// RegistryFromHCL builds a registry holding exactly the widgets declared in
// the given manifest string.
func RegistryFromHCL(t *testing.T, src string) (*registry.Registry, error) {
	t.Helper()

	widgets, err := ParseWidgetsHCL(t, src)
	if err != nil {
		return nil, err
	}
	reg := registry.New()
	for _, w := range widgets {
		if err := reg.AddWidget(w); err != nil {
			return nil, err
		}
	}
	return reg, nil
}
