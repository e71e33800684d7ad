package model

import (
	"context"
	"testing"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zclconf/go-cty/cty"
)

func parseWidgets(t *testing.T, src string) ([]*Widget, hcl.Diagnostics) {
	t.Helper()

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL([]byte(src), "test.hcl")
	require.False(t, diags.HasErrors(), "test HCL must be syntactically valid: %s", diags)

	return ParseWidgetFile(context.Background(), file, "test.hcl")
}

func TestParseWidgetFile(t *testing.T) {
	t.Parallel()

	t.Run("Success: full widget definition", func(t *testing.T) {
		t.Parallel()

		widgets, diags := parseWidgets(t, `
		widget "card" {
			description = "A titled card."
			extends     = ["panel"]

			needs "title" {
				description = "Heading text."
			}

			needs "width" {
				default = 100
			}
		}`)
		require.False(t, diags.HasErrors(), "unexpected diagnostics: %s", diags)
		require.Len(t, widgets, 1)

		w := widgets[0]
		assert.Equal(t, "card", w.Type)
		assert.Equal(t, "A titled card.", w.Description)
		assert.Equal(t, []string{"panel"}, w.Extends)
		assert.Equal(t, "test.hcl", w.Source)

		decls := w.Contract.Declarations()
		require.Len(t, decls, 2)

		assert.Equal(t, "title", decls[0].Name)
		assert.Equal(t, "Heading text.", decls[0].Description)
		assert.Nil(t, decls[0].Default, "a bare needs block declares a required parameter")

		assert.Equal(t, "width", decls[1].Name)
		require.NotNil(t, decls[1].Default)
		assert.True(t, decls[1].Default.RawEquals(cty.NumberIntVal(100)))
	})

	t.Run("Success: multiple widget blocks in one file", func(t *testing.T) {
		t.Parallel()

		widgets, diags := parseWidgets(t, `
		widget "a" {
			needs "x" {}
		}
		widget "b" {}`)
		require.False(t, diags.HasErrors())
		require.Len(t, widgets, 2)
		assert.Equal(t, "a", widgets[0].Type)
		assert.Equal(t, "b", widgets[1].Type)
		assert.True(t, widgets[1].Contract.Empty(), "a widget with no needs has no contract")
	})

	t.Run("Success: no_parameters sentinel", func(t *testing.T) {
		t.Parallel()

		widgets, diags := parseWidgets(t, `
		widget "spacer" {
			no_parameters = true
		}`)
		require.False(t, diags.HasErrors())
		require.Len(t, widgets, 1)

		decls := widgets[0].Contract.Declarations()
		require.Len(t, decls, 1)
		assert.True(t, decls[0].NoParams)
	})

	t.Run("Success: no_parameters set to false is a no-op", func(t *testing.T) {
		t.Parallel()

		widgets, diags := parseWidgets(t, `
		widget "x" {
			no_parameters = false
			needs "a" {}
		}`)
		require.False(t, diags.HasErrors())
		require.Len(t, widgets, 1)
		require.Len(t, widgets[0].Contract.Declarations(), 1)
		assert.Equal(t, "a", widgets[0].Contract.Declarations()[0].Name)
	})

	t.Run("Error: no_parameters combined with needs", func(t *testing.T) {
		t.Parallel()

		_, diags := parseWidgets(t, `
		widget "broken" {
			no_parameters = true
			needs "a" {}
		}`)
		require.True(t, diags.HasErrors())
		assert.Contains(t, diags.Error(), "Invalid widget contract")
	})

	t.Run("Error: duplicate needs declaration", func(t *testing.T) {
		t.Parallel()

		_, diags := parseWidgets(t, `
		widget "broken" {
			needs "a" {}
			needs "a" { default = 1 }
		}`)
		require.True(t, diags.HasErrors())
		assert.Contains(t, diags.Error(), "Duplicate needs declaration")
	})

	t.Run("Error: unsupported attribute in needs block", func(t *testing.T) {
		t.Parallel()

		_, diags := parseWidgets(t, `
		widget "broken" {
			needs "a" {
				type = string
			}
		}`)
		require.True(t, diags.HasErrors())
	})
}

func TestNewWidgets_DiagnosticsBecomeError(t *testing.T) {
	t.Parallel()

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL([]byte(`
	widget "broken" {
		needs "a" {}
		needs "a" {}
	}`), "test.hcl")
	require.False(t, diags.HasErrors())

	_, err := NewWidgets(context.Background(), file, "test.hcl")
	require.Error(t, err)
}
