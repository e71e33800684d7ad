package integration_tests

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/needsgo/internal/construct"
	"github.com/vk/needsgo/internal/contract"
	"github.com/vk/needsgo/internal/testutil"
	"github.com/zclconf/go-cty/cty"
)

func TestManifestToConstruction(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	reg, err := testutil.RegistryFromHCL(t, `
	widget "panel" {
		needs "width" { default = 12 }
	}

	widget "card" {
		extends = ["panel"]

		needs "title" {}
		needs "footer" { default = "none" }
	}`)
	require.NoError(t, err)

	c := construct.New(reg)

	t.Run("Success: defaults merge across the manifest chain", func(t *testing.T) {
		t.Parallel()

		inst, err := c.Construct(ctx, "card", map[string]cty.Value{
			"title": cty.StringVal("hello"),
			"width": cty.NumberIntVal(4),
		})
		require.NoError(t, err)

		assert.Empty(t, cmp.Diff(map[string]cty.Value{
			"title":  cty.StringVal("hello"),
			"footer": cty.StringVal("none"),
			"width":  cty.NumberIntVal(4),
		}, inst.Values(), testutil.CtyValueComparer))
	})

	t.Run("Error: missing required name from a manifest contract", func(t *testing.T) {
		t.Parallel()

		_, err := c.Construct(ctx, "card", nil)
		var missing *contract.MissingParametersError
		require.ErrorAs(t, err, &missing)
		assert.Equal(t, []string{"title"}, missing.Names)
	})

	t.Run("Error: unknown name lists the chain's accepted set", func(t *testing.T) {
		t.Parallel()

		_, err := c.Construct(ctx, "card", map[string]cty.Value{
			"titel": cty.StringVal("typo"),
		})
		var unknown *contract.UnknownParameterError
		require.ErrorAs(t, err, &unknown)
		assert.Equal(t, "titel", unknown.Name)
		assert.Equal(t, []string{"title", "footer", "width"}, unknown.Accepted)
	})
}

func TestManifestAuthoringErrors(t *testing.T) {
	t.Parallel()

	t.Run("sentinel mixed with needs is rejected at parse time", func(t *testing.T) {
		t.Parallel()

		_, err := testutil.ParseWidgetsHCL(t, `
		widget "broken" {
			no_parameters = true
			needs "a" {}
		}`)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "no-parameters sentinel")
	})

	t.Run("duplicate widget types across manifests are rejected", func(t *testing.T) {
		t.Parallel()

		_, err := testutil.RegistryFromHCL(t, `
		widget "a" {}
		widget "a" {}`)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "already defined")
	})
}
