package model

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/vk/needsgo/internal/contract"
)

// needsBodySchema is the HCL schema for the body of a 'needs' block. A bare
// block declares a required parameter; a 'default' attribute makes it
// optional.
var needsBodySchema = &hcl.BodySchema{
	Attributes: []hcl.AttributeSchema{
		{Name: "default"},
		{Name: "description"},
	},
}

// parseNeeds decodes all 'needs' blocks of a widget body into contract
// declarations, preserving block order.
func parseNeeds(blocks hcl.Blocks) ([]contract.Declaration, hcl.Diagnostics) {
	var diags hcl.Diagnostics
	var decls []contract.Declaration
	seen := make(map[string]struct{}, len(blocks))

	for _, block := range blocks {
		// The schema guarantees us one label.
		name := block.Labels[0]

		if _, exists := seen[name]; exists {
			diags = append(diags, &hcl.Diagnostic{
				Severity: hcl.DiagError,
				Summary:  "Duplicate needs declaration",
				Detail:   fmt.Sprintf("A parameter named '%s' has already been declared.", name),
				Subject:  &block.DefRange,
			})
			continue
		}
		seen[name] = struct{}{}

		bodyContent, contentDiags := block.Body.Content(needsBodySchema)
		diags = append(diags, contentDiags...)
		if contentDiags.HasErrors() {
			continue
		}

		decl := contract.Bare(name)

		if attr, ok := bodyContent.Attributes["description"]; ok {
			diags = append(diags, gohcl.DecodeExpression(attr.Expr, nil, &decl.Description)...)
		}

		if attr, ok := bodyContent.Attributes["default"]; ok {
			// Defaults are literal values, evaluated without a context.
			val, valDiags := attr.Expr.Value(nil)
			diags = append(diags, valDiags...)
			if valDiags.HasErrors() {
				continue
			}
			decl.Default = &val
		}

		decls = append(decls, decl)
	}

	return decls, diags
}
