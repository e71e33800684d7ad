package model

import (
	"context"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/vk/needsgo/internal/contract"
	"github.com/vk/needsgo/internal/ctxlog"
)

// Widget is the format-agnostic representation of a widget type definition.
type Widget struct {
	Type        string
	Description string

	// Extends lists ancestor type names in resolution order. The effective
	// contract of this type includes the contracts of every ancestor.
	Extends []string

	// Contract is the type's own frozen declaration list.
	Contract *contract.Contract

	// Source records where the definition came from: a manifest file path,
	// or "builtin" for compiled-in widget modules.
	Source string
}

// NewWidgets is a factory function for creating widget definitions from a
// parsed HCL file.
func NewWidgets(ctx context.Context, hclFile *hcl.File, filePath string) ([]*Widget, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Creating widget definitions", "file_path", filePath)

	widgets, diags := ParseWidgetFile(ctx, hclFile, filePath)
	if diags.HasErrors() {
		return nil, diags
	}
	return widgets, nil
}

// widgetRootSchema defines the top-level structure of a manifest file,
// expecting one or more 'widget' blocks.
type widgetRootSchema struct {
	Widgets []*hclWidget `hcl:"widget,block"`
}

// hclWidget represents a single 'widget' block for decoding purposes.
type hclWidget struct {
	Type string   `hcl:"type,label"`
	Body hcl.Body `hcl:",remain"`
}

// widgetBodySchema is the HCL schema for the body of a 'widget' block.
var widgetBodySchema = &hcl.BodySchema{
	Attributes: []hcl.AttributeSchema{
		{Name: "description"},
		{Name: "extends"},
		{Name: "no_parameters"},
	},
	Blocks: []hcl.BlockHeaderSchema{
		{Type: "needs", LabelNames: []string{"name"}},
	},
}

// ParseWidgetFile decodes an HCL file that contains one or more 'widget'
// blocks into widget definitions.
func ParseWidgetFile(ctx context.Context, hclFile *hcl.File, filePath string) ([]*Widget, hcl.Diagnostics) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Parsing widget definitions from file", "file_path", filePath)

	var allDiags hcl.Diagnostics
	if hclFile == nil {
		allDiags = append(allDiags, &hcl.Diagnostic{
			Severity: hcl.DiagError,
			Summary:  "HCL file is nil",
		})
		return nil, allDiags
	}

	var root widgetRootSchema
	allDiags = append(allDiags, gohcl.DecodeBody(hclFile.Body, nil, &root)...)
	if allDiags.HasErrors() {
		return nil, allDiags
	}

	widgets := make([]*Widget, 0, len(root.Widgets))
	for _, raw := range root.Widgets {
		w, diags := parseWidgetBlock(raw, filePath)
		allDiags = append(allDiags, diags...)
		if w != nil {
			widgets = append(widgets, w)
		}
	}

	if allDiags.HasErrors() {
		return nil, allDiags
	}
	logger.Debug("Parsed widget definitions", "file_path", filePath, "count", len(widgets))
	return widgets, nil
}

// parseWidgetBlock decodes the body of one 'widget' block into a Widget,
// building and freezing its contract.
func parseWidgetBlock(raw *hclWidget, filePath string) (*Widget, hcl.Diagnostics) {
	content, diags := raw.Body.Content(widgetBodySchema)
	if diags.HasErrors() {
		return nil, diags
	}

	w := &Widget{
		Type:   raw.Type,
		Source: filePath,
	}

	if attr, ok := content.Attributes["description"]; ok {
		diags = append(diags, gohcl.DecodeExpression(attr.Expr, nil, &w.Description)...)
	}
	if attr, ok := content.Attributes["extends"]; ok {
		diags = append(diags, gohcl.DecodeExpression(attr.Expr, nil, &w.Extends)...)
	}

	builder := contract.NewBuilder()
	if attr, ok := content.Attributes["no_parameters"]; ok {
		var noParams bool
		diags = append(diags, gohcl.DecodeExpression(attr.Expr, nil, &noParams)...)
		if noParams {
			builder.Declare(contract.NoParameters())
		}
	}

	decls, needsDiags := parseNeeds(content.Blocks.OfType("needs"))
	diags = append(diags, needsDiags...)
	if diags.HasErrors() {
		return nil, diags
	}
	builder.Declare(decls...)

	c, err := builder.Build()
	if err != nil {
		defRange := raw.Body.MissingItemRange()
		diags = append(diags, &hcl.Diagnostic{
			Severity: hcl.DiagError,
			Summary:  "Invalid widget contract",
			Detail:   err.Error(),
			Subject:  &defRange,
		})
		return nil, diags
	}
	w.Contract = c

	return w, diags
}
