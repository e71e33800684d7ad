package registry

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/vk/needsgo/internal/ctxlog"
	"github.com/vk/needsgo/internal/fsutil"
	"github.com/vk/needsgo/internal/model"
)

// LoadManifestsRecursively discovers every .hcl manifest under the given
// path and registers the widget definitions they declare.
func (r *Registry) LoadManifestsRecursively(ctx context.Context, manifestsPath string) error {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Registry loading widget definitions from manifests path...", "path", manifestsPath)

	filePaths, err := fsutil.FindFilesByExtension(manifestsPath, ".hcl")
	if err != nil {
		logger.Error("Failed to walk manifests directory", "path", manifestsPath, "error", err)
		return err
	}

	if len(filePaths) == 0 {
		logger.Warn("No .hcl manifest files found in path", "path", manifestsPath)
		return nil
	}

	logger.Debug("Found HCL manifest files to load", "files", filePaths)

	parser := hclparse.NewParser()

	loaded := 0
	for _, filePath := range filePaths {
		hclFile, diags := parser.ParseHCLFile(filePath)
		if diags.HasErrors() {
			return fmt.Errorf("failed to parse HCL file %s: %w", filePath, diags)
		}

		widgets, err := model.NewWidgets(ctx, hclFile, filePath)
		if err != nil {
			return fmt.Errorf("failed to process widget definitions in %s: %w", filePath, err)
		}
		for _, w := range widgets {
			if err := r.AddWidget(w); err != nil {
				return fmt.Errorf("in %s: %w", filePath, err)
			}
		}
		loaded += len(widgets)
		logger.Debug("Successfully loaded definitions from HCL file", "file", filePath)
	}

	logger.Info("Registry loaded successfully.", "widget_definitions_loaded", loaded)
	return nil
}
