package hclcfg

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/vk/foundry/internal/catalog"
	"github.com/vk/foundry/internal/ctxlog"
	"github.com/vk/foundry/internal/fsutil"
)

// Loader is the HCL implementation of catalog.Loader.
type Loader struct{}

// NewLoader creates a new HCL loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load reads every .hcl file under the given paths and translates it into
// an immutable catalog source. Parse and shape errors surface here, before
// any factory runs.
func (l *Loader) Load(ctx context.Context, paths ...string) (catalog.Source, error) {
	logger := ctxlog.FromContext(ctx)

	var filePaths []string
	for _, path := range paths {
		found, err := fsutil.FindFilesByExtension(path, ".hcl")
		if err != nil {
			return nil, fmt.Errorf("failed to walk config path %s: %w", path, err)
		}
		filePaths = append(filePaths, found...)
	}
	if len(filePaths) == 0 {
		logger.Warn("No .hcl config files found.", "paths", paths)
	}

	parser := hclparse.NewParser()
	source := make(catalog.Map)

	for _, filePath := range filePaths {
		hclFile, diags := parser.ParseHCLFile(filePath)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to parse HCL file %s: %w", filePath, diags)
		}
		entries, err := translateFile(hclFile, filePath)
		if err != nil {
			return nil, err
		}
		for _, entry := range entries {
			if err := source.Add(entry); err != nil {
				return nil, fmt.Errorf("in %s: %w", filePath, err)
			}
		}
		logger.Debug("Loaded config file.", "file", filePath, "entries", len(entries))
	}

	logger.Debug("HCL configuration loaded.", "files", len(filePaths))
	return source, nil
}
