package yamlcfg

import (
	"context"
	"fmt"
	"os"

	"github.com/zclconf/go-cty/cty"
	"gopkg.in/yaml.v3"

	"github.com/vk/foundry/internal/catalog"
	"github.com/vk/foundry/internal/ctxlog"
	"github.com/vk/foundry/internal/fsutil"
)

// builderAttr is the attribute naming the factory that handles an entry.
const builderAttr = "builder"

// Loader is the YAML implementation of catalog.Loader.
type Loader struct{}

// NewLoader creates a new YAML loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load reads every .yaml/.yml file under the given paths and translates
// it into an immutable catalog source.
func (l *Loader) Load(ctx context.Context, paths ...string) (catalog.Source, error) {
	logger := ctxlog.FromContext(ctx)

	var filePaths []string
	for _, path := range paths {
		found, err := fsutil.FindFilesByExtension(path, ".yaml", ".yml")
		if err != nil {
			return nil, fmt.Errorf("failed to walk config path %s: %w", path, err)
		}
		filePaths = append(filePaths, found...)
	}
	if len(filePaths) == 0 {
		logger.Warn("No YAML config files found.", "paths", paths)
	}

	source := make(catalog.Map)
	for _, filePath := range filePaths {
		if err := l.loadFile(filePath, source); err != nil {
			return nil, err
		}
		logger.Debug("Loaded config file.", "file", filePath)
	}

	logger.Debug("YAML configuration loaded.", "files", len(filePaths))
	return source, nil
}

func (l *Loader) loadFile(filePath string, source catalog.Map) error {
	raw, err := os.ReadFile(filePath)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	var doc map[string]map[string]map[string]any
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return fmt.Errorf("failed to parse YAML file %s: %w", filePath, err)
	}

	for conceptName, byName := range doc {
		for entryName, rawAttrs := range byName {
			entry := &catalog.Entry{
				Concept: catalog.Concept(conceptName),
				Name:    entryName,
				Attrs:   make(map[string]cty.Value, len(rawAttrs)),
			}
			for attrName, rawValue := range rawAttrs {
				if attrName == builderAttr {
					builder, ok := rawValue.(string)
					if !ok {
						return &catalog.ConfigError{
							Concept: entry.Concept, Name: entry.Name,
							Attr: builderAttr, Reason: "must be a string",
						}
					}
					entry.Builder = builder
					continue
				}
				value, err := toCtyValue(rawValue)
				if err != nil {
					return &catalog.ConfigError{
						Concept: entry.Concept, Name: entry.Name,
						Attr: attrName, Reason: err.Error(),
					}
				}
				entry.Attrs[attrName] = value
			}
			if err := source.Add(entry); err != nil {
				return fmt.Errorf("in %s: %w", filePath, err)
			}
		}
	}
	return nil
}
