package hclcfg

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/zclconf/go-cty/cty"

	"github.com/vk/foundry/internal/catalog"
)

// builderAttr is the attribute naming the factory that handles an entry.
const builderAttr = "builder"

// translateFile turns every top-level block of a parsed file into a
// catalog entry.
func translateFile(file *hcl.File, filePath string) ([]*catalog.Entry, error) {
	body, ok := file.Body.(*hclsyntax.Body)
	if !ok {
		return nil, fmt.Errorf("config file %s is not native HCL syntax", filePath)
	}

	var entries []*catalog.Entry
	for _, block := range body.Blocks {
		entry, err := translateBlock(block, filePath)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

// translateBlock converts one `<concept> "<name>" { ... }` block.
func translateBlock(block *hclsyntax.Block, filePath string) (*catalog.Entry, error) {
	if len(block.Labels) != 1 {
		return nil, fmt.Errorf("%s: %s block at %s requires exactly one name label",
			filePath, block.Type, block.DefRange().String())
	}
	entry := &catalog.Entry{
		Concept: catalog.Concept(block.Type),
		Name:    block.Labels[0],
		Attrs:   make(map[string]cty.Value),
	}

	attrs, nestedLists, err := translateBody(block.Body, filePath)
	if err != nil {
		return nil, fmt.Errorf("in %s %q: %w", block.Type, entry.Name, err)
	}
	for name, value := range attrs {
		if name == builderAttr {
			if value.Type() != cty.String {
				return nil, &catalog.ConfigError{
					Concept: entry.Concept, Name: entry.Name,
					Attr: builderAttr, Reason: "must be a string",
				}
			}
			entry.Builder = value.AsString()
			continue
		}
		entry.Attrs[name] = value
	}
	for name, list := range nestedLists {
		if _, clash := entry.Attrs[name]; clash {
			return nil, &catalog.ConfigError{
				Concept: entry.Concept, Name: entry.Name,
				Attr: name, Reason: "declared both as an attribute and as nested blocks",
			}
		}
		entry.Attrs[name] = cty.TupleVal(list)
	}
	return entry, nil
}

// translateBody evaluates a body's attributes and collects its nested
// blocks into ordered object lists keyed by pluralized block type.
func translateBody(body *hclsyntax.Body, filePath string) (map[string]cty.Value, map[string][]cty.Value, error) {
	attrs := make(map[string]cty.Value, len(body.Attributes))
	for name, attr := range body.Attributes {
		value, diags := attr.Expr.Value(nil)
		if diags.HasErrors() {
			return nil, nil, fmt.Errorf("attribute %q at %s: %w", name, attr.SrcRange.String(), diags)
		}
		attrs[name] = value
	}

	nested := make(map[string][]cty.Value)
	for _, block := range body.Blocks {
		obj, err := translateNestedBlock(block, filePath)
		if err != nil {
			return nil, nil, err
		}
		key := block.Type + "s"
		nested[key] = append(nested[key], obj)
	}
	return attrs, nested, nil
}

// translateNestedBlock converts a nested block into an object value. The
// optional label becomes the object's name.
func translateNestedBlock(block *hclsyntax.Block, filePath string) (cty.Value, error) {
	if len(block.Body.Blocks) > 0 {
		return cty.NilVal, fmt.Errorf("%s: %s block at %s may not contain further blocks",
			filePath, block.Type, block.DefRange().String())
	}
	obj := make(map[string]cty.Value, len(block.Body.Attributes)+1)
	switch len(block.Labels) {
	case 0:
	case 1:
		obj["name"] = cty.StringVal(block.Labels[0])
	default:
		return cty.NilVal, fmt.Errorf("%s: %s block at %s takes at most one label",
			filePath, block.Type, block.DefRange().String())
	}
	for name, attr := range block.Body.Attributes {
		value, diags := attr.Expr.Value(nil)
		if diags.HasErrors() {
			return cty.NilVal, fmt.Errorf("attribute %q at %s: %w", name, attr.SrcRange.String(), diags)
		}
		obj[name] = value
	}
	return cty.ObjectVal(obj), nil
}
