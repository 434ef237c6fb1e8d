package catalog

import (
	"fmt"

	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/gocty"
)

// Concept names a category of resource the engine knows how to build.
// The set is open: registering a factory table for a new concept is all
// it takes to introduce one.
type Concept string

// Concepts with built-in factory tables.
const (
	ConceptDimension      Concept = "dimension"
	ConceptMetric         Concept = "metric"
	ConceptKeyValueStore  Concept = "key_value_store"
	ConceptSearchProvider Concept = "search_provider"
	ConceptTable          Concept = "table"
)

// Entry is one named unit of declarative configuration. Entries are
// immutable once loaded.
type Entry struct {
	Concept Concept
	Name    string

	// Builder selects which factory within the concept's table handles
	// this entry. Empty means the concept's default builder.
	Builder string

	// Attrs maps attribute names to values: scalars, object values
	// (nested mappings), or list values (ordered sequences). A bare
	// string is interpreted by factories as a reference to another
	// entry where the attribute calls for one.
	Attrs map[string]cty.Value
}

// ConfigError reports an entry that is present but structurally unusable:
// a required attribute is missing or an attribute has the wrong shape.
type ConfigError struct {
	Concept Concept
	Name    string
	Attr    string
	Reason  string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("config error in %s %q: attribute %q: %s", e.Concept, e.Name, e.Attr, e.Reason)
}

func (e *Entry) configErr(attr, reason string) error {
	return &ConfigError{Concept: e.Concept, Name: e.Name, Attr: attr, Reason: reason}
}

// String returns the named attribute as a string. The attribute is required.
func (e *Entry) String(attr string) (string, error) {
	v, ok := e.Attrs[attr]
	if !ok || v.IsNull() {
		return "", e.configErr(attr, "required attribute is missing")
	}
	if v.Type() != cty.String {
		return "", e.configErr(attr, fmt.Sprintf("expected string, got %s", v.Type().FriendlyName()))
	}
	return v.AsString(), nil
}

// OptString returns the named attribute as a string, or fallback when the
// attribute is absent.
func (e *Entry) OptString(attr, fallback string) (string, error) {
	v, ok := e.Attrs[attr]
	if !ok || v.IsNull() {
		return fallback, nil
	}
	if v.Type() != cty.String {
		return "", e.configErr(attr, fmt.Sprintf("expected string, got %s", v.Type().FriendlyName()))
	}
	return v.AsString(), nil
}

// OptBool returns the named attribute as a bool, or fallback when absent.
func (e *Entry) OptBool(attr string, fallback bool) (bool, error) {
	v, ok := e.Attrs[attr]
	if !ok || v.IsNull() {
		return fallback, nil
	}
	if v.Type() != cty.Bool {
		return false, e.configErr(attr, fmt.Sprintf("expected bool, got %s", v.Type().FriendlyName()))
	}
	return v.True(), nil
}

// OptInt returns the named attribute as an int, or fallback when absent.
func (e *Entry) OptInt(attr string, fallback int) (int, error) {
	v, ok := e.Attrs[attr]
	if !ok || v.IsNull() {
		return fallback, nil
	}
	var n int
	if err := gocty.FromCtyValue(v, &n); err != nil {
		return 0, e.configErr(attr, fmt.Sprintf("expected number: %v", err))
	}
	return n, nil
}

// StringList returns the named attribute as an ordered list of strings.
// The attribute is required.
func (e *Entry) StringList(attr string) ([]string, error) {
	v, ok := e.Attrs[attr]
	if !ok || v.IsNull() {
		return nil, e.configErr(attr, "required attribute is missing")
	}
	return e.stringSlice(attr, v)
}

// OptStringList is StringList for an optional attribute; absence yields nil.
func (e *Entry) OptStringList(attr string) ([]string, error) {
	v, ok := e.Attrs[attr]
	if !ok || v.IsNull() {
		return nil, nil
	}
	return e.stringSlice(attr, v)
}

func (e *Entry) stringSlice(attr string, v cty.Value) ([]string, error) {
	if !v.CanIterateElements() {
		return nil, e.configErr(attr, fmt.Sprintf("expected list of strings, got %s", v.Type().FriendlyName()))
	}
	var out []string
	for it := v.ElementIterator(); it.Next(); {
		_, ev := it.Element()
		if ev.IsNull() || ev.Type() != cty.String {
			return nil, e.configErr(attr, "expected list of strings")
		}
		out = append(out, ev.AsString())
	}
	return out, nil
}

// ObjectList returns the named attribute as an ordered sequence of nested
// mappings, preserving declaration order. The attribute is required.
func (e *Entry) ObjectList(attr string) ([]map[string]cty.Value, error) {
	v, ok := e.Attrs[attr]
	if !ok || v.IsNull() {
		return nil, e.configErr(attr, "required attribute is missing")
	}
	if !v.CanIterateElements() {
		return nil, e.configErr(attr, fmt.Sprintf("expected list of objects, got %s", v.Type().FriendlyName()))
	}
	var out []map[string]cty.Value
	for it := v.ElementIterator(); it.Next(); {
		_, ev := it.Element()
		if ev.IsNull() || !ev.Type().IsObjectType() && !ev.Type().IsMapType() {
			return nil, e.configErr(attr, "expected list of objects")
		}
		out = append(out, ev.AsValueMap())
	}
	return out, nil
}
