package dimension

import (
	"context"

	"github.com/zclconf/go-cty/cty"

	"github.com/vk/foundry/internal/catalog"
	"github.com/vk/foundry/internal/foundry"
	"github.com/vk/foundry/internal/kvstore"
	"github.com/vk/foundry/internal/search"
)

// Factories returns the built-in dimension factory table.
func Factories() foundry.FactoryTable {
	return foundry.FactoryTable{
		foundry.DefaultBuilder: newKeyValueStoreDimension,
		"keyValueStore":        newKeyValueStoreDimension,
	}
}

// newKeyValueStoreDimension builds a dimension backed by a named
// key-value store and a named search provider, both resolved through the
// same foundry so the dimension shares the instances any other requester
// would see.
func newKeyValueStoreDimension(ctx context.Context, name string, entry *catalog.Entry, res foundry.Resolver) (any, error) {
	longName, err := entry.OptString("long_name", name)
	if err != nil {
		return nil, err
	}
	category, err := entry.OptString("category", "General")
	if err != nil {
		return nil, err
	}
	description, err := entry.OptString("description", "")
	if err != nil {
		return nil, err
	}
	aggregatable, err := entry.OptBool("aggregatable", true)
	if err != nil {
		return nil, err
	}

	storeName, err := entry.String("key_value_store")
	if err != nil {
		return nil, err
	}
	providerName, err := entry.String("search_provider")
	if err != nil {
		return nil, err
	}

	fields, err := decodeFields(entry)
	if err != nil {
		return nil, err
	}

	store, err := foundry.GetAs[kvstore.Store](ctx, res, catalog.ConceptKeyValueStore, storeName)
	if err != nil {
		return nil, err
	}
	provider, err := foundry.GetAs[search.Provider](ctx, res, catalog.ConceptSearchProvider, providerName)
	if err != nil {
		return nil, err
	}

	return New(name, longName, category, description, aggregatable, fields, store, provider)
}

// decodeFields reads the ordered `fields` attribute: a sequence of
// objects, each with a name and an optional list of tags.
func decodeFields(entry *catalog.Entry) ([]Field, error) {
	objects, err := entry.ObjectList("fields")
	if err != nil {
		return nil, err
	}
	fields := make([]Field, 0, len(objects))
	for _, obj := range objects {
		nameVal, ok := obj["name"]
		if !ok || nameVal.IsNull() || nameVal.Type() != cty.String {
			return nil, &catalog.ConfigError{
				Concept: entry.Concept, Name: entry.Name,
				Attr: "fields", Reason: "each field requires a string name",
			}
		}
		field := Field{Name: nameVal.AsString()}
		if tagsVal, ok := obj["tags"]; ok && !tagsVal.IsNull() {
			if !tagsVal.CanIterateElements() {
				return nil, &catalog.ConfigError{
					Concept: entry.Concept, Name: entry.Name,
					Attr: "fields", Reason: "field tags must be a list of strings",
				}
			}
			for it := tagsVal.ElementIterator(); it.Next(); {
				_, tv := it.Element()
				if tv.IsNull() || tv.Type() != cty.String {
					return nil, &catalog.ConfigError{
						Concept: entry.Concept, Name: entry.Name,
						Attr: "fields", Reason: "field tags must be a list of strings",
					}
				}
				field.Tags = append(field.Tags, tv.AsString())
			}
		}
		fields = append(fields, field)
	}
	return fields, nil
}
