package dimension

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/vk/foundry/internal/kvstore"
	"github.com/vk/foundry/internal/search"
)

// KeyTag marks the field whose values key rows in the backing store.
const KeyTag = "primaryKey"

// Field is one column of a dimension's row schema.
type Field struct {
	Name string
	Tags []string
}

// HasTag reports whether the field carries the given tag.
func (f Field) HasTag(tag string) bool {
	for _, t := range f.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// Dimension is a named, field-structured set of rows backed by a
// key-value store and indexed by a search provider. The field schema is
// fixed at build time; rows are added afterwards by loaders.
type Dimension struct {
	Name         string
	LongName     string
	Category     string
	Description  string
	Aggregatable bool

	fields  []Field
	byName  map[string]int
	keyName string

	store    kvstore.Store
	provider search.Provider
}

// New creates a dimension. Fields keep their declaration order; the key
// field is the first one tagged primaryKey, falling back to the first
// field. At least one field is required.
func New(name, longName, category, description string, aggregatable bool, fields []Field, store kvstore.Store, provider search.Provider) (*Dimension, error) {
	if len(fields) == 0 {
		return nil, fmt.Errorf("dimension %q requires at least one field", name)
	}
	byName := make(map[string]int, len(fields))
	keyName := ""
	for i, f := range fields {
		if _, dup := byName[f.Name]; dup {
			return nil, fmt.Errorf("dimension %q declares field %q twice", name, f.Name)
		}
		byName[f.Name] = i
		if keyName == "" && f.HasTag(KeyTag) {
			keyName = f.Name
		}
	}
	if keyName == "" {
		keyName = fields[0].Name
	}
	return &Dimension{
		Name:         name,
		LongName:     longName,
		Category:     category,
		Description:  description,
		Aggregatable: aggregatable,
		fields:       fields,
		byName:       byName,
		keyName:      keyName,
		store:        store,
		provider:     provider,
	}, nil
}

// Fields returns the field schema in declaration order.
func (d *Dimension) Fields() []Field {
	return d.fields
}

// Field returns the named field. Unknown names are an error.
func (d *Dimension) Field(name string) (Field, error) {
	i, ok := d.byName[name]
	if !ok {
		return Field{}, fmt.Errorf("dimension %q has no field named %q", d.Name, name)
	}
	return d.fields[i], nil
}

// KeyField returns the field keying rows in the backing store.
func (d *Dimension) KeyField() Field {
	return d.fields[d.byName[d.keyName]]
}

// Store returns the backing key-value store.
func (d *Dimension) Store() kvstore.Store { return d.store }

// SearchProvider returns the search provider indexing this dimension.
func (d *Dimension) SearchProvider() search.Provider { return d.provider }

// AddRow validates a row against the field schema, writes it to the
// backing store keyed by the key field's value, and indexes it. Rows may
// omit non-key fields but must not carry unknown ones.
func (d *Dimension) AddRow(ctx context.Context, row map[string]string) error {
	for field := range row {
		if _, ok := d.byName[field]; !ok {
			return fmt.Errorf("dimension %q has no field named %q", d.Name, field)
		}
	}
	key, ok := row[d.keyName]
	if !ok || key == "" {
		return fmt.Errorf("row for dimension %q is missing key field %q", d.Name, d.keyName)
	}

	encoded, err := json.Marshal(row)
	if err != nil {
		return fmt.Errorf("failed to encode row %q: %w", key, err)
	}
	if err := d.store.Put(ctx, key, string(encoded)); err != nil {
		return fmt.Errorf("failed to store row %q: %w", key, err)
	}
	if err := d.provider.Index(ctx, key, row); err != nil {
		return fmt.Errorf("failed to index row %q: %w", key, err)
	}
	return nil
}

// Row returns the stored row for key. Absent keys are an error.
func (d *Dimension) Row(ctx context.Context, key string) (map[string]string, error) {
	encoded, ok, err := d.store.Get(ctx, key)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("dimension %q has no row keyed %q", d.Name, key)
	}
	var row map[string]string
	if err := json.Unmarshal([]byte(encoded), &row); err != nil {
		return nil, fmt.Errorf("failed to decode row %q: %w", key, err)
	}
	return row, nil
}

// FindRows returns the rows whose field matches value according to the
// search provider.
func (d *Dimension) FindRows(ctx context.Context, field, value string) ([]map[string]string, error) {
	if _, ok := d.byName[field]; !ok {
		return nil, fmt.Errorf("dimension %q has no field named %q", d.Name, field)
	}
	keys, err := d.provider.Query(ctx, field, value)
	if err != nil {
		return nil, err
	}
	rows := make([]map[string]string, 0, len(keys))
	for _, key := range keys {
		row, err := d.Row(ctx, key)
		if err != nil {
			return nil, err
		}
		rows = append(rows, row)
	}
	return rows, nil
}
