package builtin_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zclconf/go-cty/cty"

	"github.com/vk/foundry/internal/builtin"
	"github.com/vk/foundry/internal/catalog"
	"github.com/vk/foundry/internal/dimension"
	"github.com/vk/foundry/internal/foundry"
	"github.com/vk/foundry/internal/kvstore"
	"github.com/vk/foundry/internal/metric"
	"github.com/vk/foundry/internal/search"
)

// testSource describes a store, a search provider, and a dimension wired
// to both by name.
func testSource(t *testing.T) catalog.Map {
	t.Helper()
	source := make(catalog.Map)
	entries := []*catalog.Entry{
		{
			Concept: catalog.ConceptKeyValueStore,
			Name:    "kvs1",
			Builder: "memory",
			Attrs:   map[string]cty.Value{},
		},
		{
			Concept: catalog.ConceptSearchProvider,
			Name:    "sp1",
			Builder: "scan",
			Attrs:   map[string]cty.Value{},
		},
		{
			Concept: catalog.ConceptMetric,
			Name:    "pageViews",
			Attrs:   map[string]cty.Value{},
		},
		{
			Concept: catalog.ConceptDimension,
			Name:    "testDimension",
			Attrs: map[string]cty.Value{
				"long_name":       cty.StringVal("Test Dimension"),
				"key_value_store": cty.StringVal("kvs1"),
				"search_provider": cty.StringVal("sp1"),
				"fields": cty.TupleVal([]cty.Value{
					cty.ObjectVal(map[string]cty.Value{
						"name": cty.StringVal("id"),
						"tags": cty.TupleVal([]cty.Value{cty.StringVal(dimension.KeyTag)}),
					}),
					cty.ObjectVal(map[string]cty.Value{
						"name": cty.StringVal("desc"),
					}),
				}),
			},
		},
	}
	for _, e := range entries {
		require.NoError(t, source.Add(e))
	}
	return source
}

func TestDimensionWiredToNamedDependencies(t *testing.T) {
	f, err := builtin.NewAssembler(testSource(t)).Build()
	require.NoError(t, err)
	ctx := context.Background()

	d, err := foundry.GetAs[*dimension.Dimension](ctx, f, catalog.ConceptDimension, "testDimension")
	require.NoError(t, err)
	assert.Equal(t, "Test Dimension", d.LongName)

	idField, err := d.Field("id")
	require.NoError(t, err)
	assert.True(t, idField.HasTag(dimension.KeyTag))

	_, err = d.Field("nonexistent")
	assert.ErrorContains(t, err, `no field named "nonexistent"`)

	// The dimension's store and provider are the same instances any
	// direct lookup returns.
	store, err := foundry.GetAs[kvstore.Store](ctx, f, catalog.ConceptKeyValueStore, "kvs1")
	require.NoError(t, err)
	assert.Same(t, store, d.Store())

	provider, err := foundry.GetAs[search.Provider](ctx, f, catalog.ConceptSearchProvider, "sp1")
	require.NoError(t, err)
	assert.Same(t, provider, d.SearchProvider())
}

func TestOverrideReplacesOneConceptOnly(t *testing.T) {
	type stubDimension struct{ name string }

	overrides := foundry.FactoryTable{
		foundry.DefaultBuilder: func(ctx context.Context, name string, entry *catalog.Entry, res foundry.Resolver) (any, error) {
			return &stubDimension{name: name}, nil
		},
	}

	f, err := builtin.NewAssembler(testSource(t)).
		WithFactories(catalog.ConceptDimension, overrides).
		Build()
	require.NoError(t, err)
	ctx := context.Background()

	d, err := f.Get(ctx, catalog.ConceptDimension, "testDimension")
	require.NoError(t, err)
	stub, ok := d.(*stubDimension)
	require.True(t, ok)
	assert.Equal(t, "testDimension", stub.name)

	// Untouched concepts still use the built-in factories.
	_, err = foundry.GetAs[kvstore.Store](ctx, f, catalog.ConceptKeyValueStore, "kvs1")
	assert.NoError(t, err)
	_, err = foundry.GetAs[*metric.Metric](ctx, f, catalog.ConceptMetric, "pageViews")
	assert.NoError(t, err)
}

func TestEagerLoadMaterializesEverything(t *testing.T) {
	f, err := builtin.NewAssembler(testSource(t)).Build()
	require.NoError(t, err)

	require.NoError(t, f.Load(context.Background()))
	assert.Equal(t, 1, f.Built(catalog.ConceptDimension))
	assert.Equal(t, 1, f.Built(catalog.ConceptKeyValueStore))
	assert.Equal(t, 1, f.Built(catalog.ConceptSearchProvider))
}

func TestTablesReturnsFreshCopies(t *testing.T) {
	a := builtin.Tables()
	delete(a, catalog.ConceptDimension)
	b := builtin.Tables()
	assert.Contains(t, b, catalog.ConceptDimension)
}
