package dimension

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/foundry/internal/kvstore"
	"github.com/vk/foundry/internal/search"
)

func testDimension(t *testing.T) *Dimension {
	t.Helper()
	d, err := New("country", "Country", "Geo", "Countries of the world", true,
		[]Field{
			{Name: "id", Tags: []string{KeyTag}},
			{Name: "desc"},
		},
		kvstore.NewMemoryStore(), search.NewScanProvider())
	require.NoError(t, err)
	return d
}

func TestNewRequiresFields(t *testing.T) {
	_, err := New("empty", "", "", "", true, nil, kvstore.NewMemoryStore(), search.NewScanProvider())
	assert.ErrorContains(t, err, "at least one field")
}

func TestNewRejectsDuplicateFields(t *testing.T) {
	_, err := New("dup", "", "", "", true,
		[]Field{{Name: "id"}, {Name: "id"}},
		kvstore.NewMemoryStore(), search.NewScanProvider())
	assert.ErrorContains(t, err, "twice")
}

func TestFieldLookup(t *testing.T) {
	d := testDimension(t)

	f, err := d.Field("desc")
	require.NoError(t, err)
	assert.Equal(t, "desc", f.Name)

	_, err = d.Field("unknown")
	assert.ErrorContains(t, err, `no field named "unknown"`)
}

func TestKeyFieldSelection(t *testing.T) {
	d := testDimension(t)
	assert.Equal(t, "id", d.KeyField().Name)

	// Without a primaryKey tag the first field keys rows.
	d2, err := New("untagged", "", "", "", true,
		[]Field{{Name: "code"}, {Name: "desc"}},
		kvstore.NewMemoryStore(), search.NewScanProvider())
	require.NoError(t, err)
	assert.Equal(t, "code", d2.KeyField().Name)

	// The tag wins regardless of position.
	d3, err := New("tagged", "", "", "", true,
		[]Field{{Name: "desc"}, {Name: "code", Tags: []string{KeyTag}}},
		kvstore.NewMemoryStore(), search.NewScanProvider())
	require.NoError(t, err)
	assert.Equal(t, "code", d3.KeyField().Name)
}

func TestAddRowAndRow(t *testing.T) {
	d := testDimension(t)
	ctx := context.Background()

	require.NoError(t, d.AddRow(ctx, map[string]string{"id": "US", "desc": "United States"}))

	row, err := d.Row(ctx, "US")
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"id": "US", "desc": "United States"}, row)

	_, err = d.Row(ctx, "XX")
	assert.ErrorContains(t, err, `no row keyed "XX"`)
}

func TestAddRowValidation(t *testing.T) {
	d := testDimension(t)
	ctx := context.Background()

	err := d.AddRow(ctx, map[string]string{"id": "US", "bogus": "x"})
	assert.ErrorContains(t, err, `no field named "bogus"`)

	err = d.AddRow(ctx, map[string]string{"desc": "keyless"})
	assert.ErrorContains(t, err, "missing key field")
}

func TestFindRows(t *testing.T) {
	d := testDimension(t)
	ctx := context.Background()
	require.NoError(t, d.AddRow(ctx, map[string]string{"id": "US", "desc": "United States"}))
	require.NoError(t, d.AddRow(ctx, map[string]string{"id": "GB", "desc": "United Kingdom"}))

	rows, err := d.FindRows(ctx, "desc", "united")
	require.NoError(t, err)
	assert.Len(t, rows, 2)

	_, err = d.FindRows(ctx, "bogus", "x")
	assert.ErrorContains(t, err, `no field named "bogus"`)
}

func TestHasTag(t *testing.T) {
	f := Field{Name: "id", Tags: []string{KeyTag, "searchable"}}
	assert.True(t, f.HasTag("searchable"))
	assert.False(t, f.HasTag("hidden"))
}
