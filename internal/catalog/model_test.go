package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zclconf/go-cty/cty"
)

func testEntry() *Entry {
	return &Entry{
		Concept: ConceptDimension,
		Name:    "testDimension",
		Attrs: map[string]cty.Value{
			"long_name":    cty.StringVal("Test Dimension"),
			"aggregatable": cty.BoolVal(false),
			"cardinality":  cty.NumberIntVal(42),
			"tags":         cty.TupleVal([]cty.Value{cty.StringVal("a"), cty.StringVal("b")}),
			"fields": cty.TupleVal([]cty.Value{
				cty.ObjectVal(map[string]cty.Value{
					"name": cty.StringVal("id"),
					"tags": cty.TupleVal([]cty.Value{cty.StringVal("primaryKey")}),
				}),
				cty.ObjectVal(map[string]cty.Value{
					"name": cty.StringVal("desc"),
				}),
			}),
		},
	}
}

func TestEntryString(t *testing.T) {
	e := testEntry()

	v, err := e.String("long_name")
	require.NoError(t, err)
	assert.Equal(t, "Test Dimension", v)

	_, err = e.String("missing")
	require.Error(t, err)
	var cfgErr *ConfigError
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, "missing", cfgErr.Attr)
	assert.Equal(t, ConceptDimension, cfgErr.Concept)

	_, err = e.String("aggregatable")
	assert.Error(t, err, "wrong shape must be rejected")
}

func TestEntryOptString(t *testing.T) {
	e := testEntry()

	v, err := e.OptString("long_name", "fallback")
	require.NoError(t, err)
	assert.Equal(t, "Test Dimension", v)

	v, err = e.OptString("missing", "fallback")
	require.NoError(t, err)
	assert.Equal(t, "fallback", v)

	_, err = e.OptString("cardinality", "fallback")
	assert.Error(t, err, "present but mis-shaped is still an error")
}

func TestEntryOptBoolAndInt(t *testing.T) {
	e := testEntry()

	b, err := e.OptBool("aggregatable", true)
	require.NoError(t, err)
	assert.False(t, b)

	b, err = e.OptBool("missing", true)
	require.NoError(t, err)
	assert.True(t, b)

	n, err := e.OptInt("cardinality", 0)
	require.NoError(t, err)
	assert.Equal(t, 42, n)

	n, err = e.OptInt("missing", 7)
	require.NoError(t, err)
	assert.Equal(t, 7, n)

	_, err = e.OptInt("long_name", 0)
	assert.Error(t, err)
}

func TestEntryStringList(t *testing.T) {
	e := testEntry()

	tags, err := e.StringList("tags")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, tags)

	_, err = e.StringList("missing")
	assert.Error(t, err)

	list, err := e.OptStringList("missing")
	require.NoError(t, err)
	assert.Nil(t, list)

	_, err = e.StringList("fields")
	assert.Error(t, err, "list of objects is not a list of strings")
}

func TestEntryObjectList(t *testing.T) {
	e := testEntry()

	objects, err := e.ObjectList("fields")
	require.NoError(t, err)
	require.Len(t, objects, 2)
	assert.Equal(t, "id", objects[0]["name"].AsString())
	assert.Equal(t, "desc", objects[1]["name"].AsString())

	_, err = e.ObjectList("long_name")
	assert.Error(t, err)

	_, err = e.ObjectList("missing")
	assert.Error(t, err)
}
