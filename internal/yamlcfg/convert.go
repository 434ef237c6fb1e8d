package yamlcfg

import (
	"fmt"

	"github.com/zclconf/go-cty/cty"
)

// toCtyValue converts a decoded YAML value into its cty equivalent.
// Mappings become object values and sequences become tuple values, so
// heterogeneous element types survive the translation.
func toCtyValue(v any) (cty.Value, error) {
	switch value := v.(type) {
	case nil:
		return cty.NullVal(cty.DynamicPseudoType), nil
	case string:
		return cty.StringVal(value), nil
	case bool:
		return cty.BoolVal(value), nil
	case int:
		return cty.NumberIntVal(int64(value)), nil
	case int64:
		return cty.NumberIntVal(value), nil
	case float64:
		return cty.NumberFloatVal(value), nil
	case []any:
		if len(value) == 0 {
			return cty.EmptyTupleVal, nil
		}
		elems := make([]cty.Value, len(value))
		for i, raw := range value {
			elem, err := toCtyValue(raw)
			if err != nil {
				return cty.NilVal, err
			}
			elems[i] = elem
		}
		return cty.TupleVal(elems), nil
	case map[string]any:
		if len(value) == 0 {
			return cty.EmptyObjectVal, nil
		}
		attrs := make(map[string]cty.Value, len(value))
		for key, raw := range value {
			attr, err := toCtyValue(raw)
			if err != nil {
				return cty.NilVal, err
			}
			attrs[key] = attr
		}
		return cty.ObjectVal(attrs), nil
	default:
		return cty.NilVal, fmt.Errorf("unsupported value of type %T", v)
	}
}
