// Package yamlcfg loads resource configuration from YAML files into the
// format-agnostic catalog model.
//
// A file maps concepts to named entries to attribute mappings:
//
//	dimension:
//	  testDimension:
//	    builder: keyValueStore
//	    key_value_store: kvs1
//	    fields:
//	      - name: id
//	        tags: [primaryKey]
//
// Attribute values translate to cty values with the same shapes the HCL
// loader produces, so factories are loader-agnostic.
package yamlcfg
