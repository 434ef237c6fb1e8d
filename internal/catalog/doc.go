// Package catalog defines the format-agnostic configuration model for the
// resource graph: named entries grouped by concept, each carrying an
// attribute map of cty values.
//
// A catalog.Source is the single source of truth for the foundry package.
// Concrete loaders that translate an on-disk format (HCL, YAML) into a
// Source live in separate packages.
package catalog
