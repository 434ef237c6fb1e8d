// Package hclcfg loads resource configuration from HCL files into the
// format-agnostic catalog model.
//
// Every top-level block is one entry: the block type is the concept, the
// single label is the entry name, and the block's attributes become the
// entry's attribute map. A `builder` attribute selects the factory within
// the concept's table. Nested single-label blocks are collected, in
// declaration order, into a list attribute named after the block type
// (`field` blocks become the `fields` attribute), with the label exposed
// as the object's `name`.
package hclcfg
