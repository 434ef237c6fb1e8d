// Package dimension implements the dimension resource: an ordered field
// schema over a key-value row store, paired with a search provider for
// value lookup. The row-loading utilities in package rowload populate a
// dimension after it has been built.
package dimension
