// Package search defines the search-provider contract dimensions use for
// row lookup by field value, plus two built-in implementations: an
// inverted-index provider and a linear-scan fallback.
package search
