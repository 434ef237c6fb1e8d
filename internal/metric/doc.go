// Package metric implements the metric resource: leaf aggregators over a
// source column and arithmetic metrics composed from other metrics by
// name.
package metric
