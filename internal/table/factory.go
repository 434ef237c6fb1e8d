package table

import (
	"context"

	"github.com/vk/foundry/internal/catalog"
	"github.com/vk/foundry/internal/dimension"
	"github.com/vk/foundry/internal/foundry"
	"github.com/vk/foundry/internal/metric"
)

// Factories returns the built-in table factory table. Physical tables are
// the default builder.
func Factories() foundry.FactoryTable {
	return foundry.FactoryTable{
		foundry.DefaultBuilder: newPhysicalTable,
		"physical":             newPhysicalTable,
		"logical":              newLogicalTable,
	}
}

// newPhysicalTable builds a table from named dimensions and metrics, all
// resolved through the same foundry.
func newPhysicalTable(ctx context.Context, name string, entry *catalog.Entry, res foundry.Resolver) (any, error) {
	granularity, err := entry.OptString("granularity", "day")
	if err != nil {
		return nil, err
	}
	dimensionNames, err := entry.OptStringList("dimensions")
	if err != nil {
		return nil, err
	}
	metricNames, err := entry.OptStringList("metrics")
	if err != nil {
		return nil, err
	}

	dimensions := make([]*dimension.Dimension, 0, len(dimensionNames))
	for _, dimensionName := range dimensionNames {
		d, err := foundry.GetAs[*dimension.Dimension](ctx, res, catalog.ConceptDimension, dimensionName)
		if err != nil {
			return nil, err
		}
		dimensions = append(dimensions, d)
	}
	metrics := make([]*metric.Metric, 0, len(metricNames))
	for _, metricName := range metricNames {
		m, err := foundry.GetAs[*metric.Metric](ctx, res, catalog.ConceptMetric, metricName)
		if err != nil {
			return nil, err
		}
		metrics = append(metrics, m)
	}

	return New(name, granularity, dimensions, metrics)
}

// newLogicalTable builds a table as the column union of named base
// tables, recursing into the table concept itself.
func newLogicalTable(ctx context.Context, name string, entry *catalog.Entry, res foundry.Resolver) (any, error) {
	granularity, err := entry.OptString("granularity", "day")
	if err != nil {
		return nil, err
	}
	baseNames, err := entry.StringList("tables")
	if err != nil {
		return nil, err
	}

	var (
		dimensions []*dimension.Dimension
		metrics    []*metric.Metric
		seenDims   = make(map[string]bool)
		seenMets   = make(map[string]bool)
	)
	for _, baseName := range baseNames {
		base, err := foundry.GetAs[*Table](ctx, res, catalog.ConceptTable, baseName)
		if err != nil {
			return nil, err
		}
		for _, d := range base.Dimensions() {
			if !seenDims[d.Name] {
				seenDims[d.Name] = true
				dimensions = append(dimensions, d)
			}
		}
		for _, m := range base.Metrics() {
			if !seenMets[m.Name] {
				seenMets[m.Name] = true
				metrics = append(metrics, m)
			}
		}
	}

	return New(name, granularity, dimensions, metrics)
}
