package table

import (
	"fmt"

	"github.com/vk/foundry/internal/dimension"
	"github.com/vk/foundry/internal/metric"
)

// Table exposes a set of dimensions and metrics under one name, the unit
// the query-serving layer looks up at request time.
type Table struct {
	Name        string
	Granularity string

	dimensions []*dimension.Dimension
	metrics    []*metric.Metric
	dimByName  map[string]*dimension.Dimension
	metByName  map[string]*metric.Metric
}

// New creates a table over the given columns. Duplicate column names
// within a kind are rejected.
func New(name, granularity string, dimensions []*dimension.Dimension, metrics []*metric.Metric) (*Table, error) {
	t := &Table{
		Name:        name,
		Granularity: granularity,
		dimByName:   make(map[string]*dimension.Dimension, len(dimensions)),
		metByName:   make(map[string]*metric.Metric, len(metrics)),
	}
	for _, d := range dimensions {
		if _, dup := t.dimByName[d.Name]; dup {
			return nil, fmt.Errorf("table %q lists dimension %q twice", name, d.Name)
		}
		t.dimByName[d.Name] = d
		t.dimensions = append(t.dimensions, d)
	}
	for _, m := range metrics {
		if _, dup := t.metByName[m.Name]; dup {
			return nil, fmt.Errorf("table %q lists metric %q twice", name, m.Name)
		}
		t.metByName[m.Name] = m
		t.metrics = append(t.metrics, m)
	}
	return t, nil
}

// Dimensions returns the table's dimensions in declaration order.
func (t *Table) Dimensions() []*dimension.Dimension { return t.dimensions }

// Metrics returns the table's metrics in declaration order.
func (t *Table) Metrics() []*metric.Metric { return t.metrics }

// Dimension returns the named dimension. Unknown names are an error.
func (t *Table) Dimension(name string) (*dimension.Dimension, error) {
	if d, ok := t.dimByName[name]; ok {
		return d, nil
	}
	return nil, fmt.Errorf("table %q has no dimension named %q", t.Name, name)
}

// Metric returns the named metric. Unknown names are an error.
func (t *Table) Metric(name string) (*metric.Metric, error) {
	if m, ok := t.metByName[name]; ok {
		return m, nil
	}
	return nil, fmt.Errorf("table %q has no metric named %q", t.Name, name)
}
