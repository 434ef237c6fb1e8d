package metric

// Metric describes one computed measure. Leaf metrics aggregate a source
// column; arithmetic metrics combine previously resolved operand metrics.
type Metric struct {
	Name        string
	LongName    string
	Description string

	// Maker identifies the aggregation or combination this metric
	// performs: longSum, doubleSum, count, or arithmetic.
	Maker string

	// FieldName is the source column a leaf aggregator reads. Empty for
	// arithmetic metrics.
	FieldName string

	// Operator is the arithmetic combination (+, -, *, /). Empty for
	// leaf metrics.
	Operator string

	// Operands are the resolved dependency metrics of an arithmetic
	// metric, in declaration order.
	Operands []*Metric
}

// Leaf reports whether the metric reads a source column directly.
func (m *Metric) Leaf() bool {
	return len(m.Operands) == 0
}

// DependencyNames returns the names of the operand metrics, in order.
func (m *Metric) DependencyNames() []string {
	names := make([]string, len(m.Operands))
	for i, op := range m.Operands {
		names[i] = op.Name
	}
	return names
}
