package metric

import (
	"context"

	"github.com/vk/foundry/internal/catalog"
	"github.com/vk/foundry/internal/foundry"
)

// Factories returns the built-in metric factory table. longSum is the
// default builder.
func Factories() foundry.FactoryTable {
	return foundry.FactoryTable{
		foundry.DefaultBuilder: leafFactory("longSum"),
		"longSum":              leafFactory("longSum"),
		"doubleSum":            leafFactory("doubleSum"),
		"count":                leafFactory("count"),
		"arithmetic":           newArithmeticMetric,
	}
}

// leafFactory builds metrics that aggregate a single source column.
func leafFactory(maker string) foundry.Factory {
	return func(ctx context.Context, name string, entry *catalog.Entry, res foundry.Resolver) (any, error) {
		longName, err := entry.OptString("long_name", name)
		if err != nil {
			return nil, err
		}
		description, err := entry.OptString("description", "")
		if err != nil {
			return nil, err
		}
		fieldName, err := entry.OptString("field_name", name)
		if err != nil {
			return nil, err
		}
		return &Metric{
			Name:        name,
			LongName:    longName,
			Description: description,
			Maker:       maker,
			FieldName:   fieldName,
		}, nil
	}
}

// newArithmeticMetric builds a metric combining operand metrics resolved
// by name through the same foundry. Operand resolution recurses into the
// metric concept itself, so a self-referential configuration surfaces as
// a cycle error rather than unbounded recursion.
func newArithmeticMetric(ctx context.Context, name string, entry *catalog.Entry, res foundry.Resolver) (any, error) {
	longName, err := entry.OptString("long_name", name)
	if err != nil {
		return nil, err
	}
	description, err := entry.OptString("description", "")
	if err != nil {
		return nil, err
	}
	operator, err := entry.String("operator")
	if err != nil {
		return nil, err
	}
	switch operator {
	case "+", "-", "*", "/":
	default:
		return nil, &catalog.ConfigError{
			Concept: entry.Concept, Name: entry.Name,
			Attr: "operator", Reason: "must be one of +, -, *, /",
		}
	}
	operandNames, err := entry.StringList("operands")
	if err != nil {
		return nil, err
	}
	if len(operandNames) < 2 {
		return nil, &catalog.ConfigError{
			Concept: entry.Concept, Name: entry.Name,
			Attr: "operands", Reason: "arithmetic metrics require at least two operands",
		}
	}

	operands := make([]*Metric, 0, len(operandNames))
	for _, operandName := range operandNames {
		operand, err := foundry.GetAs[*Metric](ctx, res, catalog.ConceptMetric, operandName)
		if err != nil {
			return nil, err
		}
		operands = append(operands, operand)
	}

	return &Metric{
		Name:        name,
		LongName:    longName,
		Description: description,
		Maker:       "arithmetic",
		Operator:    operator,
		Operands:    operands,
	}, nil
}
