package rowload

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/vk/foundry/internal/ctxlog"
	"github.com/vk/foundry/internal/dimension"
)

// Schema describes the columns of an external row file.
type Schema struct {
	Name   string        `json:"name"`
	Fields []SchemaField `json:"fields"`
}

// SchemaField is one column declaration in a row-file schema.
type SchemaField struct {
	Name string `json:"name"`
}

// ReadSchema parses a schema file.
func ReadSchema(path string) (*Schema, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read schema file: %w", err)
	}
	var s Schema
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil, fmt.Errorf("failed to parse schema file %s: %w", path, err)
	}
	if len(s.Fields) == 0 {
		return nil, fmt.Errorf("schema file %s declares no fields", path)
	}
	return &s, nil
}

// Validate checks that every field the dimension declares is present in
// the schema, so each ingested row can populate the full dimension row.
func (s *Schema) Validate(d *dimension.Dimension) error {
	declared := make(map[string]bool, len(s.Fields))
	for _, f := range s.Fields {
		declared[f.Name] = true
	}
	for _, f := range d.Fields() {
		if !declared[f.Name] {
			return fmt.Errorf("schema %q is missing dimension %q field %q", s.Name, d.Name, f.Name)
		}
	}
	return nil
}

// maxRowBytes bounds a single encoded row. The default bufio.Scanner cap
// of 64KB is too small for text-heavy dimension rows.
const maxRowBytes = 16 << 20

// LoadFile validates the schema at schemaPath against the dimension and
// then streams the newline-delimited JSON rows at rowsPath into it.
// Rows up to maxRowBytes long are accepted. Returns the number of rows
// ingested.
func LoadFile(ctx context.Context, d *dimension.Dimension, schemaPath, rowsPath string) (int, error) {
	schema, err := ReadSchema(schemaPath)
	if err != nil {
		return 0, err
	}
	if err := schema.Validate(d); err != nil {
		return 0, err
	}

	f, err := os.Open(rowsPath)
	if err != nil {
		return 0, fmt.Errorf("failed to open rows file: %w", err)
	}
	defer f.Close()

	logger := ctxlog.FromContext(ctx).With("dimension", d.Name, "rows_file", rowsPath)
	logger.Debug("Row load starting.")

	count := 0
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), maxRowBytes)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		var raw map[string]any
		if err := json.Unmarshal(line, &raw); err != nil {
			return count, fmt.Errorf("malformed row %d in %s: %w", count+1, rowsPath, err)
		}
		row := make(map[string]string, len(raw))
		for field, value := range raw {
			// Only the dimension's own fields carry over; extra schema
			// columns are ignored rather than rejected.
			if _, err := d.Field(field); err != nil {
				continue
			}
			row[field] = fmt.Sprint(value)
		}
		if err := d.AddRow(ctx, row); err != nil {
			return count, fmt.Errorf("row %d in %s: %w", count+1, rowsPath, err)
		}
		count++
	}
	if err := scanner.Err(); err != nil {
		return count, fmt.Errorf("failed to read rows file: %w", err)
	}

	logger.Debug("Row load finished.", "rows", count)
	return count, nil
}
