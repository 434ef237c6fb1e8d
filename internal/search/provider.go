package search

import "context"

// Provider indexes dimension rows and answers field-value queries with the
// keys of matching rows. Implementations must be safe for concurrent use.
type Provider interface {
	// Index records a row under its key so later queries can find it.
	Index(ctx context.Context, key string, row map[string]string) error

	// Query returns the keys of rows whose field matches value,
	// case-insensitively. Order is unspecified.
	Query(ctx context.Context, field, value string) ([]string, error)

	// Size reports how many rows are indexed.
	Size(ctx context.Context) (int, error)
}
