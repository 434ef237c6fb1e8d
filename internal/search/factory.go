package search

import (
	"context"

	"github.com/vk/foundry/internal/catalog"
	"github.com/vk/foundry/internal/foundry"
)

// Factories returns the built-in search provider factory table. The
// inverted-index provider is the default builder.
func Factories() foundry.FactoryTable {
	return foundry.FactoryTable{
		foundry.DefaultBuilder: newMemoryProvider,
		"memory":               newMemoryProvider,
		"scan":                 newScanProvider,
	}
}

func newMemoryProvider(ctx context.Context, name string, entry *catalog.Entry, res foundry.Resolver) (any, error) {
	return NewMemoryProvider(), nil
}

func newScanProvider(ctx context.Context, name string, entry *catalog.Entry, res foundry.Resolver) (any, error) {
	return NewScanProvider(), nil
}
