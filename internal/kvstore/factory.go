package kvstore

import (
	"context"

	"github.com/vk/foundry/internal/catalog"
	"github.com/vk/foundry/internal/foundry"
)

// Factories returns the built-in key-value store factory table. The
// in-memory store is the default builder.
func Factories() foundry.FactoryTable {
	return foundry.FactoryTable{
		foundry.DefaultBuilder: newMemoryStore,
		"memory":               newMemoryStore,
		"sqlite":               newSQLiteStore,
	}
}

func newMemoryStore(ctx context.Context, name string, entry *catalog.Entry, res foundry.Resolver) (any, error) {
	return NewMemoryStore(), nil
}

func newSQLiteStore(ctx context.Context, name string, entry *catalog.Entry, res foundry.Resolver) (any, error) {
	path, err := entry.String("path")
	if err != nil {
		return nil, err
	}
	return NewSQLiteStore(ctx, path)
}
