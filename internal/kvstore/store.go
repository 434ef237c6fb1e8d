package kvstore

import "context"

// Store is a string key-value store. Implementations must be safe for
// concurrent use.
type Store interface {
	// Get returns the value for key. The second return is false when the
	// key is absent.
	Get(ctx context.Context, key string) (string, bool, error)

	// Put stores value under key, replacing any previous value.
	Put(ctx context.Context, key, value string) error

	// Keys returns every stored key. Order is unspecified.
	Keys(ctx context.Context) ([]string, error)

	// Close releases any backing resources. The store is unusable after.
	Close() error
}
